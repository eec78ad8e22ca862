package domain

type Buyer struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
