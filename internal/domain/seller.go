package domain

type Seller struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
