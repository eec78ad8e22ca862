package domain

type Price struct {
	ID    uint    `json:"id"`
	Price float64 `json:"price"`
}
