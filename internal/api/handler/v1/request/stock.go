package request

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
)

type StockRequest struct {
	ProductName string `form:"product_name"`
	Quantity    string `form:"quantity"`
}

func (req *StockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProductName, validation.Required),
		validation.Field(&req.Quantity, validation.Required),
	)
}

// QuantityValue parses the submitted integer.
func (req *StockRequest) QuantityValue() (int, error) {
	return strconv.Atoi(req.Quantity)
}
