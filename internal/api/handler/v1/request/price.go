package request

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
)

type PriceRequest struct {
	Price string `form:"price"`
}

func (req *PriceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Price, validation.Required),
	)
}

// PriceValue parses the submitted decimal.
func (req *PriceRequest) PriceValue() (float64, error) {
	return strconv.ParseFloat(req.Price, 64)
}
