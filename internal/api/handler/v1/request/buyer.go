package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type BuyerRequest struct {
	Name string `form:"name"`
}

func (req *BuyerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
	)
}
