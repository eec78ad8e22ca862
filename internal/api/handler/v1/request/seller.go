package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SellerRequest struct {
	Name string `form:"name"`
}

func (req *SellerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
	)
}
