package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AddUserRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (req *AddUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type EditUserRequest struct {
	Username string `form:"username"`
}

func (req *EditUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
	)
}
