package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RegisterRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
