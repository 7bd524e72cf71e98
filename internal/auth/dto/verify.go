package dto

type VerifyInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
	Host  string `json:"host"`
}
