package dto

type StartInput struct {
	Email     string `json:"email" validate:"required,email"`
	Host      string `json:"host"`
	FirstName string `json:"first_name"`
	// Method selects the proof sent by email: a one-time code (default)
	// or a single-use magic link.
	Method string `json:"method" validate:"omitempty,oneof=code link"`
}
