package dto

import (
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// LoginRequest defines the data needed to log in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts the request to backend credentials.
func (r LoginRequest) ToCredentials() portsrepo.Credentials {
	return portsrepo.Credentials{Email: r.Email, Password: r.Password}
}

// RegisterRequest defines the data needed to create an account. The password
// confirmation is checked at binding time and never leaves the gateway.
type RegisterRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// ToCredentials converts the request to backend credentials.
func (r RegisterRequest) ToCredentials() portsrepo.Credentials {
	return portsrepo.Credentials{Email: r.Email, Password: r.Password, FullName: r.FullName}
}

// ForgotPasswordRequest asks for a reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}
