package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// AuthRepository implements the auth and profile endpoints.
type AuthRepository struct {
	client *Client
}

// NewAuthRepository creates an AuthRepository over the shared client.
func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

var _ portsrepo.AuthBackend = (*AuthRepository)(nil)

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (r *AuthRepository) Login(ctx context.Context, creds portsrepo.Credentials) (string, error) {
	var out tokenResponse
	if err := r.client.do(ctx, http.MethodPost, "/auth/login", creds, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return out.Token, nil
}

// Register creates an account and returns the issued bearer token.
func (r *AuthRepository) Register(ctx context.Context, creds portsrepo.Credentials) (string, error) {
	var out tokenResponse
	if err := r.client.do(ctx, http.MethodPost, "/auth/register", creds, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("register response carried no token")
	}
	return out.Token, nil
}

// ForgotPassword requests a reset mail for the address.
func (r *AuthRepository) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return r.client.do(ctx, http.MethodPost, "/auth/forgot-password", body, nil)
}

// Me fetches the authenticated user's profile.
func (r *AuthRepository) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := r.client.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// BusinessRepository retrieves the businesses the user owns.
type BusinessRepository struct {
	client *Client
}

// NewBusinessRepository creates a BusinessRepository over the shared client.
func NewBusinessRepository(client *Client) *BusinessRepository {
	return &BusinessRepository{client: client}
}

var _ portsrepo.BusinessBackend = (*BusinessRepository)(nil)

// ListBusinesses returns the user's businesses.
func (r *BusinessRepository) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	var businesses []domain.Business
	if err := r.client.do(ctx, http.MethodGet, "/businesses", nil, &businesses); err != nil {
		return nil, err
	}
	return businesses, nil
}
