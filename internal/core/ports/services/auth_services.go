package services

import (
	"context"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// AuthSvcFacade owns the session lifecycle: exchanging credentials for a token,
// persisting it with the active business selection, and tearing it down.
type AuthSvcFacade interface {
	// Login authenticates against the backend, stores the issued token, and
	// caches the user and active business.
	Login(ctx context.Context, creds portsrepo.Credentials) (*domain.SessionStatus, error)

	// Register creates an account and establishes a session like Login.
	Register(ctx context.Context, creds portsrepo.Credentials) (*domain.SessionStatus, error)

	// ForgotPassword requests a reset mail. Public, no session required.
	ForgotPassword(ctx context.Context, email string) error

	// Logout clears every stored credential.
	Logout(ctx context.Context) error

	// Session reports the stored session state without a network call.
	Session(ctx context.Context) (*domain.SessionStatus, error)
}
