package repositories

import (
	"context"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
)

// SessionReader defines read operations on the stored session state.
type SessionReader interface {
	// Token returns the stored bearer token, or "" when none is stored.
	Token(ctx context.Context) (string, error)

	// BusinessID returns the active business identifier, or 0 when unset.
	BusinessID(ctx context.Context) (int64, error)

	// CachedUser returns the cached user blob, or nil when none is stored.
	CachedUser(ctx context.Context) (*domain.User, error)
}

// SessionWriter defines write operations on the stored session state.
type SessionWriter interface {
	SetToken(ctx context.Context, token string) error
	SetBusinessID(ctx context.Context, businessID int64) error
	SetCachedUser(ctx context.Context, user *domain.User) error

	// Clear removes every stored value. Used on logout and session expiry.
	Clear(ctx context.Context) error
}

// SessionRepositoryFacade combines all session state operations.
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
