package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// Storage keys for the session state table. The set mirrors what the web
// client kept in browser storage: the bearer token, the active business
// identifier, and a cached copy of the user profile.
const (
	keyToken      = "token"
	keyBusinessID = "business_id"
	keyUser       = "user"
)

// SessionRepository persists the gateway's session state in a local sqlite
// file. It is the durable replacement for browser localStorage.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a SessionRepository backed by db.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session state %q: %w", key, err)
	}
	return value, nil
}

func (r *SessionRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("write session state %q: %w", key, err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when none is stored.
func (r *SessionRepository) Token(ctx context.Context) (string, error) {
	return r.get(ctx, keyToken)
}

// SetToken stores the bearer token.
func (r *SessionRepository) SetToken(ctx context.Context, token string) error {
	return r.set(ctx, keyToken, token)
}

// BusinessID returns the active business identifier, or 0 when unset.
func (r *SessionRepository) BusinessID(ctx context.Context) (int64, error) {
	raw, err := r.get(ctx, keyBusinessID)
	if err != nil || raw == "" {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stored business id %q is not numeric: %w", raw, err)
	}
	return id, nil
}

// SetBusinessID stores the active business identifier.
func (r *SessionRepository) SetBusinessID(ctx context.Context, businessID int64) error {
	return r.set(ctx, keyBusinessID, strconv.FormatInt(businessID, 10))
}

// CachedUser returns the cached user blob, or nil when none is stored.
func (r *SessionRepository) CachedUser(ctx context.Context) (*domain.User, error) {
	raw, err := r.get(ctx, keyUser)
	if err != nil || raw == "" {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// A corrupt blob is treated as absent; it will be refreshed on login.
		return nil, nil
	}
	return &user, nil
}

// SetCachedUser stores the user blob. A nil user removes the cached copy.
func (r *SessionRepository) SetCachedUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		_, err := r.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, keyUser)
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode cached user: %w", err)
	}
	return r.set(ctx, keyUser, string(raw))
}

// Clear removes every stored value. Used on logout and on session expiry.
func (r *SessionRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session_state`)
	if err != nil {
		return fmt.Errorf("clear session state: %w", err)
	}
	return nil
}
