package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
)

type authService struct {
	BaseService
	auth       portsrepo.AuthBackend
	businesses portsrepo.BusinessBackend
	sessions   portsrepo.SessionRepositoryFacade
}

// NewAuthService creates the session lifecycle service.
func NewAuthService(auth portsrepo.AuthBackend, businesses portsrepo.BusinessBackend, sessions portsrepo.SessionRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		BaseService: BaseService{Sessions: sessions},
		auth:        auth,
		businesses:  businesses,
		sessions:    sessions,
	}
}

func (s *authService) Login(ctx context.Context, creds portsrepo.Credentials) (*domain.SessionStatus, error) {
	if err := validateCredentials(creds, false); err != nil {
		return nil, err
	}
	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.LogError(ctx, err, "login failed", slog.String("email", creds.Email))
		return nil, err
	}
	return s.establishSession(ctx, token)
}

func (s *authService) Register(ctx context.Context, creds portsrepo.Credentials) (*domain.SessionStatus, error) {
	if err := validateCredentials(creds, true); err != nil {
		return nil, err
	}
	token, err := s.auth.Register(ctx, creds)
	if err != nil {
		s.LogError(ctx, err, "registration failed", slog.String("email", creds.Email))
		return nil, err
	}
	return s.establishSession(ctx, token)
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	return s.auth.ForgotPassword(ctx, email)
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.LogInfo(ctx, "session cleared")
	return nil
}

// Session reads the stored state only; it never calls the backend, so a stale
// token is reported as authenticated until a real request rejects it.
func (s *authService) Session(ctx context.Context) (*domain.SessionStatus, error) {
	token, err := s.sessions.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading session token: %w", err)
	}
	if token == "" {
		return &domain.SessionStatus{}, nil
	}
	businessID, err := s.sessions.BusinessID(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading active business: %w", err)
	}
	user, err := s.sessions.CachedUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading cached user: %w", err)
	}
	return &domain.SessionStatus{
		Authenticated: true,
		TokenExpiry:   tokenExpiry(token),
		BusinessID:    businessID,
		User:          user,
	}, nil
}

// establishSession stores the freshly issued token, then hydrates the cached
// user and the active business selection. The first business returned by the
// backend becomes active; owning none leaves the selection empty.
func (s *authService) establishSession(ctx context.Context, token string) (*domain.SessionStatus, error) {
	if err := s.sessions.SetToken(ctx, token); err != nil {
		return nil, fmt.Errorf("storing token: %w", err)
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	if err := s.sessions.SetCachedUser(ctx, user); err != nil {
		return nil, fmt.Errorf("caching user: %w", err)
	}

	status := &domain.SessionStatus{
		Authenticated: true,
		TokenExpiry:   tokenExpiry(token),
		User:          user,
	}

	businesses, err := s.businesses.ListBusinesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}
	if len(businesses) > 0 {
		status.BusinessID = businesses[0].ID
		if err := s.sessions.SetBusinessID(ctx, status.BusinessID); err != nil {
			return nil, fmt.Errorf("storing active business: %w", err)
		}
	}

	s.LogInfo(ctx, "session established",
		slog.String("user_id", user.ID),
		slog.Int64("business_id", status.BusinessID))
	return status, nil
}

func validateCredentials(creds portsrepo.Credentials, registering bool) error {
	if strings.TrimSpace(creds.Email) == "" {
		return fmt.Errorf("email is required: %w", apperrors.ErrValidation)
	}
	if creds.Password == "" {
		return fmt.Errorf("password is required: %w", apperrors.ErrValidation)
	}
	if registering && strings.TrimSpace(creds.FullName) == "" {
		return fmt.Errorf("full name is required: %w", apperrors.ErrValidation)
	}
	return nil
}

// tokenExpiry extracts the exp claim without verifying the signature. The
// gateway never trusts the token for authorization, it only reports when the
// backend will stop accepting it.
func tokenExpiry(token string) *time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	t := claims.ExpiresAt.Time
	return &t
}
