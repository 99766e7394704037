package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	"github.com/nusabiz/nusabiz_gateway/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Sessions portsrepo.SessionReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// ActiveBusiness resolves the business the session currently operates on.
// Every backend call below the auth endpoints is scoped to it.
func (s *BaseService) ActiveBusiness(ctx context.Context) (int64, error) {
	token, err := s.Sessions.Token(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading session token: %w", err)
	}
	if token == "" {
		return 0, apperrors.ErrNoSession
	}
	businessID, err := s.Sessions.BusinessID(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading active business: %w", err)
	}
	if businessID == 0 {
		return 0, fmt.Errorf("no business selected for this session: %w", apperrors.ErrValidation)
	}
	return businessID, nil
}
