package services

import (
	"context"
	"encoding/json"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
)

type aiService struct {
	BaseService
	ai portsrepo.AIBackend
}

// NewAIService creates the passthrough service for the AI panel views.
func NewAIService(ai portsrepo.AIBackend, sessions portsrepo.SessionReader) portssvc.AISvcFacade {
	return &aiService{
		BaseService: BaseService{Sessions: sessions},
		ai:          ai,
	}
}

func (s *aiService) Insights(ctx context.Context) (json.RawMessage, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	return s.ai.Insights(ctx, businessID)
}

func (s *aiService) CashflowForecast(ctx context.Context, days int) (json.RawMessage, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 7
	}
	return s.ai.CashflowForecast(ctx, businessID, days)
}

func (s *aiService) CostRecommendations(ctx context.Context) (json.RawMessage, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	return s.ai.CostRecommendations(ctx, businessID)
}

func (s *aiService) SalesRecommendations(ctx context.Context) (json.RawMessage, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	return s.ai.SalesRecommendations(ctx, businessID)
}

func (s *aiService) StockForecast(ctx context.Context) (json.RawMessage, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	return s.ai.StockForecast(ctx, businessID)
}

// ListChats degrades to an empty list when the backend fails: the sidebar is
// decoration next to the conversation itself.
func (s *aiService) ListChats(ctx context.Context) ([]domain.Chat, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	chats, err := s.ai.ListChats(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "listing chats failed, returning empty list")
		return []domain.Chat{}, nil
	}
	return chats, nil
}
