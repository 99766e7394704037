package services

import (
	"context"
	"encoding/json"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
)

// AISvcFacade passes the AI panel views through from the backend. The
// recommendation payloads are opaque to the gateway and forwarded as-is.
type AISvcFacade interface {
	Insights(ctx context.Context) (json.RawMessage, error)
	CashflowForecast(ctx context.Context, days int) (json.RawMessage, error)
	CostRecommendations(ctx context.Context) (json.RawMessage, error)
	SalesRecommendations(ctx context.Context) (json.RawMessage, error)
	StockForecast(ctx context.Context) (json.RawMessage, error)

	// ListChats returns the user's chat sessions. A failure here is
	// non-critical for the panel and may be surfaced as an empty list.
	ListChats(ctx context.Context) ([]domain.Chat, error)
}
