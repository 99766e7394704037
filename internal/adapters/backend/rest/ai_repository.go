package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// AIRepository implements the AI panel endpoints. The recommendation payloads
// are opaque JSON; only the chat shapes are decoded.
type AIRepository struct {
	client *Client
}

// NewAIRepository creates an AIRepository over the shared client.
func NewAIRepository(client *Client) *AIRepository {
	return &AIRepository{client: client}
}

var _ portsrepo.AIBackend = (*AIRepository)(nil)

func aiPath(businessID int64, suffix string) string {
	return fmt.Sprintf("/businesses/%d/ai%s", businessID, suffix)
}

func (r *AIRepository) passthrough(ctx context.Context, businessID int64, suffix string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, aiPath(businessID, suffix), nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *AIRepository) Insights(ctx context.Context, businessID int64) (json.RawMessage, error) {
	return r.passthrough(ctx, businessID, "/insights")
}

func (r *AIRepository) CashflowForecast(ctx context.Context, businessID int64, days int) (json.RawMessage, error) {
	return r.passthrough(ctx, businessID, fmt.Sprintf("/cashflow-forecast?days=%d", days))
}

func (r *AIRepository) CostRecommendations(ctx context.Context, businessID int64) (json.RawMessage, error) {
	return r.passthrough(ctx, businessID, "/cost-recommendations")
}

func (r *AIRepository) SalesRecommendations(ctx context.Context, businessID int64) (json.RawMessage, error) {
	return r.passthrough(ctx, businessID, "/sales-recommendations")
}

func (r *AIRepository) StockForecast(ctx context.Context, businessID int64) (json.RawMessage, error) {
	return r.passthrough(ctx, businessID, "/stock-forecast")
}

// wireMessage is a chat message as the backend encodes it: the author is a
// "sender" of User or Bot rather than a role.
type wireMessage struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (m wireMessage) toDomain() domain.ChatMessage {
	role := domain.RoleBot
	if m.Sender == "User" {
		role = domain.RoleUser
	}
	return domain.ChatMessage{
		ID:        m.ID,
		ChatID:    m.ChatID,
		Role:      role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

type wireInteraction struct {
	Chat        *domain.Chat `json:"chat"`
	UserMessage wireMessage  `json:"userMessage"`
	BotResponse wireMessage  `json:"botResponse"`
}

type wireHistory struct {
	Chat     *domain.Chat  `json:"chat"`
	Messages []wireMessage `json:"messages"`
}

func (h wireHistory) toDomain() *domain.ChatHistory {
	out := &domain.ChatHistory{Chat: h.Chat, Messages: make([]domain.ChatMessage, 0, len(h.Messages))}
	for _, m := range h.Messages {
		out.Messages = append(out.Messages, m.toDomain())
	}
	return out
}

// SendChatMessage posts a chat message, creating a session when chatID is nil.
func (r *AIRepository) SendChatMessage(ctx context.Context, businessID int64, message string, chatID *int64) (*domain.ChatInteraction, error) {
	body := struct {
		Message string `json:"message"`
		ChatID  *int64 `json:"chatId,omitempty"`
	}{Message: message, ChatID: chatID}

	var wire wireInteraction
	if err := r.client.do(ctx, http.MethodPost, aiPath(businessID, "/chat"), body, &wire); err != nil {
		return nil, err
	}
	return &domain.ChatInteraction{
		Chat:        wire.Chat,
		UserMessage: wire.UserMessage.toDomain(),
		BotReply:    wire.BotResponse.toDomain(),
	}, nil
}

// ChatHistory fetches the most recent session's messages.
func (r *AIRepository) ChatHistory(ctx context.Context, businessID int64, limit int) (*domain.ChatHistory, error) {
	var wire wireHistory
	path := aiPath(businessID, fmt.Sprintf("/chat/history?limit=%d", limit))
	if err := r.client.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}

// ListChats returns the user's chat sessions.
func (r *AIRepository) ListChats(ctx context.Context, businessID int64) ([]domain.Chat, error) {
	var chats []domain.Chat
	if err := r.client.do(ctx, http.MethodGet, aiPath(businessID, "/chats"), nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// GetChatByID fetches a specific chat with its messages.
func (r *AIRepository) GetChatByID(ctx context.Context, businessID, chatID int64) (*domain.ChatHistory, error) {
	var wire wireHistory
	path := aiPath(businessID, fmt.Sprintf("/chats/%d", chatID))
	if err := r.client.do(ctx, http.MethodGet, path, nil, &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}
