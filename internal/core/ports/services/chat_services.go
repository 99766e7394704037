package services

import (
	"context"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
)

// ChatSvcFacade maintains one AI conversation with optimistic sends.
//
// The message list is insertion-ordered and never re-sorted. A send appends
// the user's message before the network call resolves; on failure exactly that
// message is removed again.
type ChatSvcFacade interface {
	// SendMessage sends trimmed text. Empty input is a no-op.
	SendMessage(ctx context.Context, text string) ([]domain.ChatMessage, error)

	// LoadHistory replaces the session with the most recent server snapshot.
	LoadHistory(ctx context.Context, limit int) ([]domain.ChatMessage, error)

	// LoadChatByID replaces the session with a specific chat's snapshot.
	LoadChatByID(ctx context.Context, chatID int64) ([]domain.ChatMessage, error)

	// StartNewChat clears the session locally; no network call is made.
	StartNewChat()

	// Messages returns the current ordered message list.
	Messages() []domain.ChatMessage

	// ChatID returns the adopted chat identifier, or nil before the first reply.
	ChatID() *int64
}
