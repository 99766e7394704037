package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
)

type chatService struct {
	BaseService
	ai portsrepo.AIBackend

	mu       sync.Mutex
	chatID   *int64
	messages []domain.ChatMessage
}

// NewChatService creates the service holding the active AI conversation.
func NewChatService(ai portsrepo.AIBackend, sessions portsrepo.SessionReader) portssvc.ChatSvcFacade {
	return &chatService{
		BaseService: BaseService{Sessions: sessions},
		ai:          ai,
	}
}

// SendMessage appends the user's message optimistically, then performs the
// backend call. On failure exactly the appended message is removed again,
// identified by its client id. Sends are serialized under the service mutex
// so replies land in send order.
func (s *chatService) SendMessage(ctx context.Context, text string) ([]domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Messages(), nil
	}
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clientID := uuid.NewString()
	local := domain.ChatMessage{
		Role:      domain.RoleUser,
		Content:   text,
		CreatedAt: time.Now(),
		ClientID:  clientID,
	}
	if s.chatID != nil {
		local.ChatID = *s.chatID
	}
	s.messages = append(s.messages, local)

	interaction, err := s.ai.SendChatMessage(ctx, businessID, text, s.chatID)
	if err != nil {
		s.removeByClientIDLocked(clientID)
		s.LogError(ctx, err, "chat send failed, message removed", slog.String("client_id", clientID))
		return nil, err
	}

	if s.chatID == nil && interaction.Chat != nil {
		id := interaction.Chat.ID
		s.chatID = &id
		for i := range s.messages {
			if s.messages[i].ChatID == 0 {
				s.messages[i].ChatID = id
			}
		}
	}
	s.messages = append(s.messages, interaction.BotReply)

	return s.snapshotLocked(), nil
}

// LoadHistory replaces the local conversation with the server's most recent one.
func (s *chatService) LoadHistory(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.ai.ChatHistory(ctx, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("loading chat history: %w", err)
	}
	return s.replaceWith(history), nil
}

func (s *chatService) LoadChatByID(ctx context.Context, chatID int64) ([]domain.ChatMessage, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.ai.GetChatByID(ctx, businessID, chatID)
	if err != nil {
		return nil, fmt.Errorf("loading chat %d: %w", chatID, err)
	}
	return s.replaceWith(history), nil
}

// StartNewChat drops the local conversation. The next send creates a new
// session on the backend.
func (s *chatService) StartNewChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatID = nil
	s.messages = nil
}

func (s *chatService) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *chatService) ChatID() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chatID == nil {
		return nil
	}
	id := *s.chatID
	return &id
}

func (s *chatService) replaceWith(history *domain.ChatHistory) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatID = nil
	if history.Chat != nil {
		id := history.Chat.ID
		s.chatID = &id
	}
	s.messages = make([]domain.ChatMessage, len(history.Messages))
	copy(s.messages, history.Messages)
	return s.snapshotLocked()
}

func (s *chatService) removeByClientIDLocked(clientID string) {
	for i := range s.messages {
		if s.messages[i].ClientID == clientID {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return
		}
	}
}

func (s *chatService) snapshotLocked() []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}
