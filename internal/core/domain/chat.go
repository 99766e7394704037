package domain

import "time"

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleBot  ChatRole = "bot"
)

// ChatMessage is one entry in an AI conversation. Messages are append-only and
// display order equals insertion order.
//
// ClientID is set only on optimistically appended user messages; it is the
// handle used to remove exactly that message if the send fails.
type ChatMessage struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	ClientID  string    `json:"client_id,omitempty"`
}

// Chat is one AI conversation session owned by a user.
type Chat struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatInteraction is the backend's response to a sent message: the session,
// the stored user message, and the bot's reply.
type ChatInteraction struct {
	Chat        *Chat       `json:"chat"`
	UserMessage ChatMessage `json:"userMessage"`
	BotReply    ChatMessage `json:"botResponse"`
}

// ChatHistory is a full snapshot of one session's messages.
type ChatHistory struct {
	Chat     *Chat         `json:"chat"`
	Messages []ChatMessage `json:"messages"`
}
