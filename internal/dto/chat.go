package dto

import (
	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
)

// SendChatMessageRequest carries one user message to the AI assistant.
type SendChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatStateResponse is the conversation as the chat panel renders it.
type ChatStateResponse struct {
	ChatID   *int64               `json:"chatId"`
	Messages []domain.ChatMessage `json:"messages"`
}

// CashflowForecastQuery captures the forecast horizon from the query string.
type CashflowForecastQuery struct {
	Days int `form:"days" binding:"omitempty,gte=1,lte=365"`
}
