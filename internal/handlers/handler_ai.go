package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/dto"
	"github.com/nusabiz/nusabiz_gateway/internal/middleware"
)

// aiHandler serves the AI panel: passthrough analytics plus the chat session.
type aiHandler struct {
	aiService   portssvc.AISvcFacade
	chatService portssvc.ChatSvcFacade
}

func newAIHandler(as portssvc.AISvcFacade, cs portssvc.ChatSvcFacade) *aiHandler {
	return &aiHandler{aiService: as, chatService: cs}
}

func registerAIRoutes(rg *gin.RouterGroup, aiService portssvc.AISvcFacade, chatService portssvc.ChatSvcFacade) {
	h := newAIHandler(aiService, chatService)

	ai := rg.Group("/ai")
	{
		ai.GET("/insights", h.insights)
		ai.GET("/forecast/cashflow", h.cashflowForecast)
		ai.GET("/forecast/stock", h.stockForecast)
		ai.GET("/recommendations/cost", h.costRecommendations)
		ai.GET("/recommendations/sales", h.salesRecommendations)

		ai.GET("/chats", h.listChats)
		ai.GET("/chat", h.chatState)
		ai.POST("/chat", h.sendMessage)
		ai.POST("/chat/new", h.startNewChat)
		ai.GET("/chat/history", h.loadHistory)
		ai.GET("/chat/:id", h.loadChat)
	}
}

func (h *aiHandler) insights(c *gin.Context) {
	data, err := h.aiService.Insights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

func (h *aiHandler) cashflowForecast(c *gin.Context) {
	var query dto.CashflowForecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	data, err := h.aiService.CashflowForecast(c.Request.Context(), query.Days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

func (h *aiHandler) stockForecast(c *gin.Context) {
	data, err := h.aiService.StockForecast(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

func (h *aiHandler) costRecommendations(c *gin.Context) {
	data, err := h.aiService.CostRecommendations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

func (h *aiHandler) salesRecommendations(c *gin.Context) {
	data, err := h.aiService.SalesRecommendations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(data))
}

func (h *aiHandler) listChats(c *gin.Context) {
	chats, err := h.aiService.ListChats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(chats))
}

func (h *aiHandler) chatState(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(dto.ChatStateResponse{
		ChatID:   h.chatService.ChatID(),
		Messages: h.chatService.Messages(),
	}))
}

func (h *aiHandler) sendMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for chat message", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	messages, err := h.chatService.SendMessage(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ChatStateResponse{
		ChatID:   h.chatService.ChatID(),
		Messages: messages,
	}))
}

func (h *aiHandler) startNewChat(c *gin.Context) {
	h.chatService.StartNewChat()
	c.JSON(http.StatusOK, dto.OK(dto.ChatStateResponse{Messages: h.chatService.Messages()}))
}

func (h *aiHandler) loadHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = 50
	}

	messages, err := h.chatService.LoadHistory(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ChatStateResponse{
		ChatID:   h.chatService.ChatID(),
		Messages: messages,
	}))
}

func (h *aiHandler) loadChat(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	messages, err := h.chatService.LoadChatByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ChatStateResponse{
		ChatID:   h.chatService.ChatID(),
		Messages: messages,
	}))
}
