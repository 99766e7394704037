package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/dto"
	"github.com/nusabiz/nusabiz_gateway/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// transactionHandler serves the transaction table and its actions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	exportService      portssvc.ExportSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, es portssvc.ExportSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts, exportService: es}
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, exportService portssvc.ExportSvcFacade) {
	h := newTransactionHandler(transactionService, exportService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.list)
		transactions.GET("/export", h.export)
		transactions.GET("/totals", h.totals)
		transactions.GET("/:id", h.get)
		transactions.POST("", h.create)
		transactions.PUT("/:id", h.update)
		transactions.POST("/:id/cancel", h.cancel)
		transactions.DELETE("/:id", h.delete)
		transactions.POST("/sales", h.recordSale)
		transactions.POST("/purchases", h.recordPurchase)
	}
}

func (h *transactionHandler) list(c *gin.Context) {
	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), query.ToOptions())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionPageResponse(page)))
}

// export streams the filtered listing as an xlsx attachment.
func (h *transactionHandler) export(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.transactionService.ListTransactions(c.Request.Context(), query.ToOptions())
	if err != nil {
		respondError(c, err)
		return
	}

	content, filename, err := h.exportService.ExportTransactions(c.Request.Context(), page.Transactions)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Serving transaction export", slog.String("filename", filename))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}

func (h *transactionHandler) totals(c *gin.Context) {
	totals, err := h.transactionService.TransactionTotals(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(totals))
}

func (h *transactionHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(tx))
}

func (h *transactionHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create transaction", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), req.ToNewTransaction())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToTransactionResponse(created)))
}

func (h *transactionHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, req.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(updated)))
}

func (h *transactionHandler) cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cancelled, err := h.transactionService.CancelTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(cancelled)))
}

func (h *transactionHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "Transaction deleted"}))
}

func (h *transactionHandler) recordSale(c *gin.Context) {
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recorded, err := h.transactionService.RecordSale(c.Request.Context(), req.ToLines(), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(recorded))
}

func (h *transactionHandler) recordPurchase(c *gin.Context) {
	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recorded, err := h.transactionService.RecordPurchase(c.Request.Context(), req.ToLines(), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(recorded))
}
