package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/dto"
)

// dashboardHandler serves the derived dashboard views.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.summary)
		dashboard.GET("/monthly", h.monthly)
		dashboard.GET("/recent", h.recent)
	}
}

func (h *dashboardHandler) summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(summary))
}

func (h *dashboardHandler) monthly(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))

	series, err := h.dashboardService.MonthlySeries(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(series))
}

func (h *dashboardHandler) recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	txns, err := h.dashboardService.RecentTransactions(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListTransactionResponse(txns)))
}
