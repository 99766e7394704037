package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/dto"
	"github.com/nusabiz/nusabiz_gateway/internal/middleware"
)

// productHandler serves the product catalogue and the stock controls.
type productHandler struct {
	productService portssvc.ProductSvcFacade
	stockService   portssvc.StockSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade, ss portssvc.StockSvcFacade) *productHandler {
	return &productHandler{productService: ps, stockService: ss}
}

func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade, stockService portssvc.StockSvcFacade) {
	h := newProductHandler(productService, stockService)

	products := rg.Group("/products")
	{
		products.GET("", h.list)
		products.POST("", h.create)
		products.PUT("/:id", h.update)
		products.DELETE("/:id", h.delete)
		products.POST("/:id/image", h.uploadImage)

		products.GET("/:id/stock", h.stockState)
		products.PATCH("/:id/stock", h.mutateStock)
	}
}

func (h *productHandler) list(c *gin.Context) {
	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), query.Sort)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListProductResponse(products)))
}

func (h *productHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create product", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	created, err := h.productService.CreateProduct(c.Request.Context(), req.ToNewProduct())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToProductResponse(created)))
}

func (h *productHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.productService.UpdateProduct(c.Request.Context(), id, req.ToNewProduct())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToProductResponse(updated)))
}

func (h *productHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"message": "Product deleted"}))
}

func (h *productHandler) uploadImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Image file is required"))
		return
	}
	src, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer src.Close()

	updated, err := h.productService.UploadProductImage(c.Request.Context(), id, file.Filename, src)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToProductResponse(updated)))
}

// stockState reports the controller snapshot. An error recorded by a failed
// background send is delivered here exactly once.
func (h *productHandler) stockState(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	state, err := h.stockService.StockState(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(state))
}

// mutateStock applies one edit from the product card. The response reflects
// the optimistic state; the backend send happens after the debounce window.
func (h *productHandler) mutateStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StockMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	var state *domain.StockState
	var err error
	switch req.Op {
	case "increment":
		state, err = h.stockService.Increment(ctx, id)
	case "decrement":
		state, err = h.stockService.Decrement(ctx, id)
	case "set":
		state, err = h.stockService.SetStock(ctx, id, req.Value)
	case "input":
		state, err = h.stockService.SetStockFromInput(ctx, id, req.Raw)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(state))
}
