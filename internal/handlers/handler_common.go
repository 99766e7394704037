package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	"github.com/nusabiz/nusabiz_gateway/internal/dto"
)

// respondError maps service errors onto HTTP statuses inside the uniform
// envelope. Validation and session problems carry their message through;
// anything unexpected is reported generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrNoSession):
		c.JSON(http.StatusUnauthorized, dto.Fail("Authentication required. Please login first."))
	case errors.Is(err, apperrors.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, dto.Fail("Session expired. Please login again."))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrBackend):
		c.JSON(http.StatusBadGateway, dto.Fail(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}

// respondBindError reports a request binding failure.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Fail("Invalid request format: "+err.Error()))
}

// pathID parses a numeric path parameter. A second return of false means the
// 400 response has already been written.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
