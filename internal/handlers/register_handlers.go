package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/middleware"
)

// registerCustomValidators wires domain-aware rules into gin's binding validator.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txtype", func(fl validator.FieldLevel) bool {
			return domain.TransactionType(fl.Field().String()).Valid()
		})
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	sessions portsrepo.SessionReader,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication and local session routes
	registerAuthRoutes(r, services)

	// Setup API v1 routes gated on a stored session
	setupAPIV1Routes(r, services, sessions)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	sessions portsrepo.SessionReader,
) {
	// Everything below requires a stored session token
	v1 := r.Group("/api/v1", middleware.RequireSession(sessions))

	registerDashboardRoutes(v1, services.Dashboard)
	registerTransactionRoutes(v1, services.Transaction, services.Export)
	registerProductRoutes(v1, services.Product, services.Stock)
	registerAIRoutes(v1, services.AI, services.Chat)
}
