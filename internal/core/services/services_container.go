package services

import (
	"log/slog"

	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/platform/config"
)

// NewServiceContainer wires all services with their repositories.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.AuthBackend, repos.BusinessBackend, repos.SessionRepo)
	container.Dashboard = NewDashboardService(repos.TransactionRepo, repos.SessionRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.ProductRepo, repos.SessionRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.SessionRepo)
	container.Stock = NewStockService(repos.ProductRepo, repos.SessionRepo, logger,
		WithStockDebounce(cfg.StockDebounce),
		WithStockSendTimeout(cfg.HTTPTimeout),
	)
	container.Chat = NewChatService(repos.AIBackend, repos.SessionRepo)
	container.AI = NewAIService(repos.AIBackend, repos.SessionRepo)
	container.Export = NewExportService()

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
	_ portssvc.DashboardSvcFacade   = (*dashboardService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ProductSvcFacade     = (*productService)(nil)
	_ portssvc.StockSvcFacade       = (*stockService)(nil)
	_ portssvc.ChatSvcFacade        = (*chatService)(nil)
	_ portssvc.AISvcFacade          = (*aiService)(nil)
	_ portssvc.ExportSvcFacade      = (*exportService)(nil)
)
