package repositories

import (
	"context"
	"encoding/json"
	"io"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

// The interfaces in this file are the outbound ports to the remote NusaBiz
// REST API. Adapters live next to the transport in internal/adapters/backend.

// Credentials carries a login or registration request to the auth endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// AuthBackend covers the public auth endpoints and the authenticated profile read.
type AuthBackend interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, creds Credentials) (string, error)

	// Register creates an account and returns the issued bearer token.
	Register(ctx context.Context, creds Credentials) (string, error)

	// ForgotPassword requests a reset mail for the address.
	ForgotPassword(ctx context.Context, email string) error

	// Me fetches the authenticated user's profile.
	Me(ctx context.Context) (*domain.User, error)
}

// BusinessBackend retrieves the businesses the user owns.
type BusinessBackend interface {
	ListBusinesses(ctx context.Context) ([]domain.Business, error)
}

// NewTransaction is the payload for creating a transaction.
type NewTransaction struct {
	Type        domain.TransactionType   `json:"type"`
	Category    string                   `json:"category,omitempty"`
	Amount      decimal.Decimal          `json:"amount"`
	Description string                   `json:"description,omitempty"`
	Status      domain.TransactionStatus `json:"status,omitempty"`
}

// TransactionUpdate is the payload for updating a transaction. Nil fields are
// left untouched by the backend.
//
// Type is never serialized: a transaction's Income/Expense type is fixed at
// creation because the reversal math downstream assumes it. The service layer
// rejects any update that sets it.
type TransactionUpdate struct {
	Date        *string                   `json:"date,omitempty"`
	Category    *string                   `json:"category,omitempty"`
	Amount      *decimal.Decimal          `json:"amount,omitempty"`
	Description *string                   `json:"description,omitempty"`
	Status      *domain.TransactionStatus `json:"status,omitempty"`
	Type        *domain.TransactionType   `json:"-"`
}

// SaleLine is one product line in a recorded sale or purchase.
type SaleLine struct {
	ProductID int64           `json:"productId"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"-"`
}

// TransactionBackend covers the business-scoped transaction endpoints.
type TransactionBackend interface {
	ListTransactions(ctx context.Context, businessID int64, filter domain.TransactionFilter) (*domain.TransactionPage, error)
	GetTransaction(ctx context.Context, businessID, transactionID int64) (*domain.TransactionWithDetails, error)
	CreateTransaction(ctx context.Context, businessID int64, tx NewTransaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, businessID, transactionID int64, update TransactionUpdate) (*domain.Transaction, error)
	CancelTransaction(ctx context.Context, businessID, transactionID int64) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, businessID, transactionID int64) error
	RecordSale(ctx context.Context, businessID int64, lines []SaleLine, description string) (*domain.TransactionWithDetails, error)
	RecordPurchase(ctx context.Context, businessID int64, lines []SaleLine, description string) (*domain.TransactionWithDetails, error)
	TransactionTotals(ctx context.Context, businessID int64, startDate, endDate string) (*domain.TransactionTotals, error)
}

// NewProduct is the payload for creating or updating a product.
type NewProduct struct {
	Name          string           `json:"name"`
	BaseStock     int64            `json:"base_stock"`
	CurrentStock  int64            `json:"current_stock"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SellingPrice  *decimal.Decimal `json:"selling_price,omitempty"`
}

// ProductBackend covers the business-scoped product endpoints.
type ProductBackend interface {
	ListProducts(ctx context.Context, businessID int64) ([]domain.Product, error)
	GetProduct(ctx context.Context, businessID, productID int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, businessID int64, p NewProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, businessID, productID int64, p NewProduct) (*domain.Product, error)
	DeleteProduct(ctx context.Context, businessID, productID int64) error

	// AdjustStock applies a relative stock change and returns the product as
	// the backend now sees it.
	AdjustStock(ctx context.Context, businessID, productID int64, quantityChange int64) (*domain.Product, error)

	// UploadImage attaches an image to a product via multipart upload.
	UploadImage(ctx context.Context, businessID, productID int64, filename string, r io.Reader) (*domain.Product, error)
}

// AIBackend covers the AI panel endpoints. Recommendation payloads are opaque
// to the gateway and passed through as raw JSON.
type AIBackend interface {
	Insights(ctx context.Context, businessID int64) (json.RawMessage, error)
	CashflowForecast(ctx context.Context, businessID int64, days int) (json.RawMessage, error)
	CostRecommendations(ctx context.Context, businessID int64) (json.RawMessage, error)
	SalesRecommendations(ctx context.Context, businessID int64) (json.RawMessage, error)
	StockForecast(ctx context.Context, businessID int64) (json.RawMessage, error)

	SendChatMessage(ctx context.Context, businessID int64, message string, chatID *int64) (*domain.ChatInteraction, error)
	ChatHistory(ctx context.Context, businessID int64, limit int) (*domain.ChatHistory, error)
	ListChats(ctx context.Context, businessID int64) ([]domain.Chat, error)
	GetChatByID(ctx context.Context, businessID, chatID int64) (*domain.ChatHistory, error)
}
