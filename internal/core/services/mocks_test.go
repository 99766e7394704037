package services_test

import (
	"context"
	"encoding/json"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) BusinessID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) CachedUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockSessionRepository) SetToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessionRepository) SetBusinessID(ctx context.Context, businessID int64) error {
	return m.Called(ctx, businessID).Error(0)
}

func (m *MockSessionRepository) SetCachedUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockSessionRepository) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// expectActiveSession primes the reader side for a logged-in session.
func (m *MockSessionRepository) expectActiveSession(businessID int64) {
	m.On("Token", mock.Anything).Return("test-token", nil)
	m.On("BusinessID", mock.Anything).Return(businessID, nil)
}

// --- Mock ProductBackend ---
type MockProductBackend struct {
	mock.Mock
}

func (m *MockProductBackend) ListProducts(ctx context.Context, businessID int64) ([]domain.Product, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductBackend) GetProduct(ctx context.Context, businessID, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, businessID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductBackend) CreateProduct(ctx context.Context, businessID int64, p portsrepo.NewProduct) (*domain.Product, error) {
	args := m.Called(ctx, businessID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductBackend) UpdateProduct(ctx context.Context, businessID, productID int64, p portsrepo.NewProduct) (*domain.Product, error) {
	args := m.Called(ctx, businessID, productID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductBackend) DeleteProduct(ctx context.Context, businessID, productID int64) error {
	return m.Called(ctx, businessID, productID).Error(0)
}

func (m *MockProductBackend) AdjustStock(ctx context.Context, businessID, productID int64, quantityChange int64) (*domain.Product, error) {
	args := m.Called(ctx, businessID, productID, quantityChange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductBackend) UploadImage(ctx context.Context, businessID, productID int64, filename string, r io.Reader) (*domain.Product, error) {
	args := m.Called(ctx, businessID, productID, filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

// --- Mock TransactionBackend ---
type MockTransactionBackend struct {
	mock.Mock
}

func (m *MockTransactionBackend) ListTransactions(ctx context.Context, businessID int64, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	args := m.Called(ctx, businessID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionBackend) GetTransaction(ctx context.Context, businessID, transactionID int64) (*domain.TransactionWithDetails, error) {
	args := m.Called(ctx, businessID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithDetails), args.Error(1)
}

func (m *MockTransactionBackend) CreateTransaction(ctx context.Context, businessID int64, tx portsrepo.NewTransaction) (*domain.Transaction, error) {
	args := m.Called(ctx, businessID, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionBackend) UpdateTransaction(ctx context.Context, businessID, transactionID int64, update portsrepo.TransactionUpdate) (*domain.Transaction, error) {
	args := m.Called(ctx, businessID, transactionID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionBackend) CancelTransaction(ctx context.Context, businessID, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, businessID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionBackend) DeleteTransaction(ctx context.Context, businessID, transactionID int64) error {
	return m.Called(ctx, businessID, transactionID).Error(0)
}

func (m *MockTransactionBackend) RecordSale(ctx context.Context, businessID int64, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error) {
	args := m.Called(ctx, businessID, lines, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithDetails), args.Error(1)
}

func (m *MockTransactionBackend) RecordPurchase(ctx context.Context, businessID int64, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error) {
	args := m.Called(ctx, businessID, lines, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithDetails), args.Error(1)
}

func (m *MockTransactionBackend) TransactionTotals(ctx context.Context, businessID int64, startDate, endDate string) (*domain.TransactionTotals, error) {
	args := m.Called(ctx, businessID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionTotals), args.Error(1)
}

// --- Mock AuthBackend ---
type MockAuthBackend struct {
	mock.Mock
}

func (m *MockAuthBackend) Login(ctx context.Context, creds portsrepo.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

func (m *MockAuthBackend) Register(ctx context.Context, creds portsrepo.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

func (m *MockAuthBackend) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthBackend) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock BusinessBackend ---
type MockBusinessBackend struct {
	mock.Mock
}

func (m *MockBusinessBackend) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

// --- Mock AIBackend ---
type MockAIBackend struct {
	mock.Mock
}

func (m *MockAIBackend) Insights(ctx context.Context, businessID int64) (json.RawMessage, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAIBackend) CashflowForecast(ctx context.Context, businessID int64, days int) (json.RawMessage, error) {
	args := m.Called(ctx, businessID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAIBackend) CostRecommendations(ctx context.Context, businessID int64) (json.RawMessage, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAIBackend) SalesRecommendations(ctx context.Context, businessID int64) (json.RawMessage, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAIBackend) StockForecast(ctx context.Context, businessID int64) (json.RawMessage, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAIBackend) SendChatMessage(ctx context.Context, businessID int64, message string, chatID *int64) (*domain.ChatInteraction, error) {
	args := m.Called(ctx, businessID, message, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatInteraction), args.Error(1)
}

func (m *MockAIBackend) ChatHistory(ctx context.Context, businessID int64, limit int) (*domain.ChatHistory, error) {
	args := m.Called(ctx, businessID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatHistory), args.Error(1)
}

func (m *MockAIBackend) ListChats(ctx context.Context, businessID int64) ([]domain.Chat, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chat), args.Error(1)
}

func (m *MockAIBackend) GetChatByID(ctx context.Context, businessID, chatID int64) (*domain.ChatHistory, error) {
	args := m.Called(ctx, businessID, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatHistory), args.Error(1)
}
