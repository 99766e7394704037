package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/handlers"
)

// --- Mock SessionReader ---
type MockSessionReader struct {
	mock.Mock
}

func (m *MockSessionReader) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSessionReader) BusinessID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionReader) CachedUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, opts portssvc.TransactionListOptions) (*domain.TransactionPage, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID int64) (*domain.TransactionWithDetails, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithDetails), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, tx portsrepo.NewTransaction) (*domain.Transaction, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID int64, update portsrepo.TransactionUpdate) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CancelTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return m.Called(ctx, transactionID).Error(0)
}

func (m *MockTransactionService) RecordSale(ctx context.Context, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error) {
	args := m.Called(ctx, lines, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithDetails), args.Error(1)
}

func (m *MockTransactionService) RecordPurchase(ctx context.Context, lines []portsrepo.SaleLine, description string) (*domain.TransactionWithDetails, error) {
	args := m.Called(ctx, lines, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionWithDetails), args.Error(1)
}

func (m *MockTransactionService) TransactionTotals(ctx context.Context, startDate, endDate string) (*domain.TransactionTotals, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionTotals), args.Error(1)
}

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportTransactions(ctx context.Context, transactions []domain.Transaction) ([]byte, string, error) {
	args := m.Called(ctx, transactions)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockSessions *MockSessionReader
	mockService  *MockTransactionService
	mockExport   *MockExportService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockSessions = new(MockSessionReader)
	suite.mockService = new(MockTransactionService)
	suite.mockExport = new(MockExportService)

	container := &portssvc.ServiceContainer{
		Transaction: suite.mockService,
		Export:      suite.mockExport,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, container, suite.mockSessions)
}

func (suite *TransactionHandlerTestSuite) authenticate() {
	suite.mockSessions.On("Token", mock.Anything).Return("test-token", nil)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (suite *TransactionHandlerTestSuite) do(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (suite *TransactionHandlerTestSuite) TestList_Success() {
	suite.authenticate()
	page := &domain.TransactionPage{
		Transactions: []domain.Transaction{
			{ID: 1, Type: domain.Income, Amount: decimal.NewFromInt(150000), Category: "Penjualan"},
		},
		Pagination: domain.Pagination{Total: 1},
	}
	suite.mockService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(opts portssvc.TransactionListOptions) bool {
		return opts.Query == "kopi" && opts.Type == domain.Income
	})).Return(page, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?q=kopi&type=Income", nil)
	w, env := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(env.Success)
	suite.Contains(string(env.Data), `"typeLabel":"Pemasukan"`)
	suite.Contains(string(env.Data), `"amountDisplay":"+ Rp 150.000"`)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestList_RequiresSession() {
	suite.mockSessions.On("Token", mock.Anything).Return("", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w, env := suite.do(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(env.Success)
	suite.Require().NotNil(env.Error)
	suite.Contains(env.Error.Message, "login")
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestUpdate_TypeChangeRejected() {
	suite.authenticate()
	suite.mockService.On("UpdateTransaction", mock.Anything, int64(3), mock.Anything).
		Return(nil, fmt.Errorf("transaction type cannot be changed after creation: %w", apperrors.ErrValidation)).Once()

	body := bytes.NewBufferString(`{"type":"Expense"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/transactions/3", body)
	req.Header.Set("Content-Type", "application/json")
	w, env := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.Success)
	suite.Require().NotNil(env.Error)
	suite.Contains(env.Error.Message, "type cannot be changed")
}

func (suite *TransactionHandlerTestSuite) TestCreate_InvalidPayload() {
	suite.authenticate()

	body := bytes.NewBufferString(`{"type":"Transfer","amount":100}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", body)
	req.Header.Set("Content-Type", "application/json")
	w, env := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.Success)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestRecordSale_ForwardsUnitPrice() {
	suite.authenticate()
	recorded := &domain.TransactionWithDetails{
		Transaction: domain.Transaction{ID: 9, Type: domain.Income, Amount: decimal.NewFromInt(45000)},
	}
	suite.mockService.On("RecordSale", mock.Anything, mock.MatchedBy(func(lines []portsrepo.SaleLine) bool {
		return len(lines) == 1 &&
			lines[0].ProductID == 1 &&
			lines[0].Quantity == 3 &&
			lines[0].UnitPrice.Equal(decimal.NewFromInt(15000))
	}), "kopi").Return(recorded, nil).Once()

	body := bytes.NewBufferString(`{"lines":[{"productId":1,"quantity":3,"unitPrice":15000}],"description":"kopi"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/sales", body)
	req.Header.Set("Content-Type", "application/json")
	w, env := suite.do(req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(env.Success)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRecordSale_RejectsLineWithoutUnitPrice() {
	suite.authenticate()

	body := bytes.NewBufferString(`{"lines":[{"productId":1,"quantity":3}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/sales", body)
	req.Header.Set("Content-Type", "application/json")
	w, env := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.Success)
	suite.mockService.AssertNotCalled(suite.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestExport_ServesAttachment() {
	suite.authenticate()
	page := &domain.TransactionPage{
		Transactions: []domain.Transaction{{ID: 1, Type: domain.Income, Amount: decimal.NewFromInt(1000)}},
	}
	content := []byte("workbook-bytes")
	suite.mockService.On("ListTransactions", mock.Anything, mock.Anything).Return(page, nil).Once()
	suite.mockExport.On("ExportTransactions", mock.Anything, page.Transactions).
		Return(content, "Transaksi_2025-03-07.xlsx", nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/export", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="Transaksi_2025-03-07.xlsx"`, w.Header().Get("Content-Disposition"))
	suite.Equal(content, w.Body.Bytes())
}

func (suite *TransactionHandlerTestSuite) TestSessionExpiredMapsTo401() {
	suite.authenticate()
	suite.mockService.On("ListTransactions", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("GET /transactions: %w", apperrors.ErrSessionExpired)).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w, env := suite.do(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Require().NotNil(env.Error)
	suite.Contains(env.Error.Message, "expired")
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
