package dto

import (
	"github.com/shopspring/decimal"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/utils/format"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,txtype"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status" binding:"omitempty,oneof=pending complete cancel"`
}

// ToNewTransaction converts the request to the backend payload.
func (r CreateTransactionRequest) ToNewTransaction() portsrepo.NewTransaction {
	return portsrepo.NewTransaction{
		Type:        domain.TransactionType(r.Type),
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
		Status:      domain.TransactionStatus(r.Status),
	}
}

// UpdateTransactionRequest carries a partial transaction edit. Type is
// accepted in the payload so the service can reject the attempt explicitly
// instead of silently dropping the field.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date"`
	Type        *string          `json:"type"`
	Category    *string          `json:"category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Status      *string          `json:"status" binding:"omitempty,oneof=pending complete cancel"`
}

// ToUpdate converts the request to the backend payload.
func (r UpdateTransactionRequest) ToUpdate() portsrepo.TransactionUpdate {
	update := portsrepo.TransactionUpdate{
		Date:        r.Date,
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
	}
	if r.Type != nil {
		t := domain.TransactionType(*r.Type)
		update.Type = &t
	}
	if r.Status != nil {
		s := domain.TransactionStatus(*r.Status)
		update.Status = &s
	}
	return update
}

// SaleLineRequest is one product line of a sale or purchase. UnitPrice is the
// per-unit selling or purchase price the backend books the line at.
type SaleLineRequest struct {
	ProductID int64           `json:"productId" binding:"required,gt=0"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// RecordSaleRequest defines the data needed to record a sale or a purchase.
type RecordSaleRequest struct {
	Lines       []SaleLineRequest `json:"lines" binding:"required,min=1,dive"`
	Description string            `json:"description"`
}

// ToLines converts the request lines to the backend payload.
func (r RecordSaleRequest) ToLines() []portsrepo.SaleLine {
	lines := make([]portsrepo.SaleLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = portsrepo.SaleLine{ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return lines
}

// ListTransactionsQuery captures the table filters from the query string.
type ListTransactionsQuery struct {
	Type      string `form:"type" binding:"omitempty,txtype"`
	Category  string `form:"category"`
	Status    string `form:"status" binding:"omitempty,oneof=pending complete cancel"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Limit     int    `form:"limit" binding:"omitempty,gte=1,lte=500"`
	Offset    int    `form:"offset" binding:"omitempty,gte=0"`
	Query     string `form:"q"`
}

// ToOptions converts the query to service list options.
func (q ListTransactionsQuery) ToOptions() portssvc.TransactionListOptions {
	return portssvc.TransactionListOptions{
		TransactionFilter: domain.TransactionFilter{
			Type:      domain.TransactionType(q.Type),
			Category:  q.Category,
			Status:    domain.TransactionStatus(q.Status),
			StartDate: q.StartDate,
			EndDate:   q.EndDate,
			Limit:     q.Limit,
			Offset:    q.Offset,
		},
		Query: q.Query,
	}
}

// TransactionResponse is a transaction decorated with its Indonesian display
// strings, ready for rendering.
type TransactionResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	DateDisplay   string          `json:"dateDisplay"`
	Type          string          `json:"type"`
	TypeLabel     string          `json:"typeLabel"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amountDisplay"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"statusLabel"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Date:          t.TransactionDate.Format("2006-01-02"),
		DateDisplay:   format.DateLong(t.TransactionDate),
		Type:          string(t.Type),
		TypeLabel:     format.TypeLabel(t.Type),
		Category:      t.Category,
		Amount:        t.Amount,
		AmountDisplay: format.Amount(t.Amount, t.Type),
		Description:   t.Description,
		Status:        string(t.Status),
		StatusLabel:   format.StatusLabel(t.Status),
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// TransactionPageResponse is a decorated listing plus its pagination window.
type TransactionPageResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   domain.Pagination     `json:"pagination"`
}

// ToTransactionPageResponse converts a listing page to its response DTO.
func ToTransactionPageResponse(page *domain.TransactionPage) TransactionPageResponse {
	return TransactionPageResponse{
		Transactions: ToListTransactionResponse(page.Transactions),
		Pagination:   page.Pagination,
	}
}
