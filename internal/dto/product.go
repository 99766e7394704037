package dto

import (
	"github.com/shopspring/decimal"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	"github.com/nusabiz/nusabiz_gateway/internal/utils/format"
)

// SaveProductRequest defines the data needed to create or update a product.
type SaveProductRequest struct {
	Name          string           `json:"name" binding:"required"`
	BaseStock     int64            `json:"baseStock" binding:"gte=0"`
	CurrentStock  int64            `json:"currentStock" binding:"gte=0,ltefield=BaseStock"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice"`
}

// ToNewProduct converts the request to the backend payload.
func (r SaveProductRequest) ToNewProduct() portsrepo.NewProduct {
	return portsrepo.NewProduct{
		Name:          r.Name,
		BaseStock:     r.BaseStock,
		CurrentStock:  r.CurrentStock,
		PurchasePrice: r.PurchasePrice,
		SellingPrice:  r.SellingPrice,
	}
}

// ListProductsQuery captures the catalogue sort key from the query string.
type ListProductsQuery struct {
	Sort string `form:"sort" binding:"omitempty,oneof=stok-tertinggi stok-terendah harga-tertinggi harga-terendah"`
}

// StockMutationRequest is one stock edit from the product card.
//
// Op "increment" and "decrement" move by one, "set" applies Value, and
// "input" parses Raw like a typed field where invalid text reverts.
type StockMutationRequest struct {
	Op    string `json:"op" binding:"required,oneof=increment decrement set input"`
	Value int64  `json:"value"`
	Raw   string `json:"raw"`
}

// ProductResponse is a product decorated with its display fields.
type ProductResponse struct {
	ID                   int64            `json:"id"`
	Name                 string           `json:"name"`
	BaseStock            int64            `json:"baseStock"`
	CurrentStock         int64            `json:"currentStock"`
	StockPercent         int64            `json:"stockPercent"`
	StockStatus          string           `json:"stockStatus"`
	PurchasePrice        *decimal.Decimal `json:"purchasePrice"`
	SellingPrice         *decimal.Decimal `json:"sellingPrice"`
	SellingPriceDisplay  string           `json:"sellingPriceDisplay,omitempty"`
	PurchasePriceDisplay string           `json:"purchasePriceDisplay,omitempty"`
	Image                string           `json:"image,omitempty"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	res := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		BaseStock:     p.BaseStock,
		CurrentStock:  p.CurrentStock,
		StockPercent:  p.StockPercent(),
		StockStatus:   string(p.StockStatus),
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Image:         p.Image,
	}
	if p.SellingPrice != nil {
		res.SellingPriceDisplay = "Rp " + format.Number(*p.SellingPrice)
	}
	if p.PurchasePrice != nil {
		res.PurchasePriceDisplay = "Rp " + format.Number(*p.PurchasePrice)
	}
	return res
}

// ToListProductResponse converts a slice of products to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
