package services

import (
	"context"
	"io"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// ProductSvcFacade exposes the product catalogue of the active business.
type ProductSvcFacade interface {
	// ListProducts returns the catalogue, optionally sorted by one of the
	// domain.Sort* keys. An unknown key returns the backend order.
	ListProducts(ctx context.Context, sortKey string) ([]domain.Product, error)

	CreateProduct(ctx context.Context, p portsrepo.NewProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, p portsrepo.NewProduct) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
	UploadProductImage(ctx context.Context, productID int64, filename string, r io.Reader) (*domain.Product, error)
}
