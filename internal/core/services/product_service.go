package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
)

type productService struct {
	BaseService
	products portsrepo.ProductBackend
}

// NewProductService creates the product catalogue service.
func NewProductService(products portsrepo.ProductBackend, sessions portsrepo.SessionReader) portssvc.ProductSvcFacade {
	return &productService{
		BaseService: BaseService{Sessions: sessions},
		products:    products,
	}
}

func (s *productService) ListProducts(ctx context.Context, sortKey string) ([]domain.Product, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListProducts(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	for i := range products {
		if products[i].StockStatus == "" {
			products[i].StockStatus = domain.DeriveStockStatus(products[i].CurrentStock, products[i].BaseStock)
		}
	}
	return SortProducts(products, sortKey), nil
}

func (s *productService) CreateProduct(ctx context.Context, p portsrepo.NewProduct) (*domain.Product, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	created, err := s.products.CreateProduct(ctx, businessID, p)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "product created", slog.Int64("product_id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, p portsrepo.NewProduct) (*domain.Product, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	return s.products.UpdateProduct(ctx, businessID, productID, p)
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return err
	}
	if err := s.products.DeleteProduct(ctx, businessID, productID); err != nil {
		return err
	}
	s.LogInfo(ctx, "product deleted", slog.Int64("product_id", productID))
	return nil
}

func (s *productService) UploadProductImage(ctx context.Context, productID int64, filename string, r io.Reader) (*domain.Product, error) {
	businessID, err := s.ActiveBusiness(ctx)
	if err != nil {
		return nil, err
	}
	if !validImageName(filename) {
		return nil, fmt.Errorf("unsupported image type for %q: %w", filename, apperrors.ErrValidation)
	}
	return s.products.UploadImage(ctx, businessID, productID, filename, r)
}

func validateProduct(p portsrepo.NewProduct) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required: %w", apperrors.ErrValidation)
	}
	if p.BaseStock < 0 {
		return fmt.Errorf("base stock cannot be negative: %w", apperrors.ErrValidation)
	}
	if p.CurrentStock < 0 || p.CurrentStock > p.BaseStock {
		return fmt.Errorf("current stock must be within [0, %d]: %w", p.BaseStock, apperrors.ErrValidation)
	}
	return nil
}

func validImageName(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".webp"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
