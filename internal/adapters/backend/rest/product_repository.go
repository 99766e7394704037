package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portsrepo "github.com/nusabiz/nusabiz_gateway/internal/core/ports/repositories"
)

// ProductRepository implements the business-scoped product endpoints.
type ProductRepository struct {
	client *Client
}

// NewProductRepository creates a ProductRepository over the shared client.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

var _ portsrepo.ProductBackend = (*ProductRepository)(nil)

func productsPath(businessID int64) string {
	return fmt.Sprintf("/businesses/%d/products", businessID)
}

// ListProducts returns the business's catalogue.
func (r *ProductRepository) ListProducts(ctx context.Context, businessID int64) ([]domain.Product, error) {
	var out struct {
		Products []domain.Product `json:"products"`
	}
	if err := r.client.do(ctx, http.MethodGet, productsPath(businessID), nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// GetProduct fetches a single product by id.
func (r *ProductRepository) GetProduct(ctx context.Context, businessID, productID int64) (*domain.Product, error) {
	var p domain.Product
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", productsPath(businessID), productID), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct adds a product.
func (r *ProductRepository) CreateProduct(ctx context.Context, businessID int64, p portsrepo.NewProduct) (*domain.Product, error) {
	var created domain.Product
	if err := r.client.do(ctx, http.MethodPost, productsPath(businessID), p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a product's editable fields.
func (r *ProductRepository) UpdateProduct(ctx context.Context, businessID, productID int64, p portsrepo.NewProduct) (*domain.Product, error) {
	var updated domain.Product
	path := fmt.Sprintf("%s/%d", productsPath(businessID), productID)
	if err := r.client.do(ctx, http.MethodPut, path, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct soft-deletes a product.
func (r *ProductRepository) DeleteProduct(ctx context.Context, businessID, productID int64) error {
	path := fmt.Sprintf("%s/%d", productsPath(businessID), productID)
	return r.client.do(ctx, http.MethodDelete, path, nil, nil)
}

// AdjustStock applies a relative stock change on the backend.
func (r *ProductRepository) AdjustStock(ctx context.Context, businessID, productID int64, quantityChange int64) (*domain.Product, error) {
	body := map[string]int64{"quantityChange": quantityChange}
	path := fmt.Sprintf("%s/%d/stock", productsPath(businessID), productID)
	var updated domain.Product
	if err := r.client.do(ctx, http.MethodPatch, path, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UploadImage attaches an image to a product via multipart upload.
func (r *ProductRepository) UploadImage(ctx context.Context, businessID, productID int64, filename string, src io.Reader) (*domain.Product, error) {
	path := fmt.Sprintf("%s/%d/image", productsPath(businessID), productID)
	var updated domain.Product
	if err := r.client.doMultipart(ctx, http.MethodPost, path, "image", filename, src, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
