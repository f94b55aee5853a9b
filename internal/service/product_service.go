package service

import (
	"context"

	"rapidbill/internal/domain"
	"rapidbill/internal/port"
)

// ProductInput carries the writable fields of a catalog entry.
type ProductInput struct {
	ID            string  `json:"id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price"`
	PurchasePrice float64 `json:"purchase_price"`
	HSN           string  `json:"hsn"`
	GSTRate       float64 `json:"gst_rate"`
}

// ProductService manages the product catalog.
type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	products port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(products port.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:            in.ID,
		Name:          in.Name,
		Price:         in.Price,
		PurchasePrice: in.PurchasePrice,
		HSN:           in.HSN,
		GSTRate:       in.GSTRate,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, p.ID)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Update(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Price = in.Price
	p.PurchasePrice = in.PurchasePrice
	p.HSN = in.HSN
	p.GSTRate = in.GSTRate

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
