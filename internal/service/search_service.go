package service

import (
	"context"

	"rapidbill/internal/config"
	"rapidbill/internal/match"
	"rapidbill/internal/port"
)

// SearchService ranks catalog and ledger entries for search-as-you-type
// selection.
type SearchService interface {
	Products(ctx context.Context, query string) ([]match.Result, error)
	Customers(ctx context.Context, query string) ([]match.Result, error)
}

type searchService struct {
	products  port.ProductRepository
	customers port.CustomerRepository
	limit     int
}

// NewSearchService creates a new SearchService implementation.
func NewSearchService(products port.ProductRepository, customers port.CustomerRepository, cfg config.BillingConfig) SearchService {
	return &searchService{
		products:  products,
		customers: customers,
		limit:     cfg.SearchLimit,
	}
}

func (s *searchService) Products(ctx context.Context, query string) ([]match.Result, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]match.Entry, 0, len(products))
	for _, p := range products {
		entries = append(entries, match.Entry{ID: p.ID, Label: p.Name, SubLabel: p.ID})
	}
	return match.Rank(query, entries, s.limit), nil
}

func (s *searchService) Customers(ctx context.Context, query string) ([]match.Result, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]match.Entry, 0, len(customers))
	for _, c := range customers {
		entries = append(entries, match.Entry{ID: c.ID.String(), Label: c.Name, SubLabel: c.Phone})
	}
	return match.Rank(query, entries, s.limit), nil
}
