package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rapidbill/internal/domain"
	"rapidbill/internal/service"
	"rapidbill/mocks"
)

func TestProductService_Create(t *testing.T) {
	prodRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(prodRepo)

	created := &domain.Product{ID: "1001", Name: "Basmati Rice 5kg", Price: 450}
	prodRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID == "1001" && p.Name == "Basmati Rice 5kg"
	})).Return(nil)
	prodRepo.On("GetByID", mock.Anything, "1001").Return(created, nil)

	p, err := svc.Create(context.Background(), service.ProductInput{
		ID:    "1001",
		Name:  "Basmati Rice 5kg",
		Price: 450,
	})

	require.NoError(t, err)
	assert.Equal(t, created, p)
	prodRepo.AssertExpectations(t)
}

func TestProductService_Create_DuplicateID(t *testing.T) {
	prodRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(prodRepo)

	prodRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateProductID)

	_, err := svc.Create(context.Background(), service.ProductInput{ID: "1001", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicateProductID)
}

func TestProductService_Update_NotFound(t *testing.T) {
	prodRepo := new(mocks.MockProductRepo)
	svc := service.NewProductService(prodRepo)

	prodRepo.On("GetByID", mock.Anything, "9999").Return(nil, domain.ErrProductNotFound)

	_, err := svc.Update(context.Background(), "9999", service.ProductInput{ID: "9999", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
