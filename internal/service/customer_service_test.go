package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rapidbill/internal/domain"
	"rapidbill/internal/service"
	"rapidbill/mocks"
)

func setupCustomerService() (service.CustomerService, *mocks.MockCustomerRepo, *mocks.MockInvoiceRepo) {
	custRepo := new(mocks.MockCustomerRepo)
	invRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewCustomerService(custRepo, invRepo)
	return svc, custRepo, invRepo
}

func TestCustomerService_Create(t *testing.T) {
	svc, custRepo, _ := setupCustomerService()

	custRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.Name == "Sharma Traders" && c.State == "Delhi"
	})).Return(nil)
	custRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Customer{Name: "Sharma Traders"}, nil)

	c, err := svc.Create(context.Background(), service.CustomerInput{Name: "Sharma Traders", State: "Delhi"})

	require.NoError(t, err)
	assert.Equal(t, "Sharma Traders", c.Name)
}

func TestCustomerService_LastSalePrice_NeverBought(t *testing.T) {
	svc, custRepo, _ := setupCustomerService()
	id := uuid.New()

	custRepo.On("GetByID", mock.Anything, id).Return(&domain.Customer{ID: id}, nil)
	custRepo.On("LastSalePrice", mock.Anything, id, "1001").Return(nil, nil)

	price, err := svc.LastSalePrice(context.Background(), id, "1001")

	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestCustomerService_ListInvoices_UnknownCustomer(t *testing.T) {
	svc, custRepo, _ := setupCustomerService()
	id := uuid.New()

	custRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrCustomerNotFound)

	_, _, err := svc.ListInvoices(context.Background(), id, 0, 20)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
