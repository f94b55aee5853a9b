package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rapidbill/internal/domain"
	"rapidbill/internal/handler"
	"rapidbill/internal/service"
	"rapidbill/mocks"
)

func newInvoiceHandler() (*handler.InvoiceHandler, *mocks.MockInvoiceService) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)
	return h, mockSvc
}

func postJSON(t *testing.T, path string, payload interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// --- Preview ---

func TestInvoiceHandler_Preview_Success(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("Preview", mock.Anything, mock.AnythingOfType("service.PreviewInput")).
		Return(&service.PreviewResult{TaxType: domain.TaxIntraState}, nil)

	w, c := postJSON(t, "/api/v1/invoices/preview", map[string]interface{}{
		"customer_id": uuid.New().String(),
		"cart":        []interface{}{},
	})
	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Preview_CustomerNotFound(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("Preview", mock.Anything, mock.Anything).Return(nil, domain.ErrCustomerNotFound)

	w, c := postJSON(t, "/api/v1/invoices/preview", map[string]interface{}{
		"customer_id": uuid.New().String(),
	})
	h.Preview(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceHandler_Preview_MalformedBody(t *testing.T) {
	h, _ := newInvoiceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices/preview", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Preview(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Create ---

func TestInvoiceHandler_Create_Success(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	saved := &domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-fy2025-0001", Status: domain.StatusPaid}
	mockSvc.On("Save", mock.Anything, mock.AnythingOfType("service.SaveInput")).Return(saved, nil)

	w, c := postJSON(t, "/api/v1/invoices", map[string]interface{}{
		"customer_id":  uuid.New().String(),
		"payment_mode": "CASH",
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "INV-fy2025-0001")
}

func TestInvoiceHandler_Create_EmptyCart(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("Save", mock.Anything, mock.Anything).Return(nil, domain.ErrEmptyCart)

	w, c := postJSON(t, "/api/v1/invoices", map[string]interface{}{
		"customer_id": uuid.New().String(),
	})
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EMPTY_CART")
}

// --- GetByID ---

func TestInvoiceHandler_GetByID_InvalidID(t *testing.T) {
	h, _ := newInvoiceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_GetByID_NotFound(t *testing.T) {
	h, mockSvc := newInvoiceHandler()
	id := uuid.New()

	mockSvc.On("Get", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.GetByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- RecordPayment ---

func TestInvoiceHandler_RecordPayment_Success(t *testing.T) {
	h, mockSvc := newInvoiceHandler()
	id := uuid.New()

	updated := &domain.Invoice{ID: id, Status: domain.StatusPaid}
	mockSvc.On("RecordPayment", mock.Anything, id, 500.0).Return(updated, nil)

	w, c := postJSON(t, "/api/v1/invoices/"+id.String()+"/payments", map[string]interface{}{
		"amount": 500,
	})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.RecordPayment(c)
	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_RecordPayment_Settled(t *testing.T) {
	h, mockSvc := newInvoiceHandler()
	id := uuid.New()

	mockSvc.On("RecordPayment", mock.Anything, id, 500.0).Return(nil, domain.ErrInvoiceSettled)

	w, c := postJSON(t, "/api/v1/invoices/"+id.String()+"/payments", map[string]interface{}{
		"amount": 500,
	})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.RecordPayment(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVOICE_SETTLED")
}

// --- List ---

func TestInvoiceHandler_List_PaginationDefaults(t *testing.T) {
	h, mockSvc := newInvoiceHandler()

	mockSvc.On("List", mock.Anything, 0, 20).Return([]domain.Invoice{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices?limit=9999", nil)

	h.List(c)
	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
