package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rapidbill/internal/service"
)

// CustomerHandler handles customer ledger endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/v1/customers
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body service.CustomerInput true "Customer"
// @Success 201 {object} APIResponse{data=domain.Customer} "Created customer"
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var in service.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	cust, err := h.customerService.Create(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, cust)
}

// GetByID handles GET /api/v1/customers/:id
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} APIResponse{data=domain.Customer} "Customer"
// @Failure 404 {object} APIResponse "Customer not found"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer id")
		return
	}

	cust, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cust)
}

// List handles GET /api/v1/customers
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Customer} "Customers"
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, customers)
}

// Update handles PUT /api/v1/customers/:id
// @Summary Update a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body service.CustomerInput true "Customer"
// @Success 200 {object} APIResponse{data=domain.Customer} "Updated customer"
// @Failure 404 {object} APIResponse "Customer not found"
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer id")
		return
	}

	var in service.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	cust, err := h.customerService.Update(c.Request.Context(), id, in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cust)
}

// ListInvoices handles GET /api/v1/customers/:id/invoices
// @Summary List a customer's invoices
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Invoice} "Invoices"
// @Failure 404 {object} APIResponse "Customer not found"
// @Router /customers/{id}/invoices [get]
func (h *CustomerHandler) ListInvoices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer id")
		return
	}

	offset, limit := pagination(c)
	invoices, total, err := h.customerService.ListInvoices(c.Request.Context(), id, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// LastSalePrice handles GET /api/v1/customers/:id/last-price/:productId
// @Summary Get the rate the customer last paid for a product
// @Description Returns the unit rate from the customer's most recent invoice containing the product, or null when they never bought it. Credit notes are skipped.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Param productId path string true "Product keypad code"
// @Success 200 {object} APIResponse "Last sale price, null when none"
// @Failure 404 {object} APIResponse "Customer not found"
// @Router /customers/{id}/last-price/{productId} [get]
func (h *CustomerHandler) LastSalePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer id")
		return
	}

	price, err := h.customerService.LastSalePrice(c.Request.Context(), id, c.Param("productId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"product_id": c.Param("productId"), "last_price": price})
}
