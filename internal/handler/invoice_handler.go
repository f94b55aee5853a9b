package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rapidbill/internal/service"
)

// InvoiceHandler handles invoice computation and persistence endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Preview handles POST /api/v1/invoices/preview
// @Summary Compute invoice totals without saving
// @Description Recomputes every line and the bill totals for the submitted cart. Nothing is persisted; amounts are returned at full precision.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.PreviewInput true "Cart and bill-level settings"
// @Success 200 {object} APIResponse{data=service.PreviewResult} "Computed cart and totals"
// @Failure 400 {object} APIResponse "Invalid request"
// @Failure 404 {object} APIResponse "Customer not found"
// @Router /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var in service.PreviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	result, err := h.invoiceService.Preview(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// SmartEntry handles POST /api/v1/invoices/smart-entry
// @Summary Apply a keypad command to the cart
// @Description Parses one committed Smart Calculator command (e.g. "P100*3-50" or "-P100") and returns the mutated cart. Referential failures come back as a short error string with the cart unchanged.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.SmartEntryInput true "Command buffer and current cart"
// @Success 200 {object} APIResponse{data=service.SmartEntryResult} "Resulting cart"
// @Failure 400 {object} APIResponse "Invalid request"
// @Router /invoices/smart-entry [post]
func (h *InvoiceHandler) SmartEntry(c *gin.Context) {
	var in service.SmartEntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	result, err := h.invoiceService.SmartEntry(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Create handles POST /api/v1/invoices
// @Summary Save an invoice
// @Description Computes the cart, resolves payment status, allocates the next invoice number for the customer's financial-year scope, and persists the invoice with amounts rounded to two decimals.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.SaveInput true "Invoice to save"
// @Success 201 {object} APIResponse{data=domain.Invoice} "Saved invoice"
// @Failure 400 {object} APIResponse "Invalid request or empty cart"
// @Failure 404 {object} APIResponse "Customer not found"
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var in service.SaveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	inv, err := h.invoiceService.Save(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, inv)
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Invoice with items"
// @Failure 404 {object} APIResponse "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	inv, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Invoice} "Invoices"
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	invoices, total, err := h.invoiceService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// RecordPayment handles POST /api/v1/invoices/:id/payments
// @Summary Record a payment against an invoice
// @Description Adds the amount to what was already received and re-resolves the payment status and balance due.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body PaymentRequest true "Payment amount"
// @Success 200 {object} APIResponse{data=domain.Invoice} "Updated invoice"
// @Failure 400 {object} APIResponse "Invalid amount"
// @Failure 409 {object} APIResponse "Invoice already settled"
// @Router /invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice id")
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	inv, err := h.invoiceService.RecordPayment(c.Request.Context(), id, req.Amount)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// ExportCSV handles GET /api/v1/invoices/export
// @Summary Export the invoice register as CSV
// @Tags invoices
// @Produce text/csv
// @Success 200 {string} string "CSV register"
// @Router /invoices/export [get]
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="invoices.csv"`)
	if err := h.invoiceService.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		HandleError(c, err)
	}
}

// PaymentRequest is the record-payment request body.
type PaymentRequest struct {
	Amount float64 `json:"amount" binding:"required" example:"500"`
}

func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return offset, limit
}
