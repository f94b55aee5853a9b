package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rapidbill/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /api/v1/products
// @Summary Create a catalog entry
// @Description Registers a product under its operator-assigned keypad code.
// @Tags products
// @Accept json
// @Produce json
// @Param request body service.ProductInput true "Product"
// @Success 201 {object} APIResponse{data=domain.Product} "Created product"
// @Failure 409 {object} APIResponse "Product id already exists"
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	p, err := h.productService.Create(c.Request.Context(), in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, p)
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a catalog entry
// @Tags products
// @Produce json
// @Param id path string true "Product keypad code"
// @Success 200 {object} APIResponse{data=domain.Product} "Product"
// @Failure 404 {object} APIResponse "Product not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	p, err := h.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// List handles GET /api/v1/products
// @Summary List the catalog
// @Tags products
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.Product} "Products"
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, products)
}

// Update handles PUT /api/v1/products/:id
// @Summary Update a catalog entry
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product keypad code"
// @Param request body service.ProductInput true "Product"
// @Success 200 {object} APIResponse{data=domain.Product} "Updated product"
// @Failure 404 {object} APIResponse "Product not found"
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	p, err := h.productService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// Delete handles DELETE /api/v1/products/:id
// @Summary Delete a catalog entry
// @Tags products
// @Produce json
// @Param id path string true "Product keypad code"
// @Success 200 {object} APIResponse "Deleted"
// @Failure 404 {object} APIResponse "Product not found"
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
