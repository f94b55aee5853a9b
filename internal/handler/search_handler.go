package handler

import (
	"github.com/gin-gonic/gin"

	"rapidbill/internal/service"
)

// SearchHandler handles incremental search endpoints.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Products handles GET /api/v1/search/products
// @Summary Rank products against a partial query
// @Description Fuzzy-ranks the product catalog for search-as-you-type selection. Output order is deterministic; ties keep catalog order.
// @Tags search
// @Produce json
// @Param q query string true "Partial query"
// @Success 200 {object} APIResponse{data=[]match.Result} "Ranked matches"
// @Router /search/products [get]
func (h *SearchHandler) Products(c *gin.Context) {
	results, err := h.searchService.Products(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, results)
}

// Customers handles GET /api/v1/search/customers
// @Summary Rank customers against a partial query
// @Tags search
// @Produce json
// @Param q query string true "Partial query"
// @Success 200 {object} APIResponse{data=[]match.Result} "Ranked matches"
// @Router /search/customers [get]
func (h *SearchHandler) Customers(c *gin.Context) {
	results, err := h.searchService.Customers(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, results)
}
