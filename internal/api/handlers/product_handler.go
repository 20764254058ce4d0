// backend-go/internal/api/handlers/product_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/service"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service *service.ProductService
}

func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) parseFilter(c *gin.Context) service.ProductFilter {
	filter := service.ProductFilter{
		Page:     1,
		PageSize: 50,
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("page_size", "50")); err == nil && size > 0 {
		filter.PageSize = size
	}

	filter.Division = strings.TrimSpace(c.Query("division"))
	filter.Taxonomy = strings.TrimSpace(c.Query("taxonomy"))
	filter.Search = strings.TrimSpace(c.Query("search"))

	return filter
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := h.parseFilter(c)
	products, total := h.service.ListProducts(filter)

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
	})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	asin := strings.TrimSpace(c.Param("asin"))

	detail := h.service.GetProduct(asin)
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product " + asin + " not found in dataset"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *ProductHandler) GetDivisions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"divisions": h.service.Divisions()})
}

func (h *ProductHandler) GetTaxonomies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"taxonomies": h.service.Taxonomies()})
}

func (h *ProductHandler) GetDatasetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DatasetSummary())
}
