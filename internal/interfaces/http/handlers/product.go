// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/domain/catalog"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	catalog *catalog.Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogStore *catalog.Store) *ProductHandler {
	return &ProductHandler{
		catalog: catalogStore,
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")
	sortKey := c.Query("sort")

	if category == "" && search == "" && sortKey == "" {
		c.JSON(http.StatusOK, h.catalog.Products())
		return
	}

	c.JSON(http.StatusOK, h.catalog.Filter(category, search, sortKey))
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, ok := h.catalog.Product(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}
