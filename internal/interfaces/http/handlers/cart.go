// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// AddToCartRequest represents the POST /cart body. Quantity defaults to 1
// when omitted.
type AddToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  *int `json:"quantity" binding:"omitempty,gt=0"`
}

// UpdateCartItemRequest represents the PATCH /cart/:id body. Quantity is a
// pointer so a zero (meaning "remove the line") survives binding.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	c.JSON(http.StatusOK, h.cartService.GetCart(sessionID))
}

// AddToCart handles POST /cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	line, err := h.cartService.AddItem(sessionID, req.ProductID, quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, line)
}

// UpdateCartItem handles PATCH /cart/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := parseLineID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	line, removed, err := h.cartService.UpdateQuantity(id, *req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	if removed {
		c.JSON(http.StatusOK, gin.H{
			"message": "Item removed from cart",
		})
		return
	}

	c.JSON(http.StatusOK, line)
}

// RemoveFromCart handles DELETE /cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := parseLineID(c)
	if !ok {
		return
	}

	if err := h.cartService.RemoveItem(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart item not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	h.cartService.Clear(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

func parseLineID(c *gin.Context) (uint, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart item ID",
		})
		return 0, false
	}
	return uint(id), true
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()

		// Set session cookie (24 hours)
		c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
	}

	return sessionID
}
