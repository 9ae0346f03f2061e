// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/interfaces/http/handlers"
)

// SetupRoutes registers the storefront REST surface on the router.
func SetupRoutes(r gin.IRouter, catalogStore *catalog.Store, cartService *cart.Service) {
	SetupProductRoutes(r, catalogStore)
	SetupCartRoutes(r, cartService)
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(r gin.IRouter, catalogStore *catalog.Store) {
	productHandler := handlers.NewProductHandler(catalogStore)

	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(r gin.IRouter, cartService *cart.Service) {
	cartHandler := handlers.NewCartHandler(cartService)

	c := r.Group("/cart")
	{
		c.GET("", cartHandler.GetCart)
		c.POST("", cartHandler.AddToCart)
		c.PATCH("/:id", cartHandler.UpdateCartItem)
		c.DELETE("/:id", cartHandler.RemoveFromCart)
		c.DELETE("", cartHandler.ClearCart)
	}
}
