// internal/domain/catalog/seed.go
package catalog

import (
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string {
	return &s
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// seedProducts returns the fixed sample catalog. Identifiers are assigned
// by the store in insertion order.
func seedProducts() []Product {
	return []Product{
		{
			Name:        "Premium Wireless Headphones",
			Description: "High-quality sound with noise cancellation",
			Price:       decimal.RequireFromString("299.99"),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=800&h=600",
			Category:    "Audio",
		},
		{
			Name:        "Latest Smartphone",
			Description: "Advanced features with 5G connectivity",
			Price:       decimal.RequireFromString("899.99"),
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?auto=format&fit=crop&w=800&h=600",
			Category:    "Mobile",
			Badge:       strPtr("Best Seller"),
		},
		{
			Name:        "Ultra-thin Laptop",
			Description: "Powerful performance in a sleek design",
			Price:       decimal.RequireFromString("1299.99"),
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?auto=format&fit=crop&w=800&h=600",
			Category:    "Computing",
		},
		{
			Name:          "Smart Fitness Watch",
			Description:   "Track your fitness with advanced sensors",
			Price:         decimal.RequireFromString("199.99"),
			Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=800&h=600",
			Category:      "Wearables",
			Badge:         strPtr("Sale"),
			OriginalPrice: decPtr("249.99"),
		},
		{
			Name:        "Professional Camera",
			Description: "Capture stunning photos with 4K video",
			Price:       decimal.RequireFromString("699.99"),
			Image:       "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?auto=format&fit=crop&w=800&h=600",
			Category:    "Photography",
		},
		{
			Name:        "Wireless Gaming Controller",
			Description: "Enhanced gaming experience with haptic feedback",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "https://images.unsplash.com/photo-1493711662062-fa541adb3fc8?auto=format&fit=crop&w=800&h=600",
			Category:    "Gaming",
		},
		{
			Name:        "Wireless Charging Pad",
			Description: "Fast wireless charging for all devices",
			Price:       decimal.RequireFromString("39.99"),
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?auto=format&fit=crop&w=800&h=600",
			Category:    "Accessories",
			Badge:       strPtr("New"),
		},
		{
			Name:        "Portable Bluetooth Speaker",
			Description: "360-degree sound with deep bass",
			Price:       decimal.RequireFromString("129.99"),
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?auto=format&fit=crop&w=800&h=600",
			Category:    "Audio",
		},
	}
}
