package client

import "kbs-store/models"

// SampleCatalog is shown when the backend cannot be reached, so the
// storefront stays browsable instead of rendering empty.
func SampleCatalog() []models.Item {
	return []models.Item{
		{
			ID:          "item001",
			Name:        "Premium Wireless Headphones",
			Price:       2999,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
			Description: "High-quality wireless headphones with noise cancellation",
			Category:    models.DefaultCategory,
			InStock:     true,
		},
		{
			ID:          "item002",
			Name:        "Smart Watch Series X",
			Price:       15999,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop",
			Description: "Latest smartwatch with health monitoring",
			Category:    models.DefaultCategory,
			InStock:     true,
		},
		{
			ID:          "item003",
			Name:        "Bluetooth Speaker Pro",
			Price:       4999,
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=400&fit=crop",
			Description: "Portable speaker with premium sound quality",
			Category:    models.DefaultCategory,
			InStock:     true,
		},
	}
}
