package service

import "github.com/kahvecikaan/gaming-store/internal/domain"

// FallbackCatalog returns the demonstration products served when the
// document store cannot be queried. A fresh copy is built on every call.
func FallbackCatalog() domain.Products {
	rating := func(r float64) *float64 { return &r }

	return domain.Products{
		{
			ID:          "demo1",
			Title:       "Pro Gaming Headset",
			Description: "7.1 surround, noise-cancel mic",
			Price:       89.99,
			Category:    "accessories",
			Platform:    "PC",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1610962493842-6f681afe0102?q=80&w=1200&auto=format&fit=crop",
			Rating:      rating(4.6),
		},
		{
			ID:          "demo2",
			Title:       "Mechanical Keyboard RGB",
			Description: "Hot-swappable, PBT keycaps",
			Price:       129.0,
			Category:    "accessories",
			Platform:    "PC",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=1200&auto=format&fit=crop",
			Rating:      rating(4.8),
		},
		{
			ID:          "demo3",
			Title:       "PS5 DualSense Controller",
			Description: "Haptic feedback, adaptive triggers",
			Price:       69.99,
			Category:    "controllers",
			Platform:    "PS5",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1606811841689-23dfddce3e95?q=80&w=1200&auto=format&fit=crop",
			Rating:      rating(4.7),
		},
	}
}
