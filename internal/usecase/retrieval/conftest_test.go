package retrieval

import "github.com/retail-insight/genie/internal/domain"

// sampleCatalog mirrors data/docs.json: the five-product sample catalog.
func sampleCatalog() []domain.Document {
	return []domain.Document{
		{
			Title:       "UltraBook Pro Laptop",
			Description: "A lightweight pro laptop with a 14-inch display, 16GB RAM and an all-day battery life of up to 18 hours.",
			Extra:       map[string]any{"price": 1499.0},
		},
		{
			Title:       "Galaxy X Smartphone",
			Description: "A flagship smartphone with advanced camera features, a 6.5-inch OLED screen and fast wireless charging.",
			Extra:       map[string]any{"price": 999.0},
		},
		{
			Title:       "SoundPods Wireless Earbuds",
			Description: "True wireless earbuds with active noise cancellation, touch controls and a compact charging case.",
			Extra:       map[string]any{"price": 199.0},
		},
		{
			Title:       "SlateTab 11 Tablet",
			Description: "A slim tablet with an 11-inch liquid retina display, stylus support and quad speakers.",
			Extra:       map[string]any{"price": 649.0},
		},
		{
			Title:       "NovaStation 5 Gaming Console",
			Description: "A next generation gaming console with ray-traced graphics, ultra-fast SSD storage and 4K gameplay.",
			Extra:       map[string]any{"price": 499.0},
		},
	}
}
