package product

const sampleImageQuery = "?q=80&w=1600&auto=format&fit=crop"

// SampleProducts returns the built-in demo catalog. It is served whenever the
// store cannot answer, and a new slice is built on every call so callers may
// modify the result freely.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "demo-royal-chrono",
			Title:       "Royal Chrono 42mm",
			Description: ptrString("Swiss automatic chronograph crafted in 18k rose gold with sapphire crystal."),
			Price:       18990.0,
			Category:    "watches",
			Images: []string{
				"https://images.unsplash.com/photo-1518544801976-3e188ea47b1d" + sampleImageQuery,
				"https://images.unsplash.com/photo-1523170335258-f5ed11844a49" + sampleImageQuery,
			},
			InStock:  true,
			Featured: true,
		},
		{
			ID:          "demo-diamond-aurora",
			Title:       "Aurora Diamond Necklace",
			Description: ptrString("Hand-set VS1 diamonds on platinum. Timeless brilliance for evening glamour."),
			Price:       12950.0,
			Category:    "jewelry",
			Images: []string{
				"https://images.unsplash.com/photo-1520962918287-7448c2878f65" + sampleImageQuery,
			},
			InStock:  true,
			Featured: true,
		},
		{
			ID:          "demo-maldives-escape",
			Title:       "Maldives Water Villa Escape",
			Description: ptrString("5 nights in an overwater villa with private plunge pool and butler service."),
			Price:       8990.0,
			Category:    "holidays",
			Images: []string{
				"https://images.unsplash.com/photo-1500375592092-40eb2168fd21" + sampleImageQuery,
			},
			InStock:  true,
			Featured: true,
		},
		{
			ID:          "demo-silk-sofa",
			Title:       "Silk & Walnut Lounge Sofa",
			Description: ptrString("Handcrafted Italian sofa in walnut with bespoke silk upholstery."),
			Price:       7490.0,
			Category:    "home",
			Images: []string{
				"https://images.unsplash.com/photo-1501045661006-fcebe0257c3f" + sampleImageQuery,
			},
			InStock:  true,
			Featured: false,
		},
		{
			ID:          "demo-platinum-massager",
			Title:       "Platinum Deep Tissue Massager",
			Description: ptrString("Medical-grade percussive therapy device with intelligent pressure control."),
			Price:       499.0,
			Category:    "health",
			Images: []string{
				"https://images.unsplash.com/photo-1615634260167-c8cdede054de" + sampleImageQuery,
			},
			InStock:  true,
			Featured: false,
		},
	}
}

func ptrString(s string) *string { return &s }
