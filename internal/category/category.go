package category

// Category is a catalog section. The set is fixed and never stored.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// All returns the known categories in display order.
func All() []Category {
	return []Category{
		{ID: "watches", Name: "Watches"},
		{ID: "jewelry", Name: "Jewelry"},
		{ID: "holidays", Name: "Holiday Destinations"},
		{ID: "home", Name: "Home Living"},
		{ID: "health", Name: "Health"},
	}
}

// Known reports whether id names one of the fixed categories.
func Known(id string) bool {
	for _, c := range All() {
		if c.ID == id {
			return true
		}
	}
	return false
}
