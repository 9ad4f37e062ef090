package product

import "errors"

// Collection is the store collection holding catalog products.
const Collection = "product"

// ListLimit caps how many products a single listing returns.
const ListLimit = 100

var ErrNotFound = errors.New("product not found")

// Product is a catalog item. Stored products carry a store-generated id,
// sample products a fixed "demo-" id.
type Product struct {
	ID          string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	Description *string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64  `json:"price" bson:"price"`
	Category    string   `json:"category" bson:"category"`
	Images      []string `json:"images" bson:"images"`
	InStock     bool     `json:"in_stock" bson:"in_stock"`
	Featured    bool     `json:"featured" bson:"featured"`
}

// ListFilter narrows a listing. Zero values impose no constraint; Featured
// is a pointer so that an explicit false is kept apart from "not given".
type ListFilter struct {
	Category string
	Featured *bool
}

// Match reports whether p satisfies every constraint in f.
func (f ListFilter) Match(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

func filterProducts(products []Product, f ListFilter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
