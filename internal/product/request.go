package product

import (
	"fmt"
	"strings"
)

// createRequest is the POST /api/products payload before validation.
type createRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Images      []string `json:"images" validate:"omitempty,dive,http_url"`
	InStock     *bool    `json:"in_stock"`
	Featured    *bool    `json:"featured"`
}

func (r createRequest) toProduct() Product {
	p := Product{
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Images:      append([]string{}, r.Images...),
		InStock:     true,
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
	return p
}

// parseFeatured reads the optional featured query flag. An empty value means
// the flag was not given.
func parseFeatured(raw string) (*bool, error) {
	var v bool
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, nil
	case "true", "1", "yes", "on", "t", "y":
		v = true
	case "false", "0", "no", "off", "f", "n":
		v = false
	default:
		return nil, fmt.Errorf("featured must be a boolean, got %q", raw)
	}
	return &v, nil
}
