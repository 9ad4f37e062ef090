package product

import (
	"fmt"

	"github.com/wichananm65/luxuria-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fromDocument turns a stored document into a Product, rendering the id and
// every image reference as strings. Fields of the wrong type are an error;
// missing fields take the schema defaults.
func fromDocument(d store.Document) (Product, error) {
	p := Product{InStock: true, Images: []string{}}
	p.ID = normalizeID(d[store.IDField])

	var err error
	if p.Title, err = stringField(d, "title"); err != nil {
		return Product{}, err
	}
	if p.Category, err = stringField(d, "category"); err != nil {
		return Product{}, err
	}
	if v, ok := d["description"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return Product{}, fieldError("description", v)
		}
		p.Description = &s
	}
	if v, ok := d["price"]; ok && v != nil {
		if p.Price, err = toFloat("price", v); err != nil {
			return Product{}, err
		}
	}
	if v, ok := d["images"]; ok && v != nil {
		if p.Images, err = toStrings("images", v); err != nil {
			return Product{}, err
		}
	}
	if v, ok := d["in_stock"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return Product{}, fieldError("in_stock", v)
		}
		p.InStock = b
	}
	if v, ok := d["featured"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return Product{}, fieldError("featured", v)
		}
		p.Featured = b
	}
	return p, nil
}

func normalizeID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case interface{ Hex() string }:
		return id.Hex()
	default:
		return fmt.Sprint(v)
	}
}

func stringField(d store.Document, key string) (string, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fieldError(key, v)
	}
	return s, nil
}

func toFloat(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fieldError(key, v)
	}
}

func toStrings(key string, v any) ([]string, error) {
	var items []any
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...), nil
	case []any:
		items = list
	case primitive.A:
		items = list
	default:
		return nil, fieldError(key, v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, fmt.Sprint(item))
	}
	return out, nil
}

func fieldError(key string, v any) error {
	return fmt.Errorf("malformed product document: %s has type %T", key, v)
}
