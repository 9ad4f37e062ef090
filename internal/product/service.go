package product

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/wichananm65/luxuria-backend/internal/category"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

// ServiceInterface is the catalog surface used by the HTTP layer.
type ServiceInterface interface {
	List(ctx context.Context, f ListFilter) []Product
	GetByID(ctx context.Context, id ID) (Product, error)
	Create(ctx context.Context, p Product) (string, error)
}

// Service resolves catalog reads against the store and falls back to the
// sample catalog whenever the store fails or has nothing to offer.
type Service struct {
	store store.Store
}

var _ ServiceInterface = (*Service)(nil)

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// List returns at most ListLimit products matching f. Stored products win
// when the store returns any; otherwise the sample catalog is filtered with
// the same predicate.
func (s *Service) List(ctx context.Context, f ListFilter) []Product {
	products, err := s.listStored(ctx, f)
	switch {
	case err != nil:
		log.Warnf("product list: serving sample catalog: %v", err)
	case len(products) > 0:
		return products
	}
	return filterProducts(SampleProducts(), f)
}

func (s *Service) listStored(ctx context.Context, f ListFilter) ([]Product, error) {
	filter := store.Filter{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}

	docs, err := s.store.Find(ctx, Collection, filter, ListLimit)
	if err != nil {
		return nil, err
	}
	if len(docs) > ListLimit {
		docs = docs[:ListLimit]
	}
	out := make([]Product, 0, len(docs))
	for _, d := range docs {
		p, err := fromDocument(d)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// GetByID looks a native id up in the store first; any miss or failure,
// and every sample id, is answered from the sample catalog.
func (s *Service) GetByID(ctx context.Context, id ID) (Product, error) {
	if id.Kind == NativeID {
		p, found, err := s.getStored(ctx, id)
		if err != nil {
			log.Warnf("product %s: store lookup failed: %v", id.Raw, err)
		} else if found {
			return p, nil
		}
	}
	for _, p := range SampleProducts() {
		if p.ID == id.Raw {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (s *Service) getStored(ctx context.Context, id ID) (Product, bool, error) {
	docs, err := s.store.Find(ctx, Collection, store.Filter{store.IDField: id.Native}, 1)
	if err != nil || len(docs) == 0 {
		return Product{}, false, err
	}
	p, err := fromDocument(docs[0])
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

// Create persists p. Unlike orders and applications, a failed catalog
// write is reported to the caller.
func (s *Service) Create(ctx context.Context, p Product) (string, error) {
	p.ID = ""
	if !category.Known(p.Category) {
		log.Infof("creating product %q in unlisted category %q", p.Title, p.Category)
	}
	id, err := s.store.Insert(ctx, Collection, p)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	return id, nil
}
