package distributor

import (
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Apply stores app and returns its id, or DemoApplicationID when the store
// rejects the write.
func (s *Service) Apply(ctx context.Context, app Application) string {
	id, err := s.store.Insert(ctx, Collection, app)
	if err != nil {
		log.Warnf("distributor application from %s not stored, acknowledging %s: %v", app.Email, DemoApplicationID, err)
		return DemoApplicationID
	}
	return id
}
