// Package diagnostics serves the liveness message and the store connectivity
// report used while setting up a deployment.
package diagnostics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/luxuria-backend/internal/store"
)

const maxCollections = 10

// Report is the /test response body.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type Handler struct {
	store     store.Store
	urlSet    bool
	dbNameSet bool
}

// NewHandler reports on s. urlSet and dbNameSet tell whether the
// connection settings were provided.
func NewHandler(s store.Store, urlSet, dbNameSet bool) *Handler {
	return &Handler{store: s, urlSet: urlSet, dbNameSet: dbNameSet}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/", h.root)
	app.Get("/test", h.test)
}

func (h *Handler) root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Luxuria backend is running"})
}

func (h *Handler) test(c *fiber.Ctx) error {
	r := Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if store.Available(h.store) {
		r.Database = "✅ Available"
		r.ConnectionStatus = "Connected"
		if insp, ok := h.store.(store.Inspector); ok {
			names, err := insp.Collections(c.UserContext())
			if err != nil {
				r.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			} else {
				if len(names) > maxCollections {
					names = names[:maxCollections]
				}
				r.Collections = names
				r.Database = "✅ Connected & Working"
			}
		}
	}

	r.DatabaseURL = setMark(h.urlSet)
	r.DatabaseName = setMark(h.dbNameSet)
	return c.JSON(r)
}

func setMark(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
