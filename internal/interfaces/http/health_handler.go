package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger verifica la conexión con la base.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler estado de la conexión a la base.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @Summary      Estado de la base de datos
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /admin/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(fiber.Map{"status": "error", "details": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "connected"})
}
