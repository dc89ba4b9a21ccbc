package handler

import (
	"github.com/gofiber/fiber/v2"

	"orders-retriever/internal/core/cache"
)

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}

// HealthHandler handles liveness probes. The cache is optional; when one is
// configured its reachability is reported but never fails the probe.
type HealthHandler struct {
	cache cache.Cache
}

// NewHealthHandler creates a new HealthHandler. A nil cache is allowed.
func NewHealthHandler(c cache.Cache) *HealthHandler {
	return &HealthHandler{cache: c}
}

// GetHealth godoc
// @Summary Report service health
// @Produce json
// @Tags health
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	resp := HealthResponse{Status: "ok"}
	if h.cache != nil {
		resp.Cache = "ok"
		if err := h.cache.Ping(c.Context()); err != nil {
			resp.Cache = "unreachable"
		}
	}
	return c.JSON(resp)
}
