package handlers

import (
	"github.com/gofiber/fiber/v2"

	"emogo-backend/internal/services"
	"emogo-backend/internal/storage"
)

// SystemHandler serves the service info and health endpoints.
type SystemHandler struct {
	Records *services.RecordService
	Store   storage.VlogStore
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(records *services.RecordService, store storage.VlogStore) *SystemHandler {
	return &SystemHandler{Records: records, Store: store}
}

// Root handles GET / with basic service info.
// @Summary Service info
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Service name and version"
// @Router / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "EmoGo Backend API",
		"version": "1.0.0",
		"docs":    "/swagger/index.html",
	})
}

func statusString(err error) string {
	if err == nil {
		return "ok"
	}
	return err.Error()
}

// Health handles GET /health, reporting reachability of both stores.
// @Summary Health check
// @Description Pings the record store and the vlog store
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Healthy"
// @Failure 503 {object} map[string]interface{} "Unhealthy, with per-store detail"
// @Router /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	dbErr := h.Records.Ping(c.Context())
	storeErr := h.Store.Ping(c.Context())

	if dbErr == nil && storeErr == nil {
		return c.JSON(fiber.Map{"status": "healthy"})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"status":   "unhealthy",
		"database": statusString(dbErr),
		"storage":  statusString(storeErr),
	})
}
