package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"emogo-backend/internal/services"
)

const archiveFilename = "emogo_export.zip"

// ExportHandler defines handlers for the export endpoints.
type ExportHandler struct {
	Service *services.ExportService
}

// NewExportHandler creates a new ExportHandler with the given ExportService.
func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{Service: service}
}

// Export handles GET /export, the structured listing of all records and vlogs.
// @Summary Export all records and the vlog listing
// @Tags export
// @Produce json
// @Success 200 {object} map[string]interface{} "records, vlogs and exported_at"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	records, vlogs, err := h.Service.Listing()
	if err != nil {
		log.Printf("Export failed: %v", err)
		return serverError(c, err)
	}

	log.Printf("Exported listing: %d records, %d vlogs", len(records), len(vlogs))
	return c.JSON(fiber.Map{
		"success":     true,
		"records":     records,
		"vlogs":       vlogs,
		"exported_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// DownloadAll handles GET /download/all, the single-archive export.
// @Summary Download all records and videos as a zip archive
// @Tags export
// @Produce application/zip
// @Success 200 {file} binary "Archive with records.json and videos/"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /download/all [get]
func (h *ExportHandler) DownloadAll(c *fiber.Ctx) error {
	data, err := h.Service.Archive()
	if err != nil {
		log.Printf("Archive export failed: %v", err)
		return serverError(c, err)
	}

	log.Printf("Built export archive: %d bytes", len(data))
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+archiveFilename)
	return c.Status(fiber.StatusOK).Send(data)
}
