package handlers

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"emogo-backend/internal/services"
	"emogo-backend/internal/storage"
)

const VlogNotFoundError = "File not found"

// VlogHandler defines handlers for uploaded video files.
type VlogHandler struct {
	Service *services.VlogService
}

// NewVlogHandler creates a new VlogHandler with the given VlogService.
func NewVlogHandler(service *services.VlogService) *VlogHandler {
	return &VlogHandler{Service: service}
}

// UploadVideo handles POST /upload/video to store a new video file.
// @Summary Upload a video file
// @Description Stores the video under a generated unique filename and returns its public URL
// @Tags vlogs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Video file"
// @Success 200 {object} map[string]interface{} "videoUrl and filename"
// @Failure 400 {object} map[string]interface{} "Missing file"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /upload/video [post]
func (h *VlogHandler) UploadVideo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("Failed to read uploaded file: %v", err)
		return badRequest(c, "failed to read file: "+err.Error())
	}
	log.Printf("Processing video upload: %s (%d bytes)", fileHeader.Filename, fileHeader.Size)

	filename, err := h.Service.SaveUpload(fileHeader)
	if err != nil {
		log.Printf("Video upload failed: %v", err)
		return serverError(c, err)
	}

	log.Printf("Successfully stored video: %s", filename)
	return c.JSON(fiber.Map{
		"success":  true,
		"videoUrl": h.Service.PublicURL(filename),
		"filename": filename,
	})
}

// ServeVlog handles GET /vlogs/:filename to stream a stored video read-only.
// @Summary Download a stored video
// @Tags vlogs
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary "Video content"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /vlogs/{filename} [get]
func (h *VlogHandler) ServeVlog(c *fiber.Ctx) error {
	filename := c.Params("filename")

	reader, err := h.Service.Open(filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": VlogNotFoundError,
			})
		}
		log.Printf("Error opening vlog %s: %v", filename, err)
		return serverError(c, err)
	}

	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		c.Type(ext)
	}
	return c.SendStream(reader)
}

// DeleteVlog handles DELETE /videos/:filename to remove a single video file.
// Records referencing the file are left untouched.
// @Summary Delete a stored video
// @Tags vlogs
// @Produce json
// @Param filename path string true "Stored filename"
// @Success 200 {object} map[string]interface{} "deleted_file"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /videos/{filename} [delete]
func (h *VlogHandler) DeleteVlog(c *fiber.Ctx) error {
	filename := c.Params("filename")
	log.Printf("Deleting vlog - filename: %s, IP: %s", filename, c.IP())

	if err := h.Service.Delete(filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Vlog not found for delete: %s", filename)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": VlogNotFoundError,
			})
		}
		log.Printf("Error deleting vlog %s: %v", filename, err)
		return serverError(c, err)
	}

	log.Printf("Successfully deleted vlog: %s", filename)
	return c.JSON(fiber.Map{
		"success":      true,
		"deleted_file": filename,
	})
}
