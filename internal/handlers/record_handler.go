package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"emogo-backend/internal/models"
	"emogo-backend/internal/services"
)

const InvalidRecordIDError = "invalid record id"
const RecordNotFoundError = "Record not found"

// RecordHandler defines handlers for journal record resources.
type RecordHandler struct {
	Service *services.RecordService
}

// NewRecordHandler creates a new RecordHandler with the given RecordService.
func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{Service: service}
}

// queryInt reads an optional integer query parameter. A missing parameter
// yields nil; a present but malformed one is a validation failure.
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	val := c.Query(key)
	if val == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %q", key, val)
	}
	return &n, nil
}

// queryFloat reads an optional float query parameter.
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	val := c.Query(key)
	if val == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %q", key, val)
	}
	return &f, nil
}

// queryString reads an optional string query parameter.
func queryString(c *fiber.Ctx, key string) *string {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	return &val
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": true, "message": msg,
	})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": true, "message": err.Error(),
	})
}

// UploadRecord handles POST /upload/record to create a new journal record.
// @Summary Create a journal record
// @Description Stores a mood/stress/location record; the server assigns id and created_at
// @Tags records
// @Accept json
// @Produce json
// @Param record body models.RecordInput true "Record payload"
// @Success 200 {object} map[string]interface{} "success and record_id"
// @Failure 400 {object} map[string]interface{} "Malformed payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /upload/record [post]
func (h *RecordHandler) UploadRecord(c *fiber.Ctx) error {
	var input models.RecordInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Invalid record payload: %v", err)
		return badRequest(c, "invalid record payload: "+err.Error())
	}

	record, err := h.Service.CreateRecord(input)
	if err != nil {
		log.Printf("Record creation failed: %v", err)
		return serverError(c, err)
	}

	log.Printf("Created record: ID=%s, mood=%d, stress=%d", record.ID, record.MoodScore, record.StressScore)
	return c.JSON(fiber.Map{
		"success":   true,
		"record_id": record.ID.String(),
	})
}

// FilterByMood handles GET /records/filter/mood with optional min/max bounds.
// @Summary Filter records by mood score range
// @Tags records
// @Produce json
// @Param min query int false "Minimum mood score (inclusive)"
// @Param max query int false "Maximum mood score (inclusive)"
// @Success 200 {object} map[string]interface{} "count and records"
// @Failure 400 {object} map[string]interface{} "Malformed bound"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /records/filter/mood [get]
func (h *RecordHandler) FilterByMood(c *fiber.Ctx) error {
	var filter models.RecordFilter
	var err error
	if filter.MinMood, err = queryInt(c, "min"); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.MaxMood, err = queryInt(c, "max"); err != nil {
		return badRequest(c, err.Error())
	}

	records, err := h.Service.FindRecords(filter)
	if err != nil {
		log.Printf("Mood filter failed: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(records), "records": records})
}

// FilterByStress handles GET /records/filter/stress with optional min/max bounds.
// @Summary Filter records by stress score range
// @Tags records
// @Produce json
// @Param min query int false "Minimum stress score (inclusive)"
// @Param max query int false "Maximum stress score (inclusive)"
// @Success 200 {object} map[string]interface{} "count and records"
// @Failure 400 {object} map[string]interface{} "Malformed bound"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /records/filter/stress [get]
func (h *RecordHandler) FilterByStress(c *fiber.Ctx) error {
	var filter models.RecordFilter
	var err error
	if filter.MinStress, err = queryInt(c, "min"); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.MaxStress, err = queryInt(c, "max"); err != nil {
		return badRequest(c, err.Error())
	}

	records, err := h.Service.FindRecords(filter)
	if err != nil {
		log.Printf("Stress filter failed: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"count": len(records), "records": records})
}

// FilterByDate handles GET /records/filter/date with a required calendar date.
// Matching is a prefix match on the stored timestamp string.
// @Summary Filter records by exact day
// @Tags records
// @Produce json
// @Param date query string true "Calendar date, zero-padded (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "date, count and records"
// @Failure 400 {object} map[string]interface{} "Missing date"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /records/filter/date [get]
func (h *RecordHandler) FilterByDate(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return badRequest(c, "missing date parameter")
	}

	records, err := h.Service.FindRecords(models.RecordFilter{Date: &date})
	if err != nil {
		log.Printf("Date filter failed: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{"date": date, "count": len(records), "records": records})
}

// FilterByDateRange handles GET /records/filter/date-range with required
// start/end bounds, compared lexically against the timestamp string.
// @Summary Filter records by timestamp range
// @Tags records
// @Produce json
// @Param start query string true "Range start, zero-padded ISO-8601 prefix (inclusive)"
// @Param end query string true "Range end, zero-padded ISO-8601 prefix (inclusive)"
// @Success 200 {object} map[string]interface{} "start, end, count and records"
// @Failure 400 {object} map[string]interface{} "Missing bound"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /records/filter/date-range [get]
func (h *RecordHandler) FilterByDateRange(c *fiber.Ctx) error {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		return badRequest(c, "missing start or end parameter")
	}

	records, err := h.Service.FindRecords(models.RecordFilter{Start: &start, End: &end})
	if err != nil {
		log.Printf("Date range filter failed: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"start":   start,
		"end":     end,
		"count":   len(records),
		"records": records,
	})
}

// FilterAll handles GET /records/filter/all, combining every optional bound
// with AND and echoing which parameters were applied.
// @Summary Composite record filter
// @Tags records
// @Produce json
// @Param min_mood query int false "Minimum mood score"
// @Param max_mood query int false "Maximum mood score"
// @Param min_stress query int false "Minimum stress score"
// @Param max_stress query int false "Maximum stress score"
// @Param start query string false "Timestamp range start"
// @Param end query string false "Timestamp range end"
// @Param lat_min query number false "Minimum latitude"
// @Param lat_max query number false "Maximum latitude"
// @Param lng_min query number false "Minimum longitude"
// @Param lng_max query number false "Maximum longitude"
// @Success 200 {object} map[string]interface{} "filters_applied, count and records"
// @Failure 400 {object} map[string]interface{} "Malformed bound"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /records/filter/all [get]
func (h *RecordHandler) FilterAll(c *fiber.Ctx) error {
	var filter models.RecordFilter
	var err error
	if filter.MinMood, err = queryInt(c, "min_mood"); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.MaxMood, err = queryInt(c, "max_mood"); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.MinStress, err = queryInt(c, "min_stress"); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.MaxStress, err = queryInt(c, "max_stress"); err != nil {
		return badRequest(c, err.Error())
	}
	filter.Start = queryString(c, "start")
	filter.End = queryString(c, "end")
	if filter.LatMin, err = queryFloat(c, "lat_min"); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.LatMax, err = queryFloat(c, "lat_max"); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.LngMin, err = queryFloat(c, "lng_min"); err != nil {
		return badRequest(c, err.Error())
	}
	if filter.LngMax, err = queryFloat(c, "lng_max"); err != nil {
		return badRequest(c, err.Error())
	}

	records, err := h.Service.FindRecords(filter)
	if err != nil {
		log.Printf("Composite filter failed: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":         true,
		"filters_applied": filter.Applied(),
		"count":           len(records),
		"records":         records,
	})
}

// StatsSummary handles GET /stats/summary.
// @Summary Aggregate mood/stress statistics
// @Description Averages, per-score distributions and first/latest record time over all records
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "Summary, or a no-records message"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /stats/summary [get]
func (h *RecordHandler) StatsSummary(c *fiber.Ctx) error {
	summary, err := h.Service.Summary()
	if err != nil {
		log.Printf("Stats summary failed: %v", err)
		return serverError(c, err)
	}
	if summary == nil {
		return c.JSON(fiber.Map{"success": true, "message": "No records found."})
	}
	return c.JSON(fiber.Map{
		"success":             true,
		"total_records":       summary.TotalRecords,
		"avg_moodScore":       summary.AvgMoodScore,
		"avg_stressScore":     summary.AvgStressScore,
		"mood_distribution":   summary.MoodDistribution,
		"stress_distribution": summary.StressDistribution,
		"first_record_at":     summary.FirstRecordAt,
		"latest_record_at":    summary.LatestRecordAt,
	})
}

// DeleteRecord handles DELETE /records/:record_id, cascading to the vlog the
// record references.
// @Summary Delete a record and its video
// @Tags records
// @Produce json
// @Param record_id path string true "Record ID"
// @Success 200 {object} map[string]interface{} "deleted_record and deleted_video"
// @Failure 400 {object} map[string]interface{} "Invalid record id"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /records/{record_id} [delete]
func (h *RecordHandler) DeleteRecord(c *fiber.Ctx) error {
	idStr := c.Params("record_id")
	log.Printf("Deleting record - ID: %s, IP: %s", idStr, c.IP())

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Printf("Invalid record id: %s - Error: %v", idStr, err)
		return badRequest(c, InvalidRecordIDError)
	}

	filename, err := h.Service.DeleteRecord(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Record not found for delete: ID=%s", id)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": RecordNotFoundError,
			})
		}
		log.Printf("Error deleting record: ID=%s, Error=%v", id, err)
		return serverError(c, err)
	}

	var deletedVideo interface{}
	if filename != "" {
		deletedVideo = filename
	}
	log.Printf("Successfully deleted record: ID=%s, video=%v", id, deletedVideo)
	return c.JSON(fiber.Map{
		"success":        true,
		"deleted_record": idStr,
		"deleted_video":  deletedVideo,
	})
}

// DeleteAllRecords handles DELETE /records/delete/all, clearing both stores.
// @Summary Delete every record and every video
// @Tags records
// @Produce json
// @Success 200 {object} map[string]interface{} "Confirmation message"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /records/delete/all [delete]
func (h *RecordHandler) DeleteAllRecords(c *fiber.Ctx) error {
	log.Printf("Deleting all records and vlogs - IP: %s", c.IP())
	if err := h.Service.DeleteAll(); err != nil {
		log.Printf("Delete all failed: %v", err)
		return serverError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "All records and videos have been deleted.",
	})
}
