package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"emogo-backend/internal/models"
)

// listLimit caps how many records a single query returns. Effectively
// unbounded for this workload; a real pagination layer would replace it.
const listLimit = 99999

// RecordRepository interface defines methods for record storage operations.
type RecordRepository interface {
	CreateRecord(record *models.Record) error
	GetRecord(id uuid.UUID) (*models.Record, error)
	ListRecords() ([]models.Record, error)
	FindRecords(filter models.RecordFilter) ([]models.Record, error)
	DeleteRecord(id uuid.UUID) error
	DeleteAllRecords() (int64, error)
	CountRecords() (int64, error)
	Ping(ctx context.Context) error
}

// RecordRepositoryImpl provides methods to interact with the Record model in the database.
type RecordRepositoryImpl struct {
	db *gorm.DB
}

// NewRecordRepository creates a new RecordRepositoryImpl instance with the provided GORM database connection.
func NewRecordRepository(db *gorm.DB) *RecordRepositoryImpl {
	return &RecordRepositoryImpl{db: db}
}

// CreateRecord creates a new Record in the database.
func (r *RecordRepositoryImpl) CreateRecord(record *models.Record) error {
	return r.db.Create(record).Error
}

// GetRecord retrieves a Record by its ID from the database.
func (r *RecordRepositoryImpl) GetRecord(id uuid.UUID) (*models.Record, error) {
	var record models.Record
	err := r.db.First(&record, "id = ?", id).Error
	return &record, err
}

// ListRecords retrieves all Records from the database. The slice is never
// nil, so an empty store serializes as an empty array.
func (r *RecordRepositoryImpl) ListRecords() ([]models.Record, error) {
	records := make([]models.Record, 0)
	err := r.db.Limit(listLimit).Find(&records).Error
	return records, err
}

// FindRecords retrieves Records matching the given filter. Only bounds that
// are set contribute a clause; an empty filter matches everything. Timestamp
// comparisons are string comparisons against the stored lexical form.
func (r *RecordRepositoryImpl) FindRecords(filter models.RecordFilter) ([]models.Record, error) {
	tx := r.db.Model(&models.Record{})

	if filter.MinMood != nil {
		tx = tx.Where("mood_score >= ?", *filter.MinMood)
	}
	if filter.MaxMood != nil {
		tx = tx.Where("mood_score <= ?", *filter.MaxMood)
	}
	if filter.MinStress != nil {
		tx = tx.Where("stress_score >= ?", *filter.MinStress)
	}
	if filter.MaxStress != nil {
		tx = tx.Where("stress_score <= ?", *filter.MaxStress)
	}
	if filter.Date != nil {
		tx = tx.Where("timestamp LIKE ?", *filter.Date+"%")
	}
	if filter.Start != nil {
		tx = tx.Where("timestamp >= ?", *filter.Start)
	}
	if filter.End != nil {
		tx = tx.Where("timestamp <= ?", *filter.End)
	}
	if filter.LatMin != nil {
		tx = tx.Where("lat >= ?", *filter.LatMin)
	}
	if filter.LatMax != nil {
		tx = tx.Where("lat <= ?", *filter.LatMax)
	}
	if filter.LngMin != nil {
		tx = tx.Where("lng >= ?", *filter.LngMin)
	}
	if filter.LngMax != nil {
		tx = tx.Where("lng <= ?", *filter.LngMax)
	}

	records := make([]models.Record, 0)
	err := tx.Limit(listLimit).Find(&records).Error
	return records, err
}

// DeleteRecord deletes a Record by its ID from the database.
func (r *RecordRepositoryImpl) DeleteRecord(id uuid.UUID) error {
	return r.db.Delete(&models.Record{}, "id = ?", id).Error
}

// DeleteAllRecords removes every Record and reports how many were deleted.
func (r *RecordRepositoryImpl) DeleteAllRecords() (int64, error) {
	res := r.db.Where("1 = 1").Delete(&models.Record{})
	return res.RowsAffected, res.Error
}

// CountRecords returns the total number of Records.
func (r *RecordRepositoryImpl) CountRecords() (int64, error) {
	var count int64
	err := r.db.Model(&models.Record{}).Count(&count).Error
	return count, err
}

// Ping checks database reachability for health reporting.
func (r *RecordRepositoryImpl) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
