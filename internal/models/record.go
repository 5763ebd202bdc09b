package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is one mood/stress/location journal entry stored in the database.
//
// Timestamp is the client-supplied capture time kept as an opaque string.
// Range and prefix filters compare it lexically, so clients must send
// zero-padded ISO-8601 values ("2025-01-15T10:30:00Z") for correct ordering.
type Record struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MoodScore   int       `json:"moodScore"`
	StressScore int       `json:"stressScore"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Accuracy    float64   `json:"accuracy"`
	VideoURL    string    `json:"videoUrl"`
	Timestamp   string    `json:"timestamp"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordInput is the upload payload for a new record. The server assigns
// the id and created_at.
type RecordInput struct {
	MoodScore   int     `json:"moodScore"`
	StressScore int     `json:"stressScore"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Accuracy    float64 `json:"accuracy"`
	VideoURL    string  `json:"videoUrl"`
	Timestamp   string  `json:"timestamp"`
}

// VlogInfo describes one stored video file. URL is filled in by the export
// layer from the configured base URL.
type VlogInfo struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url,omitempty"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// StatsSummary is the aggregate over the full record set.
type StatsSummary struct {
	TotalRecords       int         `json:"total_records"`
	AvgMoodScore       float64     `json:"avg_moodScore"`
	AvgStressScore     float64     `json:"avg_stressScore"`
	MoodDistribution   map[int]int `json:"mood_distribution"`
	StressDistribution map[int]int `json:"stress_distribution"`
	FirstRecordAt      string      `json:"first_record_at"`
	LatestRecordAt     string      `json:"latest_record_at"`
}
