package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the backend. A nil *Metrics is
// valid and records nothing, so tests can skip registration.
type Metrics struct {
	vlogUploads      prometheus.Counter
	recordUploads    prometheus.Counter
	recordDeletes    prometheus.Counter
	vlogDeletes      prometheus.Counter
	bulkDeletes      prometheus.Counter
	exports          prometheus.Counter
	archiveBuildMs   prometheus.Histogram
	archiveSizeBytes prometheus.Histogram
}

// NewMetrics creates and registers all backend metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		vlogUploads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emogo_vlog_uploads_total",
			Help: "Total number of uploaded video files",
		}),
		recordUploads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emogo_record_uploads_total",
			Help: "Total number of created journal records",
		}),
		recordDeletes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emogo_record_deletes_total",
			Help: "Total number of single record deletions",
		}),
		vlogDeletes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emogo_vlog_deletes_total",
			Help: "Total number of single vlog deletions",
		}),
		bulkDeletes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emogo_bulk_deletes_total",
			Help: "Total number of delete-all operations",
		}),
		exports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "emogo_exports_total",
			Help: "Total number of export requests (listing and archive)",
		}),
		archiveBuildMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "emogo_archive_build_latency_ms",
			Help:    "Latency of full archive construction in milliseconds",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
		archiveSizeBytes: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "emogo_archive_size_bytes",
			Help:    "Size of produced export archives in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}
}

// VlogUploaded records one video upload.
func (m *Metrics) VlogUploaded() {
	if m == nil {
		return
	}
	m.vlogUploads.Inc()
}

// RecordUploaded records one record creation.
func (m *Metrics) RecordUploaded() {
	if m == nil {
		return
	}
	m.recordUploads.Inc()
}

// RecordDeleted records one single-record deletion.
func (m *Metrics) RecordDeleted() {
	if m == nil {
		return
	}
	m.recordDeletes.Inc()
}

// VlogDeleted records one single-vlog deletion.
func (m *Metrics) VlogDeleted() {
	if m == nil {
		return
	}
	m.vlogDeletes.Inc()
}

// BulkDeleted records one delete-all operation.
func (m *Metrics) BulkDeleted() {
	if m == nil {
		return
	}
	m.bulkDeletes.Inc()
}

// Exported records one export request.
func (m *Metrics) Exported() {
	if m == nil {
		return
	}
	m.exports.Inc()
}

// ArchiveBuilt records latency and size of a finished archive build.
func (m *Metrics) ArchiveBuilt(latencyMs float64, sizeBytes int) {
	if m == nil {
		return
	}
	m.archiveBuildMs.Observe(latencyMs)
	m.archiveSizeBytes.Observe(float64(sizeBytes))
}
