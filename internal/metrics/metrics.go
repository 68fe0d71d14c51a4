package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the transcription server
type Metrics struct {
	// Transcription metrics
	TranscriptionRequests *prometheus.CounterVec
	TranscriptionFailures *prometheus.CounterVec
	TranscriptionDuration *prometheus.HistogramVec

	// Upload metrics
	UploadBytes      prometheus.Histogram
	OversizedUploads prometheus.Counter

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewMetrics creates all metrics on the given registerer. Tests pass a fresh
// prometheus.NewRegistry so packages can build metrics more than once per
// process.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TranscriptionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "c2t_transcription_requests_total",
			Help: "Total number of transcription requests by provider",
		}, []string{"provider"}),
		TranscriptionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "c2t_transcription_failures_total",
			Help: "Total number of failed transcription requests by provider and error code",
		}, []string{"provider", "code"}),
		TranscriptionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "c2t_transcription_duration_seconds",
			Help:    "Duration of transcription requests by provider",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~2 minutes
		}, []string{"provider"}),

		UploadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "c2t_upload_size_bytes",
			Help:    "Size of uploaded media files in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10), // 1KB to ~256MB
		}),
		OversizedUploads: factory.NewCounter(prometheus.CounterOpts{
			Name: "c2t_oversized_uploads_total",
			Help: "Total number of uploads rejected for exceeding the size limit",
		}),

		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "c2t_transcript_cache_hits_total",
			Help: "Total number of transcript cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "c2t_transcript_cache_misses_total",
			Help: "Total number of transcript cache misses",
		}),
	}
}

// RecordRequest increments the request counter for a provider. All Record
// methods accept a nil receiver so metrics stay optional for callers.
func (m *Metrics) RecordRequest(provider string) {
	if m == nil {
		return
	}
	m.TranscriptionRequests.WithLabelValues(provider).Inc()
}

// RecordSuccess records a completed transcription and its duration
func (m *Metrics) RecordSuccess(provider string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.TranscriptionDuration.WithLabelValues(provider).Observe(durationSeconds)
}

// RecordFailure records a failed transcription with its error code
func (m *Metrics) RecordFailure(provider, code string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.TranscriptionFailures.WithLabelValues(provider, code).Inc()
	m.TranscriptionDuration.WithLabelValues(provider).Observe(durationSeconds)
}

// RecordUpload records the size of an accepted upload
func (m *Metrics) RecordUpload(sizeBytes int64) {
	if m == nil {
		return
	}
	m.UploadBytes.Observe(float64(sizeBytes))
}

// RecordOversizedUpload increments the oversize rejection counter
func (m *Metrics) RecordOversizedUpload() {
	if m == nil {
		return
	}
	m.OversizedUploads.Inc()
}

// RecordCacheHit increments the cache hit counter
func (m *Metrics) RecordCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// RecordCacheMiss increments the cache miss counter
func (m *Metrics) RecordCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}
