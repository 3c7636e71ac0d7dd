package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TranscriptionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suaraform_transcription_requests_total",
			Help: "Total number of transcription requests by outcome",
		},
		[]string{"outcome"},
	)

	TranscriptionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "suaraform_transcription_duration_seconds",
			Help: "Duration of remote transcription calls in seconds",
		},
	)

	ExtractionFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "suaraform_extraction_fallbacks_total",
			Help: "Total number of times field extraction fell back to the raw transcript",
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "suaraform_sessions_active",
			Help: "Number of active conversation sessions",
		},
	)

	ConversationsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "suaraform_conversations_completed_total",
			Help: "Total number of voice conversations that reached the review step",
		},
	)

	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suaraform_applications_submitted_total",
			Help: "Total number of application submissions by outcome",
		},
		[]string{"outcome"},
	)
)

func ObserveTranscription(d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	TranscriptionRequests.WithLabelValues(outcome).Inc()
	TranscriptionDuration.Observe(d.Seconds())
}
