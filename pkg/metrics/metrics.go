package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FallbackServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "fallback_total", Help: "Number of responses served from built-in default content, by section."},
		[]string{"section"},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "store_errors_total", Help: "Number of failed document store operations, by operation."},
		[]string{"operation"},
	)
	ContactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "contact_submissions_total", Help: "Number of contact form submissions by result."},
		[]string{"result"},
	)
	AudioInteractions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "audio_interactions_total", Help: "Number of audio player interaction events by result."},
		[]string{"result"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(FallbackServed)
	reg.MustRegister(StoreErrors)
	reg.MustRegister(ContactSubmissions)
	reg.MustRegister(AudioInteractions)
}
