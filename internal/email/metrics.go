package email

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	emailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roofdesk_emails_total",
			Help: "Emails handed to the provider by template and result",
		},
		[]string{"template", "provider", "result"},
	)

	emailDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roofdesk_email_send_duration_seconds",
			Help:    "Time spent handing an email to the provider",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
)

func observe(o prometheus.Observer) func() {
	start := time.Now()
	return func() {
		o.Observe(time.Since(start).Seconds())
	}
}
