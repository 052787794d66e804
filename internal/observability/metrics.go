package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "palette_redis_errors_total",
			Help: "Total number of Redis command errors.",
		},
		[]string{"command"},
	)

	// HitsRecorded counts listing view hits that survived deduplication.
	HitsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "palette_listing_hits_total",
			Help: "Total number of recorded listing view hits.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(RedisErrors, HitsRecorded)
}
