package ntt

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	convolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ntt_convolutions_total",
			Help: "The total number of circular convolutions processed",
		},
		[]string{"algorithm", "status"},
	)
	convolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "ntt_convolution_duration_seconds",
			Help: "The duration of circular convolutions in seconds",
		},
		[]string{"algorithm"},
	)
	modulusSearchIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ntt_modulus_search_iterations",
			Help:    "Number of candidate primes tested per modulus search",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)
