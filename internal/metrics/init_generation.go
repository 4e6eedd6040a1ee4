package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenerationMetrics() {
	r.GenerationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshfit_outfit_generations_total",
			Help: "Total number of outfit generation requests",
		},
		[]string{"status"},
	)

	r.GenerationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meshfit_outfit_generation_duration_seconds",
			Help:    "Time spent running the outfit engine",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	r.GenerationCandidates = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meshfit_outfit_generation_candidates",
			Help:    "Number of candidates returned per generation",
			Buckets: []float64{0, 1, 2, 4, 8, 12},
		},
	)

	r.GenerationCacheTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshfit_outfit_generation_cache_total",
			Help: "Generation cache lookups by result",
		},
		[]string{"result"},
	)

	r.OutfitValidationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshfit_outfit_validations_total",
			Help: "Outfit clique checks by result",
		},
		[]string{"result"},
	)

	r.OutfitAuditStaleOutfits = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "meshfit_outfit_audit_stale_outfits",
			Help: "Saved outfits found stale by the last audit",
		},
	)
}
