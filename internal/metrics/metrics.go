package metrics

import (
	"time"
)

// Every recorder is a no-op on a nil *Registry, so callers built without metrics need no guards.

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordGeneration records one engine run. status is "ok" or "error".
func (r *Registry) RecordGeneration(status string, duration time.Duration, candidates int) {
	if r == nil {
		return
	}
	r.GenerationsTotal.WithLabelValues(status).Inc()
	if status != "ok" {
		return
	}
	r.GenerationDuration.Observe(duration.Seconds())
	r.GenerationCandidates.Observe(float64(candidates))
}

// RecordCacheLookup counts a generation cache hit or miss.
func (r *Registry) RecordCacheLookup(hit bool) {
	if r == nil {
		return
	}
	if hit {
		r.GenerationCacheTotal.WithLabelValues("hit").Inc()
	} else {
		r.GenerationCacheTotal.WithLabelValues("miss").Inc()
	}
}

// RecordValidation counts an outfit clique check.
func (r *Registry) RecordValidation(valid bool) {
	if r == nil {
		return
	}
	if valid {
		r.OutfitValidationsTotal.WithLabelValues("valid").Inc()
	} else {
		r.OutfitValidationsTotal.WithLabelValues("invalid").Inc()
	}
}

// SetStaleOutfits publishes the stale count of the last audit.
func (r *Registry) SetStaleOutfits(n int) {
	if r == nil {
		return
	}
	r.OutfitAuditStaleOutfits.Set(float64(n))
}
