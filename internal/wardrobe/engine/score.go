package engine

import (
	"cmp"
	"math"
	"slices"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

const (
	DefaultResultCap = 12

	distanceWeight = 2.0
	sizeWeight     = 0.1
)

// Score ranks an outfit: lower is better. Distance to the target formality dominates and
// outfit size breaks ties in favour of fewer pieces.
func Score(garments []domain.Garment, target *int) float64 {
	sum := 0
	for _, g := range garments {
		sum += g.Formality
	}
	avg := float64(sum) / float64(max(len(garments), 1))

	distance := 0.0
	if target != nil {
		distance = math.Abs(avg - float64(*target))
	}
	return distance*distanceWeight + float64(len(garments))*sizeWeight
}

// Rank sorts candidates by ascending score, keeping discovery order for ties, and truncates
// to limit. A non-positive limit uses DefaultResultCap.
func Rank(cands []Candidate, limit int) []Candidate {
	if limit <= 0 {
		limit = DefaultResultCap
	}
	slices.SortStableFunc(cands, func(a, b Candidate) int {
		return cmp.Compare(a.Score, b.Score)
	})
	if len(cands) > limit {
		cands = cands[:limit]
	}
	return cands
}
