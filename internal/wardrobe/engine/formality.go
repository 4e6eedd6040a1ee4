package engine

import (
	"math"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

const (
	// MaxFormalitySpread is the widest max-min formality gap allowed inside one outfit.
	MaxFormalitySpread = 2
	// TargetTolerance is the widest allowed gap between the mean formality and the target.
	TargetTolerance = 2.0
)

// FormalityOK checks the spread rule and, when target is set, proximity of the mean to it.
// An empty set is accepted.
func FormalityOK(garments []domain.Garment, target *int) bool {
	if len(garments) == 0 {
		return true
	}

	lo, hi, sum := garments[0].Formality, garments[0].Formality, 0
	for _, g := range garments {
		lo = min(lo, g.Formality)
		hi = max(hi, g.Formality)
		sum += g.Formality
	}
	if hi-lo > MaxFormalitySpread {
		return false
	}
	if target == nil {
		return true
	}

	mean := float64(sum) / float64(len(garments))
	return math.Abs(mean-float64(*target)) <= TargetTolerance
}
