// Package engine generates outfit candidates from a wardrobe and its compatibility graph.
//
// An outfit is a top, a bottom and a pair of shoes, optionally extended with one outerwear
// piece and up to two accessories, such that every pair of garments is linked. Candidates are
// filtered by formality, deduplicated by garment set, scored and ranked.
//
// Everything here is pure: a call reads its snapshot of garments and links and shares no state
// with other calls.
package engine

import (
	"slices"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

type Request struct {
	Garments []domain.Garment
	Links    []domain.Link
	Occasion string
	// TargetFormality is 1..5 when set.
	TargetFormality *int
	// RequiredGarmentIDs must appear in every outfit. Ids not in Garments are ignored.
	RequiredGarmentIDs []string
}

type Candidate struct {
	GarmentIDs  []string `json:"garment_ids"`
	Description string   `json:"description"`
	Score       float64  `json:"score"`
}

type Generator struct {
	ResultCap int
}

func NewGenerator(resultCap int) Generator {
	if resultCap <= 0 {
		resultCap = DefaultResultCap
	}
	return Generator{ResultCap: resultCap}
}

// Generate runs with DefaultResultCap.
func Generate(req Request) []Candidate {
	return NewGenerator(DefaultResultCap).Generate(req)
}

// Generate never fails: a wardrobe missing a mandatory category, or a graph without a single
// complete triangle, yields an empty slice.
func (gen Generator) Generate(req Request) []Candidate {
	w := partition(req.Garments)
	g := BuildGraph(req.Links)
	required := w.existing(req.RequiredGarmentIDs)

	found := expand(w, g, required, req.TargetFormality)

	cands := make([]Candidate, 0, len(found))
	for _, o := range found {
		ids := slices.Clone(o.ids)
		slices.Sort(ids)
		cands = append(cands, Candidate{
			GarmentIDs:  ids,
			Description: Describe(o.garments, req.Occasion),
			Score:       Score(o.garments, req.TargetFormality),
		})
	}
	return Rank(cands, gen.ResultCap)
}
