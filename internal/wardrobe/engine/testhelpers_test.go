package engine

import "github.com/meshfit/meshfit-backend/internal/wardrobe/domain"

func garment(id string, cat domain.Category, formality int) domain.Garment {
	return domain.Garment{ID: id, Name: id, Category: cat, Formality: formality}
}

func link(a, b string) domain.Link {
	return domain.Link{ID: a + "~" + b, GarmentAID: a, GarmentBID: b, Strength: domain.StrengthOK}
}

// clique links every pair of ids.
func clique(ids ...string) []domain.Link {
	var out []domain.Link
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			out = append(out, link(ids[i], ids[j]))
		}
	}
	return out
}

func intPtr(v int) *int { return &v }

func idSets(cands []Candidate) [][]string {
	out := make([][]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.GarmentIDs)
	}
	return out
}

func baseWardrobe() []domain.Garment {
	return []domain.Garment{
		garment("T1", domain.CategoryTop, 2),
		garment("B1", domain.CategoryBottom, 2),
		garment("S1", domain.CategoryFootwear, 2),
	}
}
