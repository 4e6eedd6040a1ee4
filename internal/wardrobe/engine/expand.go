package engine

import (
	"slices"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

type wardrobe struct {
	byID        map[string]domain.Garment
	tops        []domain.Garment
	bottoms     []domain.Garment
	shoes       []domain.Garment
	outerwear   []domain.Garment
	accessories []domain.Garment
}

func partition(garments []domain.Garment) wardrobe {
	w := wardrobe{byID: make(map[string]domain.Garment, len(garments))}
	for _, g := range garments {
		w.byID[g.ID] = g
		switch g.Category {
		case domain.CategoryTop:
			w.tops = append(w.tops, g)
		case domain.CategoryBottom:
			w.bottoms = append(w.bottoms, g)
		case domain.CategoryFootwear:
			w.shoes = append(w.shoes, g)
		case domain.CategoryOuterwear:
			w.outerwear = append(w.outerwear, g)
		case domain.CategoryAccessory:
			w.accessories = append(w.accessories, g)
		}
	}
	return w
}

// resolve maps ids to garments in the given order, dropping ids not in the wardrobe.
func (w wardrobe) resolve(ids []string) []domain.Garment {
	out := make([]domain.Garment, 0, len(ids))
	for _, id := range ids {
		if g, ok := w.byID[id]; ok {
			out = append(out, g)
		}
	}
	return out
}

// existing keeps the required ids present in the wardrobe, first occurrence wins.
func (w wardrobe) existing(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := w.byID[id]; ok && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

type outfit struct {
	ids      []string
	garments []domain.Garment
}

// expand enumerates every base (top, bottom, shoes) that forms a clique with the required garments,
// then grows each base by at most one outerwear piece and at most two accessories. The clique
// invariant holds at every step. Results are deduplicated and in discovery order.
func expand(w wardrobe, g Graph, required []string, target *int) []outfit {
	var (
		out  []outfit
		seen = newDedup()
	)

	for _, top := range w.tops {
		for _, bottom := range w.bottoms {
			for _, shoe := range w.shoes {
				base := appendUnique(slices.Clone(required), top.ID, bottom.ID, shoe.ID)
				if !g.IsClique(base) {
					continue
				}
				if !FormalityOK(w.resolve(base), target) {
					continue
				}

				for _, ids := range withAccessories(g, withOuterwear(g, base, w.outerwear), w.accessories) {
					garments := w.resolve(ids)
					if !FormalityOK(garments, target) {
						continue
					}
					if !seen.add(ids) {
						continue
					}
					out = append(out, outfit{ids: ids, garments: garments})
				}
			}
		}
	}
	return out
}

// withOuterwear returns the base plus one variant per compatible outerwear piece.
func withOuterwear(g Graph, base []string, outerwear []domain.Garment) [][]string {
	variants := [][]string{base}
	for _, o := range outerwear {
		if !g.CompatibleWithAll(o.ID, base) {
			continue
		}
		expanded := extend(base, o.ID)
		if g.IsClique(expanded) {
			variants = append(variants, expanded)
		}
	}
	return variants
}

// withAccessories keeps each variant and adds its 1- and 2-accessory extensions.
func withAccessories(g Graph, variants [][]string, accessories []domain.Garment) [][]string {
	var out [][]string
	for _, ids := range variants {
		out = append(out, ids)

		compatible := make([]string, 0, len(accessories))
		for _, a := range accessories {
			if g.CompatibleWithAll(a.ID, ids) {
				compatible = append(compatible, a.ID)
			}
		}

		for _, first := range compatible {
			once := extend(ids, first)
			if !g.IsClique(once) {
				continue
			}
			out = append(out, once)
			for _, second := range compatible {
				if second == first {
					continue
				}
				twice := extend(once, second)
				if g.IsClique(twice) {
					out = append(out, twice)
				}
			}
		}
	}
	return out
}

func extend(ids []string, more ...string) []string {
	out := make([]string, 0, len(ids)+len(more))
	out = append(out, ids...)
	return append(out, more...)
}

func appendUnique(ids []string, more ...string) []string {
	for _, id := range more {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}
