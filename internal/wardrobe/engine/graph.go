package engine

import (
	"sort"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

// Graph is the read-only compatibility graph built from one snapshot of links.
// There are no mutators; build a new one whenever the link set changes.
type Graph struct {
	adj map[string]map[string]struct{}
}

// BuildGraph inserts every link in both directions.
func BuildGraph(links []domain.Link) Graph {
	adj := make(map[string]map[string]struct{}, len(links))
	add := func(a, b string) {
		set, ok := adj[a]
		if !ok {
			set = make(map[string]struct{})
			adj[a] = set
		}
		set[b] = struct{}{}
	}
	for _, l := range links {
		if l.GarmentAID == l.GarmentBID {
			continue
		}
		add(l.GarmentAID, l.GarmentBID)
		add(l.GarmentBID, l.GarmentAID)
	}
	return Graph{adj: adj}
}

// Neighbors returns a sorted copy of id's neighbor set; empty for unknown ids.
func (g Graph) Neighbors(id string) []string {
	set := g.adj[id]
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (g Graph) Connected(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// MissingEdge returns the first pair (i<j) of ids that is not linked.
func (g Graph) MissingEdge(ids []string) (string, string, bool) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if !g.Connected(ids[i], ids[j]) {
				return ids[i], ids[j], true
			}
		}
	}
	return "", "", false
}

// IsClique reports whether every pair of ids is linked. Sets of size 0 or 1 are cliques.
func (g Graph) IsClique(ids []string) bool {
	_, _, missing := g.MissingEdge(ids)
	return !missing
}

// CompatibleWithAll reports whether candidate is linked to every id in current.
// A candidate with no links at all is never compatible.
func (g Graph) CompatibleWithAll(candidate string, current []string) bool {
	neighbors, ok := g.adj[candidate]
	if !ok {
		return false
	}
	for _, id := range current {
		if _, ok := neighbors[id]; !ok {
			return false
		}
	}
	return true
}

// IsClique is the predicate shared with the outfit save path.
func IsClique(ids []string, g Graph) bool {
	return g.IsClique(ids)
}
