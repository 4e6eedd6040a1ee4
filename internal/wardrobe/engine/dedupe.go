package engine

import (
	"slices"
	"strings"
)

// keySeparator cannot appear in an id: postgres text values never contain NUL.
const keySeparator = "\x00"

// CanonicalKey identifies a garment set regardless of the order it was built in.
func CanonicalKey(ids []string) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return strings.Join(sorted, keySeparator)
}

type dedup struct {
	seen map[string]struct{}
}

func newDedup() *dedup {
	return &dedup{seen: make(map[string]struct{})}
}

// add records ids and reports whether the set had not been seen before.
func (d *dedup) add(ids []string) bool {
	key := CanonicalKey(ids)
	if _, ok := d.seen[key]; ok {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}
