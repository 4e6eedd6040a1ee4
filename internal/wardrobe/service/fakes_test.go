package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/engine"
)

type fakeGarments struct {
	mu    sync.Mutex
	items map[string]domain.Garment
	seq   int
}

func newFakeGarments(gs ...domain.Garment) *fakeGarments {
	f := &fakeGarments{items: map[string]domain.Garment{}}
	for _, g := range gs {
		f.items[g.ID] = g
	}
	return f
}

func (f *fakeGarments) Create(_ context.Context, g *domain.Garment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	g.ID = fmt.Sprintf("g%d", f.seq)
	f.items[g.ID] = *g
	return nil
}

func (f *fakeGarments) Get(_ context.Context, ownerID, id string) (*domain.Garment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.items[id]
	if !ok || g.OwnerID != ownerID {
		return nil, domain.ErrGarmentNotFound
	}
	return &g, nil
}

func (f *fakeGarments) List(_ context.Context, ownerID string) ([]domain.Garment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Garment{}
	for _, g := range f.items {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	slices.SortFunc(out, func(a, b domain.Garment) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (f *fakeGarments) ListByIDs(ctx context.Context, ownerID string, ids []string) ([]domain.Garment, error) {
	all, _ := f.List(ctx, ownerID)
	out := []domain.Garment{}
	for _, g := range all {
		if slices.Contains(ids, g.ID) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGarments) Update(_ context.Context, g *domain.Garment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.items[g.ID]
	if !ok || cur.OwnerID != g.OwnerID {
		return domain.ErrGarmentNotFound
	}
	f.items[g.ID] = *g
	return nil
}

func (f *fakeGarments) Delete(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.items[id]
	if !ok || g.OwnerID != ownerID {
		return domain.ErrGarmentNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeLinks struct {
	mu    sync.Mutex
	items []domain.Link
	seq   int
	err   error
}

func (f *fakeLinks) Create(_ context.Context, l *domain.Link) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	*l = l.Canonical()
	for _, cur := range f.items {
		if cur.OwnerID == l.OwnerID && cur.GarmentAID == l.GarmentAID && cur.GarmentBID == l.GarmentBID {
			return domain.ErrLinkExists
		}
	}
	f.seq++
	l.ID = fmt.Sprintf("l%d", f.seq)
	f.items = append(f.items, *l)
	return nil
}

func (f *fakeLinks) List(_ context.Context, ownerID string) ([]domain.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Link{}
	for _, l := range f.items {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLinks) Delete(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.items {
		if l.ID == id && l.OwnerID == ownerID {
			f.items = slices.Delete(f.items, i, i+1)
			return nil
		}
	}
	return domain.ErrLinkNotFound
}

type fakeOutfits struct {
	mu    sync.Mutex
	items []domain.Outfit
}

func (f *fakeOutfits) Create(_ context.Context, o *domain.Outfit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = fmt.Sprintf("o%d", len(f.items)+1)
	f.items = append(f.items, *o)
	return nil
}

func (f *fakeOutfits) List(_ context.Context, ownerID string) ([]domain.Outfit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Outfit{}
	for _, o := range f.items {
		if o.OwnerID == ownerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOutfits) Delete(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, o := range f.items {
		if o.ID == id && o.OwnerID == ownerID {
			f.items = slices.Delete(f.items, i, i+1)
			return nil
		}
	}
	return domain.ErrOutfitNotFound
}

type fakeCache struct {
	mu          sync.Mutex
	revs        map[string]int64
	entries     map[string][]engine.Candidate
	gets, puts  int
	revisionErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{revs: map[string]int64{}, entries: map[string][]engine.Candidate{}}
}

func (f *fakeCache) key(ownerID string, rev int64, key string) string {
	return fmt.Sprintf("%s:%d:%s", ownerID, rev, key)
}

func (f *fakeCache) Revision(_ context.Context, ownerID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.revisionErr != nil {
		return 0, f.revisionErr
	}
	return f.revs[ownerID], nil
}

func (f *fakeCache) Get(_ context.Context, ownerID string, rev int64, key string) ([]engine.Candidate, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	c, ok := f.entries[f.key(ownerID, rev, key)]
	return c, ok, nil
}

func (f *fakeCache) Put(_ context.Context, ownerID string, rev int64, key string, cands []engine.Candidate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	f.entries[f.key(ownerID, rev, key)] = cands
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, ownerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revs[ownerID]++
	return nil
}

type fakeImages struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (f *fakeImages) Put(_ context.Context, key, contentType string, body io.Reader, _ int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.key, f.contentType, f.body = key, contentType, data
	return "https://cdn.example.test/" + key, nil
}

var errBoom = errors.New("boom")
