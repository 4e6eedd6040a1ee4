package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshfit/meshfit-backend/internal/metrics"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

type memOutfits struct {
	items  []domain.Outfit
	writes map[string]bool
}

func (m *memOutfits) ListAll(context.Context) ([]domain.Outfit, error) {
	return m.items, nil
}

func (m *memOutfits) MarkStale(_ context.Context, id string, stale bool) error {
	if m.writes == nil {
		m.writes = map[string]bool{}
	}
	m.writes[id] = stale
	return nil
}

type memLinks struct {
	byOwner map[string][]domain.Link
	calls   int
	err     error
}

func (m *memLinks) List(_ context.Context, ownerID string) ([]domain.Link, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.byOwner[ownerID], nil
}

func triangle(owner, a, b, c string) []domain.Link {
	return []domain.Link{
		{OwnerID: owner, GarmentAID: a, GarmentBID: b},
		{OwnerID: owner, GarmentAID: b, GarmentBID: c},
		{OwnerID: owner, GarmentAID: a, GarmentBID: c},
	}
}

func TestAuditor_Run(t *testing.T) {
	outfits := &memOutfits{items: []domain.Outfit{
		{ID: "ok", OwnerID: "u1", GarmentIDs: []string{"a", "b", "c"}},
		{ID: "broken", OwnerID: "u1", GarmentIDs: []string{"a", "b", "d"}},
		{ID: "already-stale", OwnerID: "u1", GarmentIDs: []string{"a", "c", "d"}, Stale: true},
		{ID: "healed", OwnerID: "u2", GarmentIDs: []string{"x", "y", "z"}, Stale: true},
	}}
	links := &memLinks{byOwner: map[string][]domain.Link{
		"u1": triangle("u1", "a", "b", "c"),
		"u2": triangle("u2", "x", "y", "z"),
	}}
	reg := metrics.NewRegistry()

	rep, err := NewAuditor(outfits, links, reg, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Report{Owners: 2, Checked: 4, Stale: 2, Marked: 1, Restored: 1}, rep)
	assert.Equal(t, map[string]bool{"broken": true, "healed": false}, outfits.writes)
	assert.Equal(t, 2, links.calls)
	assert.Equal(t, 2.0, testutil.ToFloat64(reg.OutfitAuditStaleOutfits))
}

func TestAuditor_RunLinkError(t *testing.T) {
	boom := errors.New("db down")
	outfits := &memOutfits{items: []domain.Outfit{{ID: "o", OwnerID: "u1", GarmentIDs: []string{"a", "b", "c"}}}}

	_, err := NewAuditor(outfits, &memLinks{err: boom}, nil, nil).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, outfits.writes)
}

func TestAuditor_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outfits := &memOutfits{items: []domain.Outfit{{ID: "o", OwnerID: "u1", GarmentIDs: []string{"a", "b", "c"}}}}
	_, err := NewAuditor(outfits, &memLinks{}, nil, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
