// Package audit re-checks saved outfits against the current compatibility graph. Deleting a link
// or a garment can break an outfit that was a clique when it was saved; the audit flags it stale
// instead of deleting it, and clears the flag again if the links come back.
package audit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/internal/metrics"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/engine"
)

type OutfitStore interface {
	ListAll(ctx context.Context) ([]domain.Outfit, error)
	MarkStale(ctx context.Context, id string, stale bool) error
}

type LinkStore interface {
	List(ctx context.Context, ownerID string) ([]domain.Link, error)
}

// Report summarises one audit run.
type Report struct {
	Owners   int `json:"owners"`
	Checked  int `json:"checked"`
	Stale    int `json:"stale"`
	Marked   int `json:"marked"`
	Restored int `json:"restored"`
}

type Auditor struct {
	outfits OutfitStore
	links   LinkStore
	metrics *metrics.Registry
	logger  *zap.Logger
}

func NewAuditor(outfits OutfitStore, links LinkStore, m *metrics.Registry, logger *zap.Logger) *Auditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auditor{outfits: outfits, links: links, metrics: m, logger: logger.Named("audit")}
}

// Run audits every saved outfit. Only outfits whose stale flag changes are written.
func (a *Auditor) Run(ctx context.Context) (Report, error) {
	var rep Report

	outfits, err := a.outfits.ListAll(ctx)
	if err != nil {
		return rep, fmt.Errorf("failed to load outfits: %w", err)
	}

	byOwner := make(map[string][]domain.Outfit)
	var owners []string
	for _, o := range outfits {
		if _, ok := byOwner[o.OwnerID]; !ok {
			owners = append(owners, o.OwnerID)
		}
		byOwner[o.OwnerID] = append(byOwner[o.OwnerID], o)
	}

	for _, owner := range owners {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		links, err := a.links.List(ctx, owner)
		if err != nil {
			return rep, fmt.Errorf("failed to load links for %s: %w", owner, err)
		}
		g := engine.BuildGraph(links)
		rep.Owners++

		for _, o := range byOwner[owner] {
			rep.Checked++
			stale := !engine.IsClique(o.GarmentIDs, g)
			if stale {
				rep.Stale++
			}
			if stale == o.Stale {
				continue
			}

			if err := a.outfits.MarkStale(ctx, o.ID, stale); err != nil {
				return rep, fmt.Errorf("failed to flag outfit %s: %w", o.ID, err)
			}
			if stale {
				rep.Marked++
			} else {
				rep.Restored++
			}
		}
	}

	a.metrics.SetStaleOutfits(rep.Stale)
	a.logger.Info("outfit audit finished",
		zap.Int("owners", rep.Owners),
		zap.Int("checked", rep.Checked),
		zap.Int("stale", rep.Stale),
		zap.Int("marked", rep.Marked),
		zap.Int("restored", rep.Restored),
	)
	return rep, nil
}
