// Package service is the boundary between transport and the outfit engine. It loads owner
// snapshots from the stores, runs the engine, validates saved outfits against the compatibility
// graph and keeps the generation cache coherent with wardrobe mutations.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/internal/metrics"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/engine"
)

type Deps struct {
	Garments GarmentStore
	Links    LinkStore
	Outfits  OutfitStore
	// Cache is optional; generation runs uncached without it.
	Cache GenerationCache
	// Images is optional; uploads fail with domain.ErrImagesDisabled without it.
	Images    ImageStore
	Metrics   *metrics.Registry
	Logger    *zap.Logger
	ResultCap int
}

// WardrobeService handles the wardrobe use cases. It is safe for concurrent use.
type WardrobeService struct {
	garments  GarmentStore
	links     LinkStore
	outfits   OutfitStore
	cache     GenerationCache
	images    ImageStore
	metrics   *metrics.Registry
	logger    *zap.Logger
	generator engine.Generator
}

func NewWardrobeService(d Deps) *WardrobeService {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WardrobeService{
		garments:  d.Garments,
		links:     d.Links,
		outfits:   d.Outfits,
		cache:     d.Cache,
		images:    d.Images,
		metrics:   d.Metrics,
		logger:    logger.Named("wardrobe"),
		generator: engine.NewGenerator(d.ResultCap),
	}
}

// invalidate bumps the owner's cache revision after a garment or link mutation. Failures are
// logged; entries cached under the old revision still expire with the cache TTL.
func (s *WardrobeService) invalidate(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.logger.Error("failed to invalidate generation cache",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
	}
}
