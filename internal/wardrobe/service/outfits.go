package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/engine"
)

const minOutfitSize = 3

type GenerateInput struct {
	Occasion        string
	TargetFormality *int
	RequiredIDs     []string
	// Clima is informational only. It is logged and never reaches the engine.
	Clima string
}

type SaveInput struct {
	GarmentIDs  []string
	Occasion    string
	Description string
	Model       *string
}

// GenerateOutfits runs the engine over the owner's current wardrobe. Results are cached per
// wardrobe revision; the revision is read before the snapshot is loaded, so a mutation racing
// with this call can only leave an entry under a revision that is already outdated.
func (s *WardrobeService) GenerateOutfits(ctx context.Context, ownerID string, in GenerateInput) ([]engine.Candidate, error) {
	key := requestKey(in)
	rev, cached := s.lookup(ctx, ownerID, key)
	if cached != nil {
		return cached, nil
	}

	garments, err := s.garments.List(ctx, ownerID)
	if err != nil {
		s.metrics.RecordGeneration("error", 0, 0)
		return nil, err
	}
	links, err := s.links.List(ctx, ownerID)
	if err != nil {
		s.metrics.RecordGeneration("error", 0, 0)
		return nil, err
	}

	start := time.Now()
	cands := s.generator.Generate(engine.Request{
		Garments:           garments,
		Links:              links,
		Occasion:           in.Occasion,
		TargetFormality:    in.TargetFormality,
		RequiredGarmentIDs: in.RequiredIDs,
	})
	elapsed := time.Since(start)
	s.metrics.RecordGeneration("ok", elapsed, len(cands))

	s.logger.Debug("outfits generated",
		zap.String("owner_id", ownerID),
		zap.String("occasion", in.Occasion),
		zap.String("clima", in.Clima),
		zap.Int("garments", len(garments)),
		zap.Int("links", len(links)),
		zap.Int("candidates", len(cands)),
		zap.Duration("elapsed", elapsed),
	)

	if s.cache != nil && rev >= 0 {
		if err := s.cache.Put(ctx, ownerID, rev, key, cands); err != nil {
			s.logger.Warn("failed to cache generated outfits", zap.String("owner_id", ownerID), zap.Error(err))
		}
	}
	return cands, nil
}

// lookup returns the revision to cache under and any cached result. A revision of -1 means the
// cache is unavailable for this call.
func (s *WardrobeService) lookup(ctx context.Context, ownerID, key string) (int64, []engine.Candidate) {
	if s.cache == nil {
		return -1, nil
	}
	rev, err := s.cache.Revision(ctx, ownerID)
	if err != nil {
		s.logger.Warn("generation cache unavailable", zap.String("owner_id", ownerID), zap.Error(err))
		return -1, nil
	}
	cands, ok, err := s.cache.Get(ctx, ownerID, rev, key)
	if err != nil {
		s.logger.Warn("failed to read generation cache", zap.String("owner_id", ownerID), zap.Error(err))
	}
	s.metrics.RecordCacheLookup(ok)
	if !ok {
		return rev, nil
	}
	if cands == nil {
		cands = []engine.Candidate{}
	}
	return rev, cands
}

// requestKey hashes every input that affects the engine's output.
func requestKey(in GenerateInput) string {
	target := "-"
	if in.TargetFormality != nil {
		target = strconv.Itoa(*in.TargetFormality)
	}
	d := xxhash.New()
	_, _ = d.WriteString(in.Occasion)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(target)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strings.Join(domain.SortedIDs(in.RequiredIDs), "\x00"))
	return strconv.FormatUint(d.Sum64(), 16)
}

// ValidateOutfit checks that ids name at least three of the owner's garments and that every pair
// of them is linked. A failed clique check returns *domain.InvalidOutfitError.
func (s *WardrobeService) ValidateOutfit(ctx context.Context, ownerID string, ids []string) error {
	_, err := s.checkOutfit(ctx, ownerID, ids)
	return err
}

// SaveOutfit validates the set like ValidateOutfit and stores it with its ids sorted.
func (s *WardrobeService) SaveOutfit(ctx context.Context, ownerID string, in SaveInput) (*domain.Outfit, error) {
	ids, err := s.checkOutfit(ctx, ownerID, in.GarmentIDs)
	if err != nil {
		return nil, err
	}

	o := &domain.Outfit{
		OwnerID:     ownerID,
		GarmentIDs:  ids,
		Occasion:    in.Occasion,
		Description: in.Description,
		Model:       in.Model,
	}
	if err := s.outfits.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *WardrobeService) checkOutfit(ctx context.Context, ownerID string, ids []string) ([]string, error) {
	ids = domain.SortedIDs(ids)
	if len(ids) < minOutfitSize {
		return nil, domain.ErrOutfitTooSmall
	}
	if err := s.ensureGarments(ctx, ownerID, ids); err != nil {
		return nil, err
	}

	links, err := s.links.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	g := engine.BuildGraph(links)

	valid := engine.IsClique(ids, g)
	s.metrics.RecordValidation(valid)
	if !valid {
		a, b, _ := g.MissingEdge(ids)
		return nil, &domain.InvalidOutfitError{GarmentIDs: ids, MissingA: a, MissingB: b}
	}
	return ids, nil
}

func (s *WardrobeService) ListOutfits(ctx context.Context, ownerID string) ([]domain.Outfit, error) {
	return s.outfits.List(ctx, ownerID)
}

func (s *WardrobeService) DeleteOutfit(ctx context.Context, ownerID, id string) error {
	return s.outfits.Delete(ctx, ownerID, id)
}
