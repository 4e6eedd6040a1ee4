package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

// GarmentPatch carries the fields of a partial update. Nil fields are left untouched.
type GarmentPatch struct {
	Name            *string
	Category        *domain.Category
	MainColor       *string
	SecondaryColors *[]string
	Formality       *int
	StyleTags       *[]string
	Fit             *domain.Fit
	Warmth          *int
	Pattern         *domain.Pattern
	Fabric          *string
	SeasonTags      *[]string
	Notes           *string
}

func (p GarmentPatch) apply(g *domain.Garment) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.MainColor != nil {
		g.MainColor = *p.MainColor
	}
	if p.SecondaryColors != nil {
		g.SecondaryColors = *p.SecondaryColors
	}
	if p.Formality != nil {
		g.Formality = *p.Formality
	}
	if p.StyleTags != nil {
		g.StyleTags = *p.StyleTags
	}
	if p.Fit != nil {
		fit := *p.Fit
		g.Fit = &fit
	}
	if p.Warmth != nil {
		g.Warmth = *p.Warmth
	}
	if p.Pattern != nil {
		g.Pattern = *p.Pattern
	}
	if p.Fabric != nil {
		g.Fabric = *p.Fabric
	}
	if p.SeasonTags != nil {
		g.SeasonTags = *p.SeasonTags
	}
	if p.Notes != nil {
		notes := *p.Notes
		g.Notes = &notes
	}
}

func (s *WardrobeService) ListGarments(ctx context.Context, ownerID string) ([]domain.Garment, error) {
	return s.garments.List(ctx, ownerID)
}

func (s *WardrobeService) CreateGarment(ctx context.Context, ownerID string, g *domain.Garment) (*domain.Garment, error) {
	g.ID = ""
	g.OwnerID = ownerID
	if err := s.garments.Create(ctx, g); err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return g, nil
}

func (s *WardrobeService) UpdateGarment(ctx context.Context, ownerID, id string, patch GarmentPatch) (*domain.Garment, error) {
	g, err := s.garments.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	patch.apply(g)
	if err := s.garments.Update(ctx, g); err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return g, nil
}

// DeleteGarment removes the garment and its links. Saved outfits that used it are left for the
// audit to mark stale.
func (s *WardrobeService) DeleteGarment(ctx context.Context, ownerID, id string) error {
	if err := s.garments.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

// ImageUpload is a garment photo received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadGarmentImage stores the photo under garments/<owner>/<garment>/<uuid><ext> and points
// the garment's image_url at it.
func (s *WardrobeService) UploadGarmentImage(ctx context.Context, ownerID, id string, img ImageUpload) (*domain.Garment, error) {
	if s.images == nil {
		return nil, domain.ErrImagesDisabled
	}
	g, err := s.garments.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	key := imageKey(ownerID, id, img.Filename)
	url, err := s.images.Put(ctx, key, img.ContentType, img.Body, img.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store garment image: %w", err)
	}

	g.ImageURL = &url
	if err := s.garments.Update(ctx, g); err != nil {
		return nil, err
	}

	s.logger.Info("garment image stored",
		zap.String("owner_id", ownerID),
		zap.String("garment_id", id),
		zap.String("key", key),
		zap.Int64("size", img.Size),
	)
	return g, nil
}

func imageKey(ownerID, garmentID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("garments/%s/%s/%s%s", ownerID, garmentID, uuid.NewString(), ext)
}
