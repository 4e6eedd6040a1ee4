package service

import (
	"context"
	"io"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/engine"
)

// GarmentStore is implemented by repository.GarmentRepository.
type GarmentStore interface {
	Create(ctx context.Context, g *domain.Garment) error
	Get(ctx context.Context, ownerID, id string) (*domain.Garment, error)
	List(ctx context.Context, ownerID string) ([]domain.Garment, error)
	ListByIDs(ctx context.Context, ownerID string, ids []string) ([]domain.Garment, error)
	Update(ctx context.Context, g *domain.Garment) error
	Delete(ctx context.Context, ownerID, id string) error
}

type LinkStore interface {
	Create(ctx context.Context, l *domain.Link) error
	List(ctx context.Context, ownerID string) ([]domain.Link, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type OutfitStore interface {
	Create(ctx context.Context, o *domain.Outfit) error
	List(ctx context.Context, ownerID string) ([]domain.Outfit, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// GenerationCache is implemented by repository.GenerationCache.
type GenerationCache interface {
	Revision(ctx context.Context, ownerID string) (int64, error)
	Get(ctx context.Context, ownerID string, rev int64, key string) ([]engine.Candidate, bool, error)
	Put(ctx context.Context, ownerID string, rev int64, key string, cands []engine.Candidate) error
	Invalidate(ctx context.Context, ownerID string) error
}

// ImageStore is implemented by images.S3Store.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
