package http

import (
	"context"

	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/engine"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/service"
)

// WardrobeService is implemented by service.WardrobeService.
type WardrobeService interface {
	ListGarments(ctx context.Context, ownerID string) ([]domain.Garment, error)
	CreateGarment(ctx context.Context, ownerID string, g *domain.Garment) (*domain.Garment, error)
	UpdateGarment(ctx context.Context, ownerID, id string, patch service.GarmentPatch) (*domain.Garment, error)
	DeleteGarment(ctx context.Context, ownerID, id string) error
	UploadGarmentImage(ctx context.Context, ownerID, id string, img service.ImageUpload) (*domain.Garment, error)

	ListLinks(ctx context.Context, ownerID string) ([]domain.Link, error)
	CreateLink(ctx context.Context, ownerID string, l *domain.Link) (*domain.Link, error)
	DeleteLink(ctx context.Context, ownerID, id string) error
	Graph(ctx context.Context, ownerID string) (*service.GraphView, error)

	GenerateOutfits(ctx context.Context, ownerID string, in service.GenerateInput) ([]engine.Candidate, error)
	SaveOutfit(ctx context.Context, ownerID string, in service.SaveInput) (*domain.Outfit, error)
	ValidateOutfit(ctx context.Context, ownerID string, ids []string) error
	ListOutfits(ctx context.Context, ownerID string) ([]domain.Outfit, error)
	DeleteOutfit(ctx context.Context, ownerID, id string) error
}

// Handler bundles the dependencies for wardrobe HTTP endpoints.
type Handler struct {
	svc     WardrobeService
	logger  *zap.Logger
	limiter *ownerLimiter
}

type Options struct {
	// GenerateRatePerMinute <= 0 disables rate limiting of outfit generation.
	GenerateRatePerMinute int
	GenerateBurst         int
	Logger                *zap.Logger
}

func New(svc WardrobeService, opt Options) *Handler {
	registerValidators()

	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		svc:     svc,
		logger:  logger,
		limiter: newOwnerLimiter(opt.GenerateRatePerMinute, opt.GenerateBurst),
	}
}
