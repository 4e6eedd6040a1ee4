package service

import (
	"context"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

// GraphView is the owner's whole compatibility graph, for visualization.
type GraphView struct {
	Garments []domain.Garment `json:"garments"`
	Links    []domain.Link    `json:"links"`
}

func (s *WardrobeService) ListLinks(ctx context.Context, ownerID string) ([]domain.Link, error) {
	return s.links.List(ctx, ownerID)
}

// CreateLink links two of the owner's garments. The pair is stored in canonical order; linking
// an already linked pair in either order fails with domain.ErrLinkExists.
func (s *WardrobeService) CreateLink(ctx context.Context, ownerID string, l *domain.Link) (*domain.Link, error) {
	if l.GarmentAID == l.GarmentBID {
		return nil, domain.ErrSelfLink
	}
	if err := s.ensureGarments(ctx, ownerID, []string{l.GarmentAID, l.GarmentBID}); err != nil {
		return nil, err
	}

	l.ID = ""
	l.OwnerID = ownerID
	if l.Strength == "" {
		l.Strength = domain.StrengthOK
	}
	if err := s.links.Create(ctx, l); err != nil {
		return nil, err
	}
	s.invalidate(ctx, ownerID)
	return l, nil
}

func (s *WardrobeService) DeleteLink(ctx context.Context, ownerID, id string) error {
	if err := s.links.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.invalidate(ctx, ownerID)
	return nil
}

func (s *WardrobeService) Graph(ctx context.Context, ownerID string) (*GraphView, error) {
	garments, err := s.garments.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	links, err := s.links.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &GraphView{Garments: garments, Links: links}, nil
}

// ensureGarments fails with domain.ErrUnknownGarment unless every id is one of the owner's
// garments. ids must be free of duplicates.
func (s *WardrobeService) ensureGarments(ctx context.Context, ownerID string, ids []string) error {
	found, err := s.garments.ListByIDs(ctx, ownerID, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return domain.ErrUnknownGarment
	}
	return nil
}
