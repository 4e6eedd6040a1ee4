package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrGarmentNotFound = errors.New("garment not found")
	ErrLinkNotFound    = errors.New("link not found")
	ErrOutfitNotFound  = errors.New("outfit not found")
	ErrLinkExists      = errors.New("a link between those garments already exists")
	ErrSelfLink        = errors.New("a garment cannot be linked to itself")
	ErrUnknownGarment  = errors.New("some garment does not exist")
	ErrImagesDisabled  = errors.New("image storage is not configured")
	ErrOutfitTooSmall  = errors.New("an outfit needs at least three distinct garments")
)

// InvalidOutfitError reports a garment set that is not a clique in the compatibility graph.
type InvalidOutfitError struct {
	GarmentIDs []string
	// MissingA and MissingB are the first pair found without a link.
	MissingA string
	MissingB string
}

func (e *InvalidOutfitError) Error() string {
	if e.MissingA == "" {
		return fmt.Sprintf("outfit [%s] is not a complete clique", strings.Join(e.GarmentIDs, ", "))
	}
	return fmt.Sprintf("outfit [%s] is not a complete clique: %s and %s are not linked",
		strings.Join(e.GarmentIDs, ", "), e.MissingA, e.MissingB)
}

func IsInvalidOutfit(err error) bool {
	var target *InvalidOutfitError
	return errors.As(err, &target)
}
