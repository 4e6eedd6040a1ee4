package engine

import (
	"strings"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

// Describe renders a one-line summary, e.g.
// "Tee + Jeans + Boots + Jacket · Accesorios: Watch, Belt · Ocasión: office".
// The first garment of each structural category is used; output depends only on input order.
func Describe(garments []domain.Garment, occasion string) string {
	var top, bottom, shoes, outer *domain.Garment
	var accessories []string

	for i := range garments {
		g := &garments[i]
		switch g.Category {
		case domain.CategoryTop:
			if top == nil {
				top = g
			}
		case domain.CategoryBottom:
			if bottom == nil {
				bottom = g
			}
		case domain.CategoryFootwear:
			if shoes == nil {
				shoes = g
			}
		case domain.CategoryOuterwear:
			if outer == nil {
				outer = g
			}
		case domain.CategoryAccessory:
			accessories = append(accessories, g.Name)
		}
	}

	parts := make([]string, 0, 3)
	if top != nil && bottom != nil && shoes != nil {
		base := top.Name + " + " + bottom.Name + " + " + shoes.Name
		if outer != nil {
			base += " + " + outer.Name
		}
		parts = append(parts, base)
	}
	if len(accessories) > 0 {
		parts = append(parts, "Accesorios: "+strings.Join(accessories, ", "))
	}
	parts = append(parts, "Ocasión: "+occasion)
	return strings.Join(parts, " · ")
}
