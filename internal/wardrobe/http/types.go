package http

import (
	"strings"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/service"
)

type garmentReq struct {
	Name            string   `json:"name" binding:"required,notblank,min=2,max=120"`
	Category        string   `json:"category" binding:"required,category"`
	MainColor       string   `json:"main_color" binding:"required,notblank"`
	SecondaryColors []string `json:"secondary_colors"`
	Formality       int      `json:"formality" binding:"required,min=1,max=5"`
	StyleTags       []string `json:"style_tags"`
	Fit             *string  `json:"fit" binding:"omitempty,oneof=slim regular oversized wide"`
	Warmth          int      `json:"warmth" binding:"required,min=1,max=5"`
	Pattern         string   `json:"pattern" binding:"required,oneof=solid striped checkered graphic other"`
	Fabric          string   `json:"fabric" binding:"required,notblank"`
	SeasonTags      []string `json:"season_tags"`
	Notes           *string  `json:"notes" binding:"omitempty,max=1000"`
}

func (r garmentReq) toDomain() *domain.Garment {
	category, _ := domain.ParseCategory(r.Category)
	g := &domain.Garment{
		Name:            strings.TrimSpace(r.Name),
		Category:        category,
		MainColor:       strings.TrimSpace(r.MainColor),
		SecondaryColors: cleanTags(r.SecondaryColors),
		Formality:       r.Formality,
		StyleTags:       cleanTags(r.StyleTags),
		Warmth:          r.Warmth,
		Pattern:         domain.Pattern(r.Pattern),
		Fabric:          strings.TrimSpace(r.Fabric),
		SeasonTags:      cleanTags(r.SeasonTags),
		Notes:           cleanNotes(r.Notes),
	}
	if r.Fit != nil {
		fit := domain.Fit(*r.Fit)
		g.Fit = &fit
	}
	return g
}

type garmentPatchReq struct {
	Name            *string   `json:"name" binding:"omitempty,notblank,min=2,max=120"`
	Category        *string   `json:"category" binding:"omitempty,category"`
	MainColor       *string   `json:"main_color" binding:"omitempty,notblank"`
	SecondaryColors *[]string `json:"secondary_colors"`
	Formality       *int      `json:"formality" binding:"omitempty,min=1,max=5"`
	StyleTags       *[]string `json:"style_tags"`
	Fit             *string   `json:"fit" binding:"omitempty,oneof=slim regular oversized wide"`
	Warmth          *int      `json:"warmth" binding:"omitempty,min=1,max=5"`
	Pattern         *string   `json:"pattern" binding:"omitempty,oneof=solid striped checkered graphic other"`
	Fabric          *string   `json:"fabric" binding:"omitempty,notblank"`
	SeasonTags      *[]string `json:"season_tags"`
	Notes           *string   `json:"notes" binding:"omitempty,max=1000"`
}

func (r garmentPatchReq) toPatch() service.GarmentPatch {
	p := service.GarmentPatch{
		Name:      trimmed(r.Name),
		MainColor: trimmed(r.MainColor),
		Formality: r.Formality,
		Warmth:    r.Warmth,
		Fabric:    trimmed(r.Fabric),
		Notes:     trimmed(r.Notes),
	}
	if r.Category != nil {
		c, _ := domain.ParseCategory(*r.Category)
		p.Category = &c
	}
	if r.Fit != nil {
		f := domain.Fit(*r.Fit)
		p.Fit = &f
	}
	if r.Pattern != nil {
		pt := domain.Pattern(*r.Pattern)
		p.Pattern = &pt
	}
	p.SecondaryColors = cleanTagsPtr(r.SecondaryColors)
	p.StyleTags = cleanTagsPtr(r.StyleTags)
	p.SeasonTags = cleanTagsPtr(r.SeasonTags)
	return p
}

type linkReq struct {
	GarmentAID  string   `json:"garment_a_id" binding:"required"`
	GarmentBID  string   `json:"garment_b_id" binding:"required,nefield=GarmentAID"`
	Strength    string   `json:"strength" binding:"omitempty,oneof=strong ok weak"`
	ContextTags []string `json:"context_tags"`
	Notes       *string  `json:"notes" binding:"omitempty,max=1000"`
}

func (r linkReq) toDomain() *domain.Link {
	return &domain.Link{
		GarmentAID:  r.GarmentAID,
		GarmentBID:  r.GarmentBID,
		Strength:    domain.Strength(r.Strength),
		ContextTags: cleanTags(r.ContextTags),
		Notes:       cleanNotes(r.Notes),
	}
}

type generateReq struct {
	Occasion           string   `json:"occasion" binding:"required,notblank,min=2"`
	TargetFormality    *int     `json:"target_formality" binding:"omitempty,min=1,max=5"`
	Clima              *string  `json:"clima"`
	RequiredGarmentIDs []string `json:"required_garment_ids" binding:"omitempty,max=8,dive,required"`
}

func (r generateReq) toInput() service.GenerateInput {
	in := service.GenerateInput{
		Occasion:        strings.TrimSpace(r.Occasion),
		TargetFormality: r.TargetFormality,
		RequiredIDs:     r.RequiredGarmentIDs,
	}
	if r.Clima != nil {
		in.Clima = strings.TrimSpace(*r.Clima)
	}
	return in
}

type saveOutfitReq struct {
	GarmentIDs  []string `json:"garment_ids" binding:"required,min=3,dive,required"`
	Occasion    string   `json:"occasion" binding:"required,notblank,min=2"`
	Description string   `json:"description" binding:"required,notblank,min=3"`
	Model       *string  `json:"model" binding:"omitempty,max=120"`
}

type validateOutfitReq struct {
	GarmentIDs []string `json:"garment_ids" binding:"required,min=3,dive,required"`
}

// cleanTags trims every entry and drops the empty ones. The result is never nil.
func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cleanTagsPtr(in *[]string) *[]string {
	if in == nil {
		return nil
	}
	out := cleanTags(*in)
	return &out
}

// cleanNotes maps blank notes to nil.
func cleanNotes(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
