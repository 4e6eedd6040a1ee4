package domain

import (
	"sort"
	"time"
)

// Garment is a single wardrobe item. Only Category and Formality matter to outfit generation;
// the rest is descriptive.
type Garment struct {
	ID              string    `json:"id" yaml:"id"`
	OwnerID         string    `json:"-" yaml:"-"`
	Name            string    `json:"name" yaml:"name"`
	Category        Category  `json:"category" yaml:"category"`
	MainColor       string    `json:"main_color" yaml:"main_color"`
	SecondaryColors []string  `json:"secondary_colors" yaml:"secondary_colors"`
	Formality       int       `json:"formality" yaml:"formality"`
	StyleTags       []string  `json:"style_tags" yaml:"style_tags"`
	Fit             *Fit      `json:"fit" yaml:"fit"`
	Warmth          int       `json:"warmth" yaml:"warmth"`
	Pattern         Pattern   `json:"pattern" yaml:"pattern"`
	Fabric          string    `json:"fabric" yaml:"fabric"`
	SeasonTags      []string  `json:"season_tags" yaml:"season_tags"`
	Notes           *string   `json:"notes" yaml:"notes"`
	ImageURL        *string   `json:"image_url" yaml:"image_url"`
	CreatedAt       time.Time `json:"created_at" yaml:"-"`
	UpdatedAt       time.Time `json:"updated_at" yaml:"-"`
}

// Link is an undirected compatibility edge between two garments.
type Link struct {
	ID          string    `json:"id" yaml:"id"`
	OwnerID     string    `json:"-" yaml:"-"`
	GarmentAID  string    `json:"garment_a_id" yaml:"a"`
	GarmentBID  string    `json:"garment_b_id" yaml:"b"`
	Strength    Strength  `json:"strength" yaml:"strength"`
	ContextTags []string  `json:"context_tags" yaml:"context_tags"`
	Notes       *string   `json:"notes" yaml:"notes"`
	CreatedAt   time.Time `json:"created_at" yaml:"-"`
}

// Canonical returns the link with its endpoints in lexicographic order, the form it is stored in.
func (l Link) Canonical() Link {
	if l.GarmentBID < l.GarmentAID {
		l.GarmentAID, l.GarmentBID = l.GarmentBID, l.GarmentAID
	}
	return l
}

// Outfit is a saved combination of garments.
type Outfit struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	GarmentIDs  []string  `json:"garment_ids"`
	Occasion    string    `json:"occasion"`
	Description string    `json:"description"`
	Model       *string   `json:"model,omitempty"`
	Stale       bool      `json:"stale"`
	CreatedAt   time.Time `json:"created_at"`
}

// SortedIDs returns a sorted copy of ids with duplicates removed.
func SortedIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
