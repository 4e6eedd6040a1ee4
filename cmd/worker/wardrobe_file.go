package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

// wardrobeFile is the offline wardrobe format:
//
//	garments:
//	  - {id: t1, name: Tee, category: top, formality: 2}
//	links:
//	  - {a: t1, b: j1, strength: strong}
type wardrobeFile struct {
	Garments []domain.Garment `yaml:"garments"`
	Links    []domain.Link    `yaml:"links"`
}

func loadWardrobeFile(path string) (*wardrobeFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	wf, err := parseWardrobe(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wf, nil
}

func parseWardrobe(b []byte) (*wardrobeFile, error) {
	var wf wardrobeFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	ids := make(map[string]struct{}, len(wf.Garments))
	for i := range wf.Garments {
		g := &wf.Garments[i]
		if g.ID == "" {
			return nil, fmt.Errorf("garment #%d: id is required", i+1)
		}
		if _, dup := ids[g.ID]; dup {
			return nil, fmt.Errorf("garment %q: duplicate id", g.ID)
		}
		ids[g.ID] = struct{}{}

		c, ok := domain.ParseCategory(string(g.Category))
		if !ok {
			return nil, fmt.Errorf("garment %q: unknown category %q", g.ID, g.Category)
		}
		g.Category = c
		if g.Formality < 1 || g.Formality > 5 {
			return nil, fmt.Errorf("garment %q: formality must be between 1 and 5", g.ID)
		}
		if g.Name == "" {
			g.Name = g.ID
		}
	}

	for i := range wf.Links {
		l := &wf.Links[i]
		if l.GarmentAID == l.GarmentBID {
			return nil, fmt.Errorf("link #%d: %w", i+1, domain.ErrSelfLink)
		}
		for _, end := range []string{l.GarmentAID, l.GarmentBID} {
			if _, ok := ids[end]; !ok {
				return nil, fmt.Errorf("link #%d: unknown garment %q", i+1, end)
			}
		}
		if l.Strength == "" {
			l.Strength = domain.StrengthOK
		}
		*l = l.Canonical()
	}
	return &wf, nil
}
