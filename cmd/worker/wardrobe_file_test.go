package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

const sampleWardrobe = `
garments:
  - {id: t1, name: Tee, category: top, formality: 2}
  - {id: j1, name: Jeans, category: bottom, formality: 2}
  - {id: s1, name: Sneakers, category: footwear, formality: 1}
  - {id: w1, name: Watch, category: accessory, formality: 3}
links:
  - {a: t1, b: j1, strength: strong}
  - {a: t1, b: s1}
  - {a: s1, b: j1}
`

func TestParseWardrobe(t *testing.T) {
	wf, err := parseWardrobe([]byte(sampleWardrobe))
	require.NoError(t, err)

	require.Len(t, wf.Garments, 4)
	assert.Equal(t, domain.CategoryFootwear, wf.Garments[2].Category)

	require.Len(t, wf.Links, 3)
	assert.Equal(t, domain.StrengthStrong, wf.Links[0].Strength)
	assert.Equal(t, domain.StrengthOK, wf.Links[1].Strength)
	assert.Equal(t, "j1", wf.Links[2].GarmentAID, "endpoints are stored in canonical order")
	assert.Equal(t, "s1", wf.Links[2].GarmentBID)
}

func TestParseWardrobe_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown category", "garments: [{id: h, category: hat, formality: 2}]", `unknown category "hat"`},
		{"formality range", "garments: [{id: t, category: top, formality: 7}]", "formality must be between 1 and 5"},
		{"duplicate id", "garments: [{id: t, category: top, formality: 2}, {id: t, category: top, formality: 2}]", "duplicate id"},
		{"missing id", "garments: [{category: top, formality: 2}]", "id is required"},
		{"dangling link", "garments: [{id: t, category: top, formality: 2}]\nlinks: [{a: t, b: x}]", `unknown garment "x"`},
		{"self link", "garments: [{id: t, category: top, formality: 2}]\nlinks: [{a: t, b: t}]", "linked to itself"},
		{"unknown field", "garments: [{id: t, category: top, formality: 2, colour: red}]", "colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWardrobe([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseWardrobe_Empty(t *testing.T) {
	wf, err := parseWardrobe(nil)
	require.NoError(t, err)
	assert.Empty(t, wf.Garments)
}

func TestRunGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleWardrobe), 0o600))

	var buf bytes.Buffer
	err := runGenerate(&buf, generateOptions{file: path, occasion: "casual", cap: 12})
	require.NoError(t, err)

	var out struct {
		Outfits []struct {
			GarmentIDs  []string `json:"garment_ids"`
			Description string   `json:"description"`
		} `json:"outfits"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Outfits, 1, "the watch has no links so only the base triangle qualifies")
	assert.ElementsMatch(t, []string{"t1", "j1", "s1"}, out.Outfits[0].GarmentIDs)
	assert.Equal(t, "Tee + Jeans + Sneakers · Ocasión: casual", out.Outfits[0].Description)
}

func TestRunGenerate_BadInput(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, runGenerate(&buf, generateOptions{file: filepath.Join(t.TempDir(), "missing.yaml"), occasion: "x"}))
	assert.Error(t, runGenerate(&buf, generateOptions{file: "unused", occasion: "x", formality: 9}))
}
