package domain

import "strings"

type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryFootwear  Category = "shoes"
	CategoryOuterwear Category = "outerwear"
	CategoryAccessory Category = "accessory"
)

// Categories lists every category in partition order.
var Categories = []Category{
	CategoryTop,
	CategoryBottom,
	CategoryFootwear,
	CategoryOuterwear,
	CategoryAccessory,
}

// ParseCategory normalises user input. "footwear" is accepted as an alias of "shoes".
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return CategoryTop, true
	case "bottom":
		return CategoryBottom, true
	case "shoes", "footwear":
		return CategoryFootwear, true
	case "outerwear":
		return CategoryOuterwear, true
	case "accessory":
		return CategoryAccessory, true
	default:
		return "", false
	}
}

type Strength string

const (
	StrengthStrong Strength = "strong"
	StrengthOK     Strength = "ok"
	StrengthWeak   Strength = "weak"
)

type Fit string

const (
	FitSlim      Fit = "slim"
	FitRegular   Fit = "regular"
	FitOversized Fit = "oversized"
	FitWide      Fit = "wide"
)

type Pattern string

const (
	PatternSolid     Pattern = "solid"
	PatternStriped   Pattern = "striped"
	PatternCheckered Pattern = "checkered"
	PatternGraphic   Pattern = "graphic"
	PatternOther     Pattern = "other"
)

const (
	MinFormality = 1
	MaxFormality = 5
)
