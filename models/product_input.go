package models

// Tone is the desired voice of the generated copy.
type Tone string

// Supported tones, as offered by the project form.
const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneBold         Tone = "Bold"
	ToneLuxury       Tone = "Luxury"
	ToneMinimalist   Tone = "Minimalist"
)

// Tones lists every supported tone in form order.
var Tones = []Tone{ToneProfessional, ToneFriendly, ToneBold, ToneLuxury, ToneMinimalist}

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneBold, ToneLuxury, ToneMinimalist:
		return true
	}
	return false
}

// ColorTheme is the named palette applied by the page preview.
// The stores treat it as an opaque label; only the fixed set is accepted.
type ColorTheme string

// Supported color themes.
const (
	ThemeIndigo  ColorTheme = "indigo"
	ThemeBlue    ColorTheme = "blue"
	ThemeEmerald ColorTheme = "emerald"
	ThemeRose    ColorTheme = "rose"
	ThemeAmber   ColorTheme = "amber"
	ThemeViolet  ColorTheme = "violet"
)

// ColorThemes lists every supported theme in form order.
var ColorThemes = []ColorTheme{ThemeIndigo, ThemeBlue, ThemeEmerald, ThemeRose, ThemeAmber, ThemeViolet}

// Valid reports whether c is one of the supported themes.
func (c ColorTheme) Valid() bool {
	switch c {
	case ThemeIndigo, ThemeBlue, ThemeEmerald, ThemeRose, ThemeAmber, ThemeViolet:
		return true
	}
	return false
}

// ProductInput is the short form a user fills before generation.
// It is stored with the project so that regeneration reuses the same brief.
type ProductInput struct {
	// Name is the product name. Required before generation.
	Name string `json:"name"`

	// Audience describes who the product is for. Required before generation.
	Audience string `json:"audience"`

	// Problem describes the pain the product solves. Required before generation.
	Problem string `json:"problem"`

	// Features is a free-form list of key features or benefits.
	Features string `json:"features"`

	// Tone selects the voice of the generated copy.
	Tone Tone `json:"tone"`

	// ColorTheme selects the preview palette. Not used by generation.
	ColorTheme ColorTheme `json:"colorTheme"`
}
