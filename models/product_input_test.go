package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTone_Valid(t *testing.T) {
	for _, tone := range Tones {
		assert.True(t, tone.Valid(), "tone %q should be valid", tone)
	}

	assert.False(t, Tone("").Valid())
	assert.False(t, Tone("professional").Valid(), "tones are case-sensitive")
	assert.False(t, Tone("Sarcastic").Valid())
}

func TestColorTheme_Valid(t *testing.T) {
	for _, theme := range ColorThemes {
		assert.True(t, theme.Valid(), "theme %q should be valid", theme)
	}

	assert.False(t, ColorTheme("").Valid())
	assert.False(t, ColorTheme("Indigo").Valid(), "themes are case-sensitive")
	assert.False(t, ColorTheme("teal").Valid())
}
