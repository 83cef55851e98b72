package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeByName(t *testing.T) {
	assert.True(t, ThemeByName("dark").IsDark)
	assert.False(t, ThemeByName("light").IsDark)
}

func TestDetectTheme_ColorFgBg(t *testing.T) {
	t.Setenv("TANYAJAKSA_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark, "low background index means dark terminal")

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)
}

func TestDetectTheme_EnvOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("TANYAJAKSA_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)
}

func TestRenderDivider_ClampsWidth(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.NotEmpty(t, s.RenderDivider(0))
	assert.NotEmpty(t, s.RenderDivider(-3))
}
