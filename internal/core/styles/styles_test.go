package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, ThemeNames())
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.NotNil(t, p.Primary)

	_, ok = GetPalette("solarized")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, _ := GetPalette("gruvbox")
	SetTheme(p)

	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p.Error, ColorError)
	assert.Equal(t, p, CurrentPalette)
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()

	require.NotNil(t, cfg.Document.Color)
	require.NotNil(t, cfg.H1.Color)
	assert.Equal(t, "#7aa2f7", *cfg.H1.Color)
	require.NotNil(t, cfg.Document.Margin)
	assert.Zero(t, *cfg.Document.Margin)
}
