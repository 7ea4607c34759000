package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

func TestColorsFromConfig(t *testing.T) {
	tests := map[string]struct {
		cfg        catalog.ThemeConfig
		wantRadius BorderRadius
		wantButton ButtonStyle
	}{
		"empty config gets defaults": {
			cfg:        catalog.ThemeConfig{},
			wantRadius: RadiusMd,
			wantButton: ButtonSolid,
		},
		"recognized options kept": {
			cfg:        catalog.ThemeConfig{BorderRadius: "full", ButtonStyle: "outline"},
			wantRadius: RadiusFull,
			wantButton: ButtonOutline,
		},
		"unknown options clamped": {
			cfg:        catalog.ThemeConfig{BorderRadius: "xxl", ButtonStyle: "ghost"},
			wantRadius: RadiusMd,
			wantButton: ButtonSolid,
		},
		"none is a valid radius": {
			cfg:        catalog.ThemeConfig{BorderRadius: "none"},
			wantRadius: RadiusNone,
			wantButton: ButtonSolid,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := ColorsFromConfig(tc.cfg)
			assert.Equal(t, tc.wantRadius, c.BorderRadius)
			assert.Equal(t, tc.wantButton, c.ButtonStyle)
		})
	}
}

func TestColorsFromConfigKeepsCustomColors(t *testing.T) {
	c := ColorsFromConfig(catalog.ThemeConfig{Primary: "#112233", FontFamily: "Georgia, serif"})

	assert.Equal(t, "#112233", c.Primary)
	assert.Equal(t, "Georgia, serif", c.FontFamily)
	assert.Equal(t, DefaultColors().Background, c.Background)
}

func TestUtilityClasses(t *testing.T) {
	c := Colors{BorderRadius: RadiusLg, ButtonStyle: ButtonOutline}
	assert.Equal(t, "rounded-lg", c.RadiusClass())
	assert.Equal(t, "btn-outline", c.ButtonClass())
}
