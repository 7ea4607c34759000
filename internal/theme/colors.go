package theme

import (
	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

type BorderRadius string

const (
	RadiusNone BorderRadius = "none"
	RadiusSm   BorderRadius = "sm"
	RadiusMd   BorderRadius = "md"
	RadiusLg   BorderRadius = "lg"
	RadiusFull BorderRadius = "full"
)

type ButtonStyle string

const (
	ButtonSolid   ButtonStyle = "solid"
	ButtonOutline ButtonStyle = "outline"
)

// Colors is the flat style configuration every theme receives. Option fields
// only ever hold values from the recognized sets; normalization happens in
// ColorsFromConfig, so themes never branch on unknown values.
type Colors struct {
	Primary      string       `json:"primary"`
	Secondary    string       `json:"secondary"`
	Accent       string       `json:"accent"`
	Background   string       `json:"background"`
	Text         string       `json:"text"`
	FontFamily   string       `json:"fontFamily"`
	BorderRadius BorderRadius `json:"borderRadius"`
	ButtonStyle  ButtonStyle  `json:"buttonStyle"`
}

func DefaultColors() Colors {
	return Colors{
		Primary:      "#1f2937",
		Secondary:    "#6b7280",
		Accent:       "#d4a373",
		Background:   "#ffffff",
		Text:         "#111827",
		FontFamily:   "system-ui, sans-serif",
		BorderRadius: RadiusMd,
		ButtonStyle:  ButtonSolid,
	}
}

// ColorsFromConfig normalizes a merchant's raw theme configuration: empty
// colors fall back to defaults and unrecognized option values are clamped.
func ColorsFromConfig(cfg catalog.ThemeConfig) Colors {
	c := DefaultColors()

	if cfg.Primary != "" {
		c.Primary = cfg.Primary
	}
	if cfg.Secondary != "" {
		c.Secondary = cfg.Secondary
	}
	if cfg.Accent != "" {
		c.Accent = cfg.Accent
	}
	if cfg.Background != "" {
		c.Background = cfg.Background
	}
	if cfg.Text != "" {
		c.Text = cfg.Text
	}
	if cfg.FontFamily != "" {
		c.FontFamily = cfg.FontFamily
	}

	switch BorderRadius(cfg.BorderRadius) {
	case RadiusNone, RadiusSm, RadiusMd, RadiusLg, RadiusFull:
		c.BorderRadius = BorderRadius(cfg.BorderRadius)
	}
	switch ButtonStyle(cfg.ButtonStyle) {
	case ButtonSolid, ButtonOutline:
		c.ButtonStyle = ButtonStyle(cfg.ButtonStyle)
	}

	return c
}

// RadiusClass maps the border radius option to its utility class.
func (c Colors) RadiusClass() string {
	return "rounded-" + string(c.BorderRadius)
}

// ButtonClass maps the button style option to its utility class.
func (c Colors) ButtonClass() string {
	return "btn-" + string(c.ButtonStyle)
}
