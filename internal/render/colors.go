package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/repulse/schema"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// namedColors maps the color names used by chart declarations to hex.
var namedColors = map[string]string{
	"black": "000000",
	"white": "ffffff",
	"blue":  "0000ff",
	"cyan":  "00ffff",
	"green": "008000",
	"lime":  "00ff00",
	"gold":  "ffd700",
	"red":   "ff0000",
	"gray":  "808080",
}

// ParseColor accepts a color name or a "#rrggbb" / "#rgb" hex value.
func ParseColor(s string) (drawing.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		return drawing.ColorFromHex(hex), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 3 {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return drawing.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return drawing.ColorFromHex(hex), nil
}

// theme holds the frame colors of a display mode.
type theme struct {
	Background drawing.Color
	Foreground drawing.Color
	Grid       drawing.Color
}

func themeFor(mode schema.DisplayMode) theme {
	if mode == schema.DarkMode {
		return theme{
			Background: drawing.ColorBlack,
			Foreground: drawing.ColorWhite,
			Grid:       drawing.ColorWhite.WithAlpha(51),
		}
	}
	return theme{
		Background: drawing.ColorWhite,
		Foreground: drawing.ColorBlack,
		Grid:       drawing.ColorBlack.WithAlpha(51),
	}
}

// seriesColor resolves the chart color for a mode.
func seriesColor(spec schema.ChartSpec, mode schema.DisplayMode) (drawing.Color, error) {
	c, err := ParseColor(spec.ColorFor(mode))
	if err != nil {
		return drawing.Color{}, fmt.Errorf("chart %s: %w", spec.Name, err)
	}
	return c, nil
}
