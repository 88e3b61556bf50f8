package render

import (
	"github.com/yourorg/transitcat/internal/model"
	"github.com/yourorg/transitcat/internal/svgdoc"
)

func toSVGColor(c model.Color) svgdoc.Color {
	if c.Name != "" {
		return svgdoc.Color{Name: c.Name}
	}
	return svgdoc.Color{R: c.RGB[0], G: c.RGB[1], B: c.RGB[2], A: c.Alpha, HasAlpha: c.HasA}
}

// busColors assigns every bus a color by iteration order of the bus
// dictionary, cycling the palette by index modulo palette size.
func busColors(busNames []string, palette []model.Color) map[string]svgdoc.Color {
	colors := make(map[string]svgdoc.Color, len(busNames))
	if len(palette) == 0 {
		return colors
	}
	for i, name := range busNames {
		colors[name] = toSVGColor(palette[i%len(palette)])
	}
	return colors
}
