package config

import (
	"fmt"

	"github.com/yourorg/transitcat/internal/model"
)

// RenderSettings mirrors model.RenderSettings' JSON shape.
type RenderSettings struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`

	StopRadius float64 `json:"stop_radius"`
	LineWidth  float64 `json:"line_width"`

	BusLabelFontSize int        `json:"bus_label_font_size"`
	BusLabelOffset   [2]float64 `json:"bus_label_offset"`

	StopLabelFontSize int        `json:"stop_label_font_size"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset"`

	UnderlayerColor Color   `json:"underlayer_color"`
	UnderlayerWidth float64 `json:"underlayer_width"`

	ColorPalette []Color `json:"color_palette"`

	Layers []string `json:"layers"`

	OuterMargin float64 `json:"outer_margin"`

	CompanyRadius    float64 `json:"company_radius"`
	CompanyLineWidth float64 `json:"company_line_width"`
}

// Build converts the decoded JSON settings into model.RenderSettings,
// validating the settings-level faults that are fatal at construction:
// non-positive canvas dimensions, and an empty palette while bus_lines
// is an active layer.
func (r RenderSettings) Build() (model.RenderSettings, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return model.RenderSettings{}, fmt.Errorf("config: render_settings width/height must be positive, got %gx%g", r.Width, r.Height)
	}

	palette := make([]model.Color, len(r.ColorPalette))
	for i, c := range r.ColorPalette {
		palette[i] = c.Color
	}
	if len(palette) == 0 {
		for _, layer := range r.Layers {
			if layer == model.LayerBusLines {
				return model.RenderSettings{}, fmt.Errorf("config: color_palette is empty but %q is an active layer", model.LayerBusLines)
			}
		}
	}

	return model.RenderSettings{
		Width:             r.Width,
		Height:            r.Height,
		Padding:           r.Padding,
		StopRadius:        r.StopRadius,
		LineWidth:         r.LineWidth,
		BusLabelFontSize:  r.BusLabelFontSize,
		BusLabelOffset:    r.BusLabelOffset,
		StopLabelFontSize: r.StopLabelFontSize,
		StopLabelOffset:   r.StopLabelOffset,
		UnderlayerColor:   r.UnderlayerColor.Color,
		UnderlayerWidth:   r.UnderlayerWidth,
		ColorPalette:      palette,
		Layers:            r.Layers,
		OuterMargin:       r.OuterMargin,
		CompanyRadius:     r.CompanyRadius,
		CompanyLineWidth:  r.CompanyLineWidth,
	}, nil
}
