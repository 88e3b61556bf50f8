// Package render builds the base map SVG document and route overlays
// over it, dispatching on settings.Layers.
package render

import (
	"fmt"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/layout"
	"github.com/yourorg/transitcat/internal/model"
	"github.com/yourorg/transitcat/internal/svgdoc"
)

// context bundles everything a layer handler needs to draw either the
// full base map or a route-restricted subset of it.
type context struct {
	cat       *catalog.Catalog
	companies []model.Company
	rubrics   model.RubricDict
	lay       *layout.Layout
	settings  model.RenderSettings
	busColor  map[string]svgdoc.Color

	// restriction, nil for the base map
	restrict *restriction
}

// restriction narrows a layer handler to the stops/spans touched by one
// route.
type restriction struct {
	spans     []busSpan
	startStop string   // first item's stop, for stop_labels
	endStops  []string // final stop of every bus item, for stop_labels
}

type busSpan struct {
	busName             string
	startIdx, finishIdx int
}

// layerHandler draws one named layer's primitives into doc.
type layerHandler func(doc *svgdoc.Document, ctx *context)

var layerHandlers = map[string]layerHandler{
	model.LayerBusLines:      drawBusLines,
	model.LayerBusLabels:     drawBusLabels,
	model.LayerStopPoints:    drawStopPoints,
	model.LayerStopLabels:    drawStopLabels,
	model.LayerCompanyLines:  drawCompanyLines,
	model.LayerCompanyPoints: drawCompanyPoints,
	model.LayerCompanyLabels: drawCompanyLabels,
}

// BuildBaseMap constructs the full base map once, iterating
// settings.Layers in order.
func BuildBaseMap(cat *catalog.Catalog, companies []model.Company, rubrics model.RubricDict, lay *layout.Layout, settings model.RenderSettings) *svgdoc.Document {
	ctx := &context{
		cat:       cat,
		companies: companies,
		rubrics:   rubrics,
		lay:       lay,
		settings:  settings,
		busColor:  busColors(cat.SortedBusNames(), settings.ColorPalette),
	}

	doc := svgdoc.NewDocument(settings.Width, settings.Height)
	for _, name := range settings.Layers {
		if handler, ok := layerHandlers[name]; ok {
			handler(doc, ctx)
		}
	}
	return doc
}

func companyLabel(rubrics model.RubricDict, co model.Company) string {
	if len(co.RubricIDs) == 0 {
		return co.MainName()
	}
	rubric := rubrics[co.RubricIDs[0]]
	if rubric == "" {
		return co.MainName()
	}
	return fmt.Sprintf("%s %s", rubric, co.MainName())
}

func point(p layout.Point2D) svgdoc.Point {
	return svgdoc.Point{X: p.X, Y: p.Y}
}
