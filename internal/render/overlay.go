package render

import (
	"fmt"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/depot"
	"github.com/yourorg/transitcat/internal/layout"
	"github.com/yourorg/transitcat/internal/model"
	"github.com/yourorg/transitcat/internal/router"
	"github.com/yourorg/transitcat/internal/svgdoc"
)

// BuildRouteOverlay clones the base map, paints a full-canvas backdrop,
// then re-executes every layer restricted to the given route's items,
// finally drawing the company walk extension if present.
func BuildRouteOverlay(base *svgdoc.Document, cat *catalog.Catalog, companies []model.Company, rubrics model.RubricDict, lay *layout.Layout, settings model.RenderSettings, items []router.Item, walk *depot.WalkToCompanyItem) *svgdoc.Document {
	doc := base.Clone()

	m := settings.OuterMargin
	doc.Add(svgdoc.Rectangle{
		X: -m, Y: -m,
		Width:  settings.Width + 2*m,
		Height: settings.Height + 2*m,
		Fill:   toSVGColor(settings.UnderlayerColor),
	})

	restrict := buildRestriction(cat, items)
	ctx := &context{
		cat:       cat,
		companies: companies,
		rubrics:   rubrics,
		lay:       lay,
		settings:  settings,
		busColor:  busColors(cat.SortedBusNames(), settings.ColorPalette),
		restrict:  restrict,
	}

	for _, name := range settings.Layers {
		if handler, ok := layerHandlers[name]; ok {
			handler(doc, ctx)
		}
	}

	if walk != nil {
		drawCompanyWalk(doc, ctx, walk.StopFrom, walk.CompanyIndex, walk.Rubric, walk.CompanyName)
	}

	return doc
}

// buildRestriction narrows drawing to one route's items: the start
// stop of the first item, every bus span, and the final stop of every
// bus item.
func buildRestriction(cat *catalog.Catalog, items []router.Item) *restriction {
	r := &restriction{}
	first := true
	for _, it := range items {
		switch v := it.(type) {
		case router.WaitItem:
			if first {
				r.startStop = v.StopName
				first = false
			}
		case router.BusItem:
			r.spans = append(r.spans, busSpan{busName: v.BusName, startIdx: v.StartStopIdx, finishIdx: v.FinishStopIdx})
			bus := cat.Buses[v.BusName]
			r.endStops = append(r.endStops, bus.Stops[v.FinishStopIdx])
		}
	}
	return r
}

func drawCompanyWalk(doc *svgdoc.Document, ctx *context, stopFrom string, companyIdx int, rubric, companyName string) {
	from := point(ctx.lay.Stops[stopFrom])
	to := point(ctx.lay.Companies[companyIdx])

	doc.Add(svgdoc.Polyline{Points: []svgdoc.Point{from, to}, Stroke: svgdoc.Color{Name: "black"}, Width: ctx.settings.CompanyLineWidth})
	doc.Add(svgdoc.Circle{Center: to, Radius: ctx.settings.CompanyRadius, Fill: svgdoc.Color{Name: "black"}})

	label := companyName
	if rubric != "" {
		label = fmt.Sprintf("%s %s", rubric, companyName)
	}
	addLabel(doc, to, label, ctx.settings.StopLabelOffset, ctx.settings.StopLabelFontSize, false,
		svgdoc.Color{Name: "black"}, toSVGColor(ctx.settings.UnderlayerColor), ctx.settings.UnderlayerWidth)
}
