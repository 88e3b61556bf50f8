package render

import (
	"github.com/yourorg/transitcat/internal/svgdoc"
)

func drawBusLines(doc *svgdoc.Document, ctx *context) {
	for _, span := range ctx.busSpans() {
		bus := ctx.cat.Buses[span.busName]
		stops := bus.Stops[span.startIdx : span.finishIdx+1]
		points := make([]svgdoc.Point, 0, len(stops))
		for _, name := range stops {
			points = append(points, point(ctx.lay.Stops[name]))
		}
		doc.Add(svgdoc.Polyline{Points: points, Stroke: ctx.busColor[span.busName], Width: ctx.settings.LineWidth})
	}
}

func drawBusLabels(doc *svgdoc.Document, ctx *context) {
	for _, span := range ctx.busSpans() {
		bus := ctx.cat.Buses[span.busName]
		for _, ep := range bus.Endpoints {
			if !stopWithinSpan(bus.Stops, span, ep) {
				continue
			}
			addLabel(doc, point(ctx.lay.Stops[ep]), span.busName,
				ctx.settings.BusLabelOffset, ctx.settings.BusLabelFontSize, true,
				ctx.busColor[span.busName], toSVGColor(ctx.settings.UnderlayerColor), ctx.settings.UnderlayerWidth)
		}
	}
}

func drawStopPoints(doc *svgdoc.Document, ctx *context) {
	for _, name := range ctx.stopNames() {
		doc.Add(svgdoc.Circle{Center: point(ctx.lay.Stops[name]), Radius: ctx.settings.StopRadius, Fill: svgdoc.Color{Name: "white"}})
	}
}

func drawStopLabels(doc *svgdoc.Document, ctx *context) {
	for _, name := range ctx.stopLabelNames() {
		addLabel(doc, point(ctx.lay.Stops[name]), name,
			ctx.settings.StopLabelOffset, ctx.settings.StopLabelFontSize, false,
			svgdoc.Color{Name: "black"}, toSVGColor(ctx.settings.UnderlayerColor), ctx.settings.UnderlayerWidth)
	}
}

func drawCompanyLines(doc *svgdoc.Document, ctx *context) {
	if ctx.restrict != nil {
		return
	}
	for idx, co := range ctx.companies {
		for _, nb := range co.Nearby {
			doc.Add(svgdoc.Polyline{
				Points: []svgdoc.Point{point(ctx.lay.Stops[nb.Name]), point(ctx.lay.Companies[idx])},
				Stroke: svgdoc.Color{Name: "black"},
				Width:  ctx.settings.CompanyLineWidth,
			})
		}
	}
}

func drawCompanyPoints(doc *svgdoc.Document, ctx *context) {
	if ctx.restrict != nil {
		return
	}
	for idx := range ctx.companies {
		doc.Add(svgdoc.Circle{Center: point(ctx.lay.Companies[idx]), Radius: ctx.settings.CompanyRadius, Fill: svgdoc.Color{Name: "black"}})
	}
}

func drawCompanyLabels(doc *svgdoc.Document, ctx *context) {
	if ctx.restrict != nil {
		return
	}
	for idx, co := range ctx.companies {
		addLabel(doc, point(ctx.lay.Companies[idx]), companyLabel(ctx.rubrics, co),
			ctx.settings.StopLabelOffset, ctx.settings.StopLabelFontSize, false,
			svgdoc.Color{Name: "black"}, toSVGColor(ctx.settings.UnderlayerColor), ctx.settings.UnderlayerWidth)
	}
}

func addLabel(doc *svgdoc.Document, p svgdoc.Point, value string, offset [2]float64, size int, bold bool, fill, underlayer svgdoc.Color, underlayerWidth float64) {
	off := svgdoc.Point{X: offset[0], Y: offset[1]}
	doc.Add(svgdoc.Text{Position: p, Offset: off, Value: value, Size: size, Bold: bold, Fill: underlayer, Stroke: underlayer, StrokeWidth: underlayerWidth, HasStroke: true})
	doc.Add(svgdoc.Text{Position: p, Offset: off, Value: value, Size: size, Bold: bold, Fill: fill})
}
