package layout

import (
	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/model"
)

// Layout is the finished grid-cell assignment: a screen coordinate for
// every stop and every company.
type Layout struct {
	Stops     map[string]Point2D
	Companies map[int]Point2D
}

// Build runs the full coordinate-compressor pipeline:
// control-stop identification, control-anchor interpolation, neighbor
// relation construction, then two passes of axis compression.
func Build(cat *catalog.Catalog, companies []model.Company, settings model.RenderSettings) *Layout {
	control := controlStops(cat)
	recomputed := recomputeCoordinates(cat, control)
	neighbors := buildNeighbors(cat, companies)

	lonEntries := make([]axisEntry, 0, len(cat.Stops)+len(companies))
	latEntries := make([]axisEntry, 0, len(cat.Stops)+len(companies))

	// sorted stop order keeps the stable sort below deterministic for
	// places sharing a coordinate value
	for _, name := range cat.SortedStopNames() {
		p := recomputed[name]
		lonEntries = append(lonEntries, axisEntry{place: stopPlace(name), value: p.Lon})
		latEntries = append(latEntries, axisEntry{place: stopPlace(name), value: p.Lat})
	}
	for idx, co := range companies {
		lonEntries = append(lonEntries, axisEntry{place: companyPlace(idx), value: co.Address.Lon})
		latEntries = append(latEntries, axisEntry{place: companyPlace(idx), value: co.Address.Lat})
	}

	xIdx, maxX := compressAxis(lonEntries, neighbors)
	yIdx, maxY := compressAxis(latEntries, neighbors)

	xStep := 0.0
	if maxX > 0 {
		xStep = (settings.Width - 2*settings.Padding) / float64(maxX)
	}
	yStep := 0.0
	if maxY > 0 {
		yStep = (settings.Height - 2*settings.Padding) / float64(maxY)
	}

	out := &Layout{
		Stops:     make(map[string]Point2D, len(cat.Stops)),
		Companies: make(map[int]Point2D, len(companies)),
	}
	screen := func(xi, yi int) Point2D {
		return Point2D{
			X: float64(xi)*xStep + settings.Padding,
			Y: settings.Height - settings.Padding - float64(yi)*yStep,
		}
	}

	for name := range cat.Stops {
		out.Stops[name] = screen(xIdx[stopPlace(name)], yIdx[stopPlace(name)])
	}
	for idx := range companies {
		out.Companies[idx] = screen(xIdx[companyPlace(idx)], yIdx[companyPlace(idx)])
	}

	return out
}
