package snapshot

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/company"
	"github.com/yourorg/transitcat/internal/engine"
	"github.com/yourorg/transitcat/internal/layout"
	"github.com/yourorg/transitcat/internal/render"
	"github.com/yourorg/transitcat/internal/router"
)

// Read deserializes a gob-encoded Data from r.
func Read(r io.Reader) (Data, error) {
	var d Data
	if err := gob.NewDecoder(bufio.NewReader(r)).Decode(&d); err != nil {
		return Data{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	if d.FormatVersion != FormatVersion {
		return Data{}, fmt.Errorf("snapshot: format version %d, expected %d", d.FormatVersion, FormatVersion)
	}
	return d, nil
}

// ToEngine reconstructs a queryable Engine directly from Data, without
// consulting the input JSON again: the snapshot is self-sufficient.
// The router's precomputed table is restored as-is, skipping the
// all-pairs recomputation; the company indices/timelines and the base
// map are cheap pure functions of the stored catalog/company/settings
// data and are rebuilt here rather than duplicated in the wire format.
func ToEngine(d Data) *engine.Engine {
	cat := catalog.FromParts(d.StopNames, d.Buses, d.BusStats, d.StopBuses)
	r := router.Import(d.Router)
	companyCat := company.Build(d.Rubrics, d.Companies)
	lay := &layout.Layout{
		Stops:     fromPoint2DMap(d.PlaceStops),
		Companies: fromPoint2DIntMap(d.PlaceCompanies),
	}
	baseMap := render.BuildBaseMap(cat, d.Companies, d.Rubrics, lay, d.RenderSettings)

	return &engine.Engine{
		Routing:        d.RoutingSettings,
		Render:         d.RenderSettings,
		Catalog:        cat,
		Router:         r,
		Rubrics:        d.Rubrics,
		Companies:      d.Companies,
		CompanyCatalog: companyCat,
		Layout:         lay,
		BaseMap:        baseMap,
	}
}

func fromPoint2DMap(in map[string]Point2D) map[string]layout.Point2D {
	out := make(map[string]layout.Point2D, len(in))
	for k, v := range in {
		out[k] = layout.Point2D{X: v.X, Y: v.Y}
	}
	return out
}

func fromPoint2DIntMap(in map[int]Point2D) map[int]layout.Point2D {
	out := make(map[int]layout.Point2D, len(in))
	for k, v := range in {
		out[k] = layout.Point2D{X: v.X, Y: v.Y}
	}
	return out
}
