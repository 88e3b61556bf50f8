package snapshot

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/yourorg/transitcat/internal/engine"
	"github.com/yourorg/transitcat/internal/layout"
	"github.com/yourorg/transitcat/internal/router"
)

func init() {
	gob.Register(router.WaitTag{})
	gob.Register(router.BusTag{})
}

// FromEngine captures a built Engine's state as serializable Data.
func FromEngine(e *engine.Engine) Data {
	return Data{
		FormatVersion:   FormatVersion,
		BuildID:         newBuildID(),
		RoutingSettings: e.Routing,
		RenderSettings:  e.Render,
		Router:          e.Router.Export(),
		StopNames:       e.Catalog.SortedStopNames(),
		Buses:           e.Catalog.Buses,
		BusStats:        e.Catalog.Stats,
		StopBuses:       e.Catalog.ExportStopBuses(),
		PlaceStops:      toPoint2DMap(e.Layout.Stops),
		PlaceCompanies:  toPoint2DIntMap(e.Layout.Companies),
		Rubrics:         e.Rubrics,
		Companies:       e.Companies,
	}
}

// Write serializes Data to w as a single gob stream; the snapshot file
// is fully written, then closed, before anything downstream runs.
func Write(w io.Writer, d Data) error {
	bw := bufio.NewWriter(w)
	if err := gob.NewEncoder(bw).Encode(d); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return bw.Flush()
}

func toPoint2DMap(in map[string]layout.Point2D) map[string]Point2D {
	out := make(map[string]Point2D, len(in))
	for k, v := range in {
		out[k] = Point2D{X: v.X, Y: v.Y}
	}
	return out
}

func toPoint2DIntMap(in map[int]layout.Point2D) map[int]Point2D {
	out := make(map[int]Point2D, len(in))
	for k, v := range in {
		out[k] = Point2D{X: v.X, Y: v.Y}
	}
	return out
}
