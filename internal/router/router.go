// Package router builds the stop/bus routing graph and answers shortest
// route queries over it.
package router

import (
	"fmt"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/graph"
	"github.com/yourorg/transitcat/internal/model"
)

// kmhToMetersPerMinute converts a km/h velocity to meters/minute.
func kmhToMetersPerMinute(kmh float64) float64 {
	return kmh * 1000 / 60
}

// WaitTag marks a Wait edge (in(s) -> out(s)).
type WaitTag struct {
	StopName string
}

// BusTag marks a Bus edge (out(stops[i]) -> in(stops[j])).
type BusTag struct {
	BusName       string
	StartStopIdx  int
	FinishStopIdx int
	SpanCount     int
}

// StopVertices is the pre-wait/post-wait vertex pair for one stop.
type StopVertices struct {
	In, Out graph.VertexID
}

// Router is the built, precomputed routing graph plus the stop name to
// vertex-pair index needed to dispatch queries.
type Router struct {
	g        *graph.Graph
	stops    map[string]StopVertices
	waitTime int
	busSpeed float64 // meters/minute
}

// Build constructs the routing graph: one in/out
// vertex pair and wait edge per stop, then one bus edge per ordered
// stop pair (i,j) on every bus route, and precomputes all-pairs
// shortest paths.
func Build(cat *catalog.Catalog, settings model.RoutingSettings) (*Router, error) {
	b := graph.NewBuilder()
	stops := make(map[string]StopVertices, len(cat.Stops))

	for _, name := range cat.SortedStopNames() {
		in := b.AddVertex()
		out := b.AddVertex()
		stops[name] = StopVertices{In: in, Out: out}
		if _, err := b.AddEdge(in, out, float64(settings.BusWaitTime), WaitTag{StopName: name}); err != nil {
			return nil, fmt.Errorf("router: wait edge for %q: %w", name, err)
		}
	}

	busSpeed := kmhToMetersPerMinute(settings.BusVelocityKmh)

	for _, busName := range cat.SortedBusNames() {
		bus := cat.Buses[busName]
		if err := addBusEdges(b, cat, stops, bus, busSpeed); err != nil {
			return nil, err
		}
	}

	g := b.Build()
	if err := g.Precompute(); err != nil {
		return nil, fmt.Errorf("router: precompute: %w", err)
	}

	return &Router{g: g, stops: stops, waitTime: settings.BusWaitTime, busSpeed: busSpeed}, nil
}

func addBusEdges(b *graph.Builder, cat *catalog.Catalog, stops map[string]StopVertices, bus *model.Bus, busSpeed float64) error {
	n := len(bus.Stops)
	for i := 0; i < n; i++ {
		distance := 0.0
		for j := i + 1; j < n; j++ {
			d, err := catalog.ComputeStopsDistance(cat.Stops, bus.Stops[j-1], bus.Stops[j])
			if err != nil {
				return err
			}
			distance += d

			from := stops[bus.Stops[i]].Out
			to := stops[bus.Stops[j]].In
			weight := distance / busSpeed
			tag := BusTag{BusName: bus.Name, StartStopIdx: i, FinishStopIdx: j, SpanCount: j - i}
			if _, err := b.AddEdge(from, to, weight, tag); err != nil {
				return fmt.Errorf("router: bus edge %s[%d->%d]: %w", bus.Name, i, j, err)
			}
		}
	}
	return nil
}

// Item is one leg of a FindRoute result: either a WaitItem or a BusItem.
type Item interface {
	itemTime() float64
}

// WaitItem models waiting at a stop before boarding.
type WaitItem struct {
	StopName string
	Time     float64
}

func (w WaitItem) itemTime() float64 { return w.Time }

// BusItem models riding span_count hops on one bus.
type BusItem struct {
	BusName       string
	StartStopIdx  int
	FinishStopIdx int
	SpanCount     int
	Time          float64
}

func (r BusItem) itemTime() float64 { return r.Time }

// Route is the result of a successful FindRoute query.
type Route struct {
	TotalTime float64
	Items     []Item
}

// FindRoute returns the minimum-time route from stop "from" to stop
// "to", alternating Wait/Bus items starting with Wait.
// An unknown stop is reported as an error; ok is false when no route
// exists.
func (r *Router) FindRoute(from, to string) (*Route, bool, error) {
	fv, ok := r.stops[from]
	if !ok {
		return nil, false, fmt.Errorf("router: unknown stop %q", from)
	}
	tv, ok := r.stops[to]
	if !ok {
		return nil, false, fmt.Errorf("router: unknown stop %q", to)
	}

	entry, ok := r.g.Lookup(fv.In, tv.In)
	if !ok {
		return nil, false, nil
	}

	path, ok := r.g.Path(fv.In, tv.In)
	if !ok {
		return nil, false, nil
	}

	items := make([]Item, 0, len(path))
	for _, eid := range path {
		info := r.g.EdgeInfo(eid)
		switch tag := info.Tag.(type) {
		case WaitTag:
			items = append(items, WaitItem{StopName: tag.StopName, Time: info.Weight})
		case BusTag:
			items = append(items, BusItem{
				BusName:       tag.BusName,
				StartStopIdx:  tag.StartStopIdx,
				FinishStopIdx: tag.FinishStopIdx,
				SpanCount:     tag.SpanCount,
				Time:          info.Weight,
			})
		default:
			return nil, false, fmt.Errorf("router: edge with unrecognized tag %T", info.Tag)
		}
	}

	return &Route{TotalTime: entry.Weight, Items: items}, true, nil
}
