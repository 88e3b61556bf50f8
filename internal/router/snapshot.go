package router

import "github.com/yourorg/transitcat/internal/graph"

// Snapshot is the router's full serializable state: routing settings,
// graph, router tables, and stop vertex ids.
type Snapshot struct {
	Graph    graph.Snapshot
	Stops    map[string]StopVertices
	WaitTime int
	BusSpeed float64
}

// Export captures the router's post-Build state for the binary
// snapshot.
func (r *Router) Export() Snapshot {
	return Snapshot{
		Graph:    r.g.Export(),
		Stops:    r.stops,
		WaitTime: r.waitTime,
		BusSpeed: r.busSpeed,
	}
}

// Import reconstructs a queryable Router directly from a Snapshot,
// bypassing catalog.Build/graph construction/Precompute entirely.
func Import(s Snapshot) *Router {
	return &Router{
		g:        graph.Import(s.Graph),
		stops:    s.Stops,
		waitTime: s.WaitTime,
		busSpeed: s.BusSpeed,
	}
}
