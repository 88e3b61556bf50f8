package graph

import (
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"
)

// PathEntry is one row of the all-pairs table: the total weight from a
// source to a target, and the last edge on the shortest path (absent
// when source==target or no path exists).
type PathEntry struct {
	Weight      float64
	PrevEdge    EdgeID
	HasPrevEdge bool
}

// Graph is a frozen, queryable graph: vertices and edges are fixed, and
// on a Graph from Builder.Build, Precompute can be called any number of
// times to (re)build the all-pairs shortest-path table. A Graph restored
// by Import carries only the stored table and has no lvlath graph to
// run Precompute over.
type Graph struct {
	g        *core.Graph
	edgeInfo map[EdgeID]*EdgeInfo
	pair     map[[2]VertexID][]EdgeID
	vertices int

	table map[[2]VertexID]PathEntry
}

// EdgeInfo returns the stored weight/tag for a previously added edge.
func (gr *Graph) EdgeInfo(id EdgeID) *EdgeInfo {
	return gr.edgeInfo[id]
}

// EdgeBetween returns the edge used for the from->to step of a
// reconstructed path: the cheapest of the parallel edges between the
// pair, since that is the one Dijkstra's relaxation effectively took.
// Equal-weight parallels resolve to the one inserted last, which is
// deterministic for a fixed input.
func (gr *Graph) EdgeBetween(from, to VertexID) (EdgeID, bool) {
	ids, ok := gr.pair[[2]VertexID{from, to}]
	if !ok || len(ids) == 0 {
		return 0, false
	}
	best := ids[0]
	for _, id := range ids[1:] {
		w, bw := gr.edgeInfo[id].Weight, gr.edgeInfo[best].Weight
		// EdgeIDs grow with insertion, so the larger id is the later edge
		if w < bw || (w == bw && id > best) {
			best = id
		}
	}
	return best, true
}

// Lookup returns the precomputed (weight, prev edge) entry for a
// (source, target) pair, with absence represented explicitly via the
// second return value.
func (gr *Graph) Lookup(source, target VertexID) (PathEntry, bool) {
	e, ok := gr.table[[2]VertexID{source, target}]
	return e, ok
}

// Precompute runs the all-pairs routine: one single-source Dijkstra per
// vertex, each with path reconstruction enabled, folded into a single
// (source,target) -> (weight, prev edge) table.
func (gr *Graph) Precompute() error {
	table := make(map[[2]VertexID]PathEntry)

	for v := 0; v < gr.vertices; v++ {
		source := VertexID(v)
		dist, prev, err := dijkstra.Dijkstra(gr.g, dijkstra.Source(vertexKey(source)), dijkstra.WithReturnPath())
		if err != nil {
			return err
		}

		for key, d := range dist {
			if d == math.MaxInt64 {
				continue
			}
			target := parseVertexKey(key)
			entry := PathEntry{Weight: weightToMinutes(d)}
			// prev holds "" for the source and unreachable vertices
			if predKey, ok := prev[key]; ok && predKey != "" {
				predVertex := parseVertexKey(predKey)
				if eid, found := gr.EdgeBetween(predVertex, target); found {
					entry.PrevEdge = eid
					entry.HasPrevEdge = true
				}
			}
			table[[2]VertexID{source, target}] = entry
		}
	}

	gr.table = table
	return nil
}

// Path reconstructs the ordered edge sequence from source to target
// using the precomputed table, returning ok=false when no path exists.
func (gr *Graph) Path(source, target VertexID) ([]EdgeID, bool) {
	entry, ok := gr.Lookup(source, target)
	if !ok {
		return nil, false
	}
	if source == target {
		return nil, true
	}
	if !entry.HasPrevEdge {
		return nil, false
	}

	var edges []EdgeID
	cur := target
	for cur != source {
		e, ok := gr.Lookup(source, cur)
		if !ok || !e.HasPrevEdge {
			return nil, false
		}
		edges = append(edges, e.PrevEdge)
		cur = gr.edgeInfo[e.PrevEdge].From
	}

	// reverse into source->target order
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges, true
}
