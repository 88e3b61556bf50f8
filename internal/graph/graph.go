// Package graph adapts the lvlath core/dijkstra library to the router's
// integer vertex space and fractional-minute edge weights, keeping the
// generic graph and its shortest-path routine behind one seam.
package graph

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvlath/core"
)

// VertexID is a dense integer vertex handle; the adapter maps it to
// lvlath's string vertex ids internally.
type VertexID int

// EdgeID is an opaque handle returned by AddEdge, usable to recover the
// edge's weight and tag after the graph is built.
type EdgeID int

// weightScale converts between fractional minutes and lvlath's int64
// edge weights; microsecond-of-a-minute resolution keeps route times
// well inside a 1e-6 tolerance.
const weightScale = 1e6

func minutesToWeight(minutes float64) int64 {
	return int64(math.Round(minutes * weightScale))
}

func weightToMinutes(w int64) float64 {
	return float64(w) / weightScale
}

// EdgeInfo is the caller-supplied payload attached to an edge, recovered
// verbatim when a path is reconstructed.
type EdgeInfo struct {
	From, To VertexID
	Weight   float64
	Tag      interface{}
}

// Builder accumulates vertices and weighted directed edges, then freezes
// into a Graph once Build is called. Multi-edges between the same pair
// are allowed (parallel bus routes between two stops).
type Builder struct {
	g         *core.Graph
	nextVert  int
	nextEdge  int
	edgeInfo  map[EdgeID]*EdgeInfo
	libToMine map[string]EdgeID
}

// NewBuilder constructs an empty directed, weighted, multi-edge graph.
func NewBuilder() *Builder {
	g := core.NewGraph(
		core.WithDirected(true),
		core.WithWeighted(),
		core.WithMultiEdges(),
	)
	return &Builder{
		g:         g,
		edgeInfo:  make(map[EdgeID]*EdgeInfo),
		libToMine: make(map[string]EdgeID),
	}
}

// AddVertex allocates and returns a new vertex.
func (b *Builder) AddVertex() VertexID {
	id := VertexID(b.nextVert)
	b.nextVert++
	if err := b.g.AddVertex(vertexKey(id)); err != nil {
		// core.AddVertex only fails on an empty id or duplicate; neither
		// is possible with a freshly minted monotonic key.
		panic(fmt.Sprintf("graph: AddVertex(%d): %v", id, err))
	}
	return id
}

// AddEdge inserts a directed edge from->to carrying weightMinutes and an
// opaque tag, returning a handle to look the edge back up later.
func (b *Builder) AddEdge(from, to VertexID, weightMinutes float64, tag interface{}) (EdgeID, error) {
	lid, err := b.g.AddEdge(vertexKey(from), vertexKey(to), minutesToWeight(weightMinutes))
	if err != nil {
		return 0, fmt.Errorf("graph: AddEdge(%d->%d): %w", from, to, err)
	}
	eid := EdgeID(b.nextEdge)
	b.nextEdge++
	b.edgeInfo[eid] = &EdgeInfo{From: from, To: to, Weight: weightMinutes, Tag: tag}
	b.libToMine[lid] = eid
	return eid, nil
}

// Build freezes the accumulated vertices and edges into a queryable
// Graph, indexing edges by (from,to) pair for predecessor disambiguation.
func (b *Builder) Build() *Graph {
	pair := make(map[[2]VertexID][]EdgeID)
	for _, e := range b.g.Edges() {
		eid, ok := b.libToMine[e.ID]
		if !ok {
			continue
		}
		info := b.edgeInfo[eid]
		key := [2]VertexID{info.From, info.To}
		pair[key] = append(pair[key], eid)
	}
	return &Graph{
		g:        b.g,
		edgeInfo: b.edgeInfo,
		pair:     pair,
		vertices: b.nextVert,
	}
}

func vertexKey(v VertexID) string {
	return strconv.Itoa(int(v))
}

func parseVertexKey(s string) VertexID {
	n, _ := strconv.Atoi(s)
	return VertexID(n)
}
