package graph

// EdgeRecord is one edge's full serializable state. Tag carries the
// router's WaitTag/BusTag payload and must have been registered with
// gob.Register by the encoding caller before Export/Import are used.
type EdgeRecord struct {
	ID     EdgeID
	From   VertexID
	To     VertexID
	Weight float64
	Tag    interface{}
}

// TableRecord is one (source, target) entry of the all-pairs table.
type TableRecord struct {
	Source VertexID
	Target VertexID
	Entry  PathEntry
}

// Snapshot is the graph's full serializable state: vertex count, every
// edge, and the precomputed all-pairs table. It deliberately omits the
// lvlath *core.Graph itself, since nothing past Precompute needs it
// (Lookup/Path/EdgeInfo/EdgeBetween all work from edgeInfo/pair/table).
type Snapshot struct {
	VertexCount int
	Edges       []EdgeRecord
	Table       []TableRecord
}

// Export captures the graph's post-Precompute state for the binary
// snapshot.
func (gr *Graph) Export() Snapshot {
	s := Snapshot{VertexCount: gr.vertices}

	s.Edges = make([]EdgeRecord, 0, len(gr.edgeInfo))
	for id, info := range gr.edgeInfo {
		s.Edges = append(s.Edges, EdgeRecord{ID: id, From: info.From, To: info.To, Weight: info.Weight, Tag: info.Tag})
	}

	s.Table = make([]TableRecord, 0, len(gr.table))
	for key, entry := range gr.table {
		s.Table = append(s.Table, TableRecord{Source: key[0], Target: key[1], Entry: entry})
	}

	return s
}

// Import reconstructs a queryable Graph directly from a Snapshot,
// skipping Precompute and its all-pairs cost entirely; that is the
// point of persisting the table.
func Import(s Snapshot) *Graph {
	gr := &Graph{
		vertices: s.VertexCount,
		edgeInfo: make(map[EdgeID]*EdgeInfo, len(s.Edges)),
		pair:     make(map[[2]VertexID][]EdgeID),
		table:    make(map[[2]VertexID]PathEntry, len(s.Table)),
	}

	for _, e := range s.Edges {
		info := &EdgeInfo{From: e.From, To: e.To, Weight: e.Weight, Tag: e.Tag}
		gr.edgeInfo[e.ID] = info
		key := [2]VertexID{e.From, e.To}
		gr.pair[key] = append(gr.pair[key], e.ID)
	}

	for _, t := range s.Table {
		gr.table[[2]VertexID{t.Source, t.Target}] = t.Entry
	}

	return gr
}
