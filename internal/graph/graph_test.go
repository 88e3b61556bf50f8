package graph

import "testing"

func TestPrecompute_ChainWithParallelEdges(t *testing.T) {
	b := NewBuilder()
	a := b.AddVertex()
	c := b.AddVertex()
	d := b.AddVertex()

	if _, err := b.AddEdge(a, c, 3, "slow"); err != nil {
		t.Fatalf("AddEdge a->c: %v", err)
	}
	fast, err := b.AddEdge(a, c, 1, "fast")
	if err != nil {
		t.Fatalf("AddEdge a->c (fast): %v", err)
	}
	if _, err := b.AddEdge(c, d, 2, "tail"); err != nil {
		t.Fatalf("AddEdge c->d: %v", err)
	}

	g := b.Build()
	if err := g.Precompute(); err != nil {
		t.Fatalf("Precompute: %v", err)
	}

	entry, ok := g.Lookup(a, d)
	if !ok {
		t.Fatalf("Lookup(a,d): not found")
	}
	if got, want := entry.Weight, 3.0; got != want {
		t.Errorf("weight = %v, want %v", got, want)
	}

	path, ok := g.Path(a, d)
	if !ok || len(path) != 2 {
		t.Fatalf("Path(a,d) = %v, %v", path, ok)
	}
	if info := g.EdgeInfo(path[0]); info.Tag != "fast" {
		t.Errorf("first hop tag = %v, want fast (got edge id %d = %v)", info.Tag, fast, info)
	}
}

func TestPrecompute_NoPathIsAbsent(t *testing.T) {
	b := NewBuilder()
	a := b.AddVertex()
	_ = b.AddVertex()

	g := b.Build()
	if err := g.Precompute(); err != nil {
		t.Fatalf("Precompute: %v", err)
	}

	if _, ok := g.Lookup(a, VertexID(1)); ok {
		t.Errorf("Lookup(a, unreachable) should be absent")
	}
	if _, ok := g.Path(a, VertexID(1)); ok {
		t.Errorf("Path(a, unreachable) should be absent")
	}
}

func TestPrecompute_SameSourceAndTarget(t *testing.T) {
	b := NewBuilder()
	a := b.AddVertex()

	g := b.Build()
	if err := g.Precompute(); err != nil {
		t.Fatalf("Precompute: %v", err)
	}

	path, ok := g.Path(a, a)
	if !ok || len(path) != 0 {
		t.Errorf("Path(a,a) = %v, %v, want empty path, true", path, ok)
	}
}
