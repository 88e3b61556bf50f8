package router

import (
	"math"
	"testing"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/model"
)

func buildTwoStopCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	stops := []model.Stop{
		{Name: "A", Position: model.Point{Lat: 0, Lon: 0}, Distances: map[string]float64{"B": 1000}},
		{Name: "B", Position: model.Point{Lat: 0, Lon: 1}},
	}
	buses := []catalog.BusInput{
		{Name: "1", Stops: []string{"A", "B"}, IsRoundtrip: false},
	}
	cat, err := catalog.Build(stops, buses)
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	return cat
}

// Two stops, one non-roundtrip bus: total = wait + 1000 m at 500 m/min.
func TestFindRoute_TwoStopsOneBus(t *testing.T) {
	cat := buildTwoStopCatalog(t)
	settings := model.RoutingSettings{BusWaitTime: 6, BusVelocityKmh: 30}

	r, err := Build(cat, settings)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	route, ok, err := r.FindRoute("A", "B")
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if !ok {
		t.Fatalf("FindRoute(A,B) not found")
	}

	const want = 6 + 1000.0/500.0
	if math.Abs(route.TotalTime-want) > 1e-6 {
		t.Errorf("TotalTime = %v, want %v", route.TotalTime, want)
	}

	if len(route.Items) != 2 {
		t.Fatalf("Items = %v, want 2 entries", route.Items)
	}
	wait, ok := route.Items[0].(WaitItem)
	if !ok || wait.StopName != "A" || wait.Time != 6 {
		t.Errorf("Items[0] = %+v, want Wait(A,6)", route.Items[0])
	}
	ride, ok := route.Items[1].(BusItem)
	if !ok || ride.BusName != "1" || ride.SpanCount != 1 {
		t.Errorf("Items[1] = %+v, want Ride(1, span=1)", route.Items[1])
	}
}

func TestFindRoute_UnknownStop(t *testing.T) {
	cat := buildTwoStopCatalog(t)
	r, err := Build(cat, model.RoutingSettings{BusWaitTime: 6, BusVelocityKmh: 30})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, _, err := r.FindRoute("A", "Z"); err == nil {
		t.Errorf("FindRoute(A,Z) should error on unknown stop")
	}
}

func TestFindRoute_DeadEnd(t *testing.T) {
	stops := []model.Stop{
		{Name: "A", Position: model.Point{}, Distances: map[string]float64{"B": 500}},
		{Name: "B", Position: model.Point{}},
		{Name: "C", Position: model.Point{}},
	}
	buses := []catalog.BusInput{
		{Name: "1", Stops: []string{"A", "B"}, IsRoundtrip: false},
	}
	cat, err := catalog.Build(stops, buses)
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	r, err := Build(cat, model.RoutingSettings{BusWaitTime: 3, BusVelocityKmh: 20})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	_, ok, err := r.FindRoute("A", "C")
	if err != nil {
		t.Fatalf("FindRoute: %v", err)
	}
	if ok {
		t.Errorf("FindRoute(A,C) should not find a route to an unconnected stop")
	}
}

// When a non-roundtrip bus is the only option, A->B and B->A cost the
// same, because the bus route was mirrored during catalog expansion.
func TestFindRoute_Symmetry(t *testing.T) {
	cat := buildTwoStopCatalog(t)
	r, err := Build(cat, model.RoutingSettings{BusWaitTime: 6, BusVelocityKmh: 30})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	ab, ok, err := r.FindRoute("A", "B")
	if err != nil || !ok {
		t.Fatalf("FindRoute(A,B): ok=%v err=%v", ok, err)
	}
	ba, ok, err := r.FindRoute("B", "A")
	if err != nil || !ok {
		t.Fatalf("FindRoute(B,A): ok=%v err=%v", ok, err)
	}

	if math.Abs(ab.TotalTime-ba.TotalTime) > 1e-6 {
		t.Errorf("TotalTime(A,B) = %v, TotalTime(B,A) = %v, want equal", ab.TotalTime, ba.TotalTime)
	}
}
