package layout

import (
	"testing"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/model"
)

func buildLineCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	stops := []model.Stop{
		{Name: "A", Position: model.Point{Lat: 0, Lon: 0}, Distances: map[string]float64{"B": 100}},
		{Name: "B", Position: model.Point{Lat: 0, Lon: 10}, Distances: map[string]float64{"C": 100}},
		{Name: "C", Position: model.Point{Lat: 0, Lon: 20}},
	}
	buses := []catalog.BusInput{
		{Name: "1", Stops: []string{"A", "B", "C"}, IsRoundtrip: false},
	}
	cat, err := catalog.Build(stops, buses)
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	return cat
}

func TestBuild_StopsGetDistinctXCoordinates(t *testing.T) {
	cat := buildLineCatalog(t)
	settings := model.RenderSettings{Width: 100, Height: 100, Padding: 10}

	lay := Build(cat, nil, settings)

	a, b, c := lay.Stops["A"], lay.Stops["B"], lay.Stops["C"]
	if !(a.X < b.X && b.X < c.X) {
		t.Errorf("expected strictly increasing X along the route, got A=%v B=%v C=%v", a, b, c)
	}
}

func TestControlStops_EndpointsAlwaysIncluded(t *testing.T) {
	cat := buildLineCatalog(t)
	control := controlStops(cat)
	if _, ok := control["A"]; !ok {
		t.Errorf("endpoint A should be a control stop")
	}
	if _, ok := control["C"]; !ok {
		t.Errorf("endpoint C should be a control stop")
	}
}

func TestRecomputeCoordinates_InterpolatesMidpoint(t *testing.T) {
	stops := []model.Stop{
		{Name: "A", Position: model.Point{Lat: 0, Lon: 0}, Distances: map[string]float64{"M": 50}},
		{Name: "M", Position: model.Point{Lat: 99, Lon: 99}, Distances: map[string]float64{"B": 50}},
		{Name: "B", Position: model.Point{Lat: 0, Lon: 20}},
	}
	buses := []catalog.BusInput{
		// M never appears at an endpoint and occurs only twice: not a control stop.
		{Name: "1", Stops: []string{"A", "M", "B"}, IsRoundtrip: false},
	}
	cat, err := catalog.Build(stops, buses)
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}
	control := controlStops(cat)
	if _, ok := control["M"]; ok {
		t.Fatalf("M should not be a control stop in this single-bus case")
	}

	coords := recomputeCoordinates(cat, control)
	want := model.Point{Lat: 0, Lon: 10}
	if coords["M"] != want {
		t.Errorf("recomputed M = %+v, want %+v", coords["M"], want)
	}
}
