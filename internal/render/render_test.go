package render

import (
	"strings"
	"testing"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/layout"
	"github.com/yourorg/transitcat/internal/model"
	"github.com/yourorg/transitcat/internal/router"
)

func buildMapFixture(t *testing.T) (*catalog.Catalog, *layout.Layout, model.RenderSettings) {
	t.Helper()
	stops := []model.Stop{
		{Name: "Alpha", Position: model.Point{Lat: 0, Lon: 0}, Distances: map[string]float64{"Beta": 1000}},
		{Name: "Beta", Position: model.Point{Lat: 0, Lon: 1}},
	}
	buses := []catalog.BusInput{
		{Name: "14", Stops: []string{"Alpha", "Beta"}, IsRoundtrip: false},
	}
	cat, err := catalog.Build(stops, buses)
	if err != nil {
		t.Fatalf("catalog.Build: %v", err)
	}

	settings := model.RenderSettings{
		Width: 600, Height: 400, Padding: 30,
		StopRadius: 5, LineWidth: 10,
		BusLabelFontSize: 20, StopLabelFontSize: 18,
		UnderlayerColor: model.Color{Name: "white"}, UnderlayerWidth: 3,
		ColorPalette: []model.Color{{Name: "green"}, {Name: "red"}},
		Layers: []string{
			model.LayerBusLines, model.LayerBusLabels,
			model.LayerStopPoints, model.LayerStopLabels,
		},
		OuterMargin: 50,
	}

	lay := layout.Build(cat, nil, settings)
	return cat, lay, settings
}

func TestBuildBaseMap_DrawsLayersInOrder(t *testing.T) {
	cat, lay, settings := buildMapFixture(t)

	out := BuildBaseMap(cat, nil, nil, lay, settings).Render()

	if !strings.Contains(out, "<polyline") {
		t.Errorf("base map missing bus line polyline:\n%s", out)
	}
	if !strings.Contains(out, `fill="white"`) {
		t.Errorf("base map missing white stop points:\n%s", out)
	}
	// bus_labels write the bus name, at both endpoints, in the bus color.
	if got := strings.Count(out, ">14</text>"); got != 4 {
		t.Errorf("bus label count = %d, want 4 (underlayer+top at 2 endpoints):\n%s", got, out)
	}
	if !strings.Contains(out, `fill="green"`) {
		t.Errorf("bus elements should use the first palette color:\n%s", out)
	}
	if strings.Index(out, "<polyline") > strings.Index(out, "<circle") {
		t.Errorf("bus_lines should be drawn before stop_points per settings.Layers order")
	}
}

func TestBuildBaseMap_IsIdempotent(t *testing.T) {
	cat, lay, settings := buildMapFixture(t)

	a := BuildBaseMap(cat, nil, nil, lay, settings).Render()
	b := BuildBaseMap(cat, nil, nil, lay, settings).Render()
	if a != b {
		t.Errorf("BuildBaseMap is not deterministic")
	}
}

func TestBuildRouteOverlay_AddsBackdropAndRestricts(t *testing.T) {
	cat, lay, settings := buildMapFixture(t)
	base := BuildBaseMap(cat, nil, nil, lay, settings)
	before := len(base.Elements)

	items := []router.Item{
		router.WaitItem{StopName: "Alpha", Time: 6},
		router.BusItem{BusName: "14", StartStopIdx: 0, FinishStopIdx: 1, SpanCount: 1, Time: 2},
	}
	overlay := BuildRouteOverlay(base, cat, nil, nil, lay, settings, items, nil)

	if len(base.Elements) != before {
		t.Fatalf("BuildRouteOverlay mutated the base map")
	}
	out := overlay.Render()
	if !strings.Contains(out, "<rect") {
		t.Errorf("overlay missing the full-canvas backdrop rectangle:\n%s", out)
	}
	if !strings.Contains(out, `x="-50" y="-50"`) {
		t.Errorf("backdrop should start at (-outer_margin, -outer_margin):\n%s", out)
	}
	// The restricted span covers stops 0..1 only, so exactly two stop
	// points are re-drawn on top of the base map's two.
	if got := strings.Count(out, "<circle"); got != 4 {
		t.Errorf("overlay circle count = %d, want 4 (2 base + 2 restricted)", got)
	}
}

func TestBusColors_CyclesPalette(t *testing.T) {
	palette := []model.Color{{Name: "red"}, {Name: "blue"}}
	colors := busColors([]string{"a", "b", "c"}, palette)

	if colors["a"].Name != "red" || colors["b"].Name != "blue" || colors["c"].Name != "red" {
		t.Errorf("busColors = %v, want palette cycled by index", colors)
	}
}
