package snapshot

import (
	"bytes"
	"testing"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/config"
	"github.com/yourorg/transitcat/internal/engine"
	"github.com/yourorg/transitcat/internal/model"
)

func buildTestBundle() *config.Bundle {
	return &config.Bundle{
		SnapshotFile:    "base.snap",
		RoutingSettings: model.RoutingSettings{BusWaitTime: 6, BusVelocityKmh: 30},
		RenderSettings:  model.RenderSettings{Width: 600, Height: 400, Layers: []string{model.LayerStopPoints}},
		Rubrics:         model.RubricDict{1: "cafe"},
		Companies: []model.Company{{
			Names:     []model.Name{{Type: model.NameTypeMain, Value: "Acme"}},
			RubricIDs: []int{1},
		}},
		Base: config.BaseInput{
			Stops: []model.Stop{
				{Name: "A", Position: model.Point{Lat: 0, Lon: 0}, Distances: map[string]float64{"B": 1000}},
				{Name: "B", Position: model.Point{Lat: 0, Lon: 1}},
			},
			Buses: []catalog.BusInput{
				{Name: "1", Stops: []string{"A", "B"}, IsRoundtrip: false},
			},
		},
	}
}

// TestRoundTrip writes an Engine built by make_base through the gob
// encoder and reconstructs it, then checks that process_requests-style
// queries against the restored Engine see the same answers.
func TestRoundTrip(t *testing.T) {
	e1, err := engine.MakeBase(buildTestBundle())
	if err != nil {
		t.Fatalf("MakeBase: %v", err)
	}

	data := FromEngine(e1)
	if data.FormatVersion != FormatVersion {
		t.Fatalf("FormatVersion = %d, want %d", data.FormatVersion, FormatVersion)
	}
	if data.BuildID == "" {
		t.Errorf("BuildID should be stamped")
	}

	var buf bytes.Buffer
	if err := Write(&buf, data); err != nil {
		t.Fatalf("Write: %v", err)
	}

	decoded, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if decoded.BuildID != data.BuildID {
		t.Errorf("BuildID = %q, want %q", decoded.BuildID, data.BuildID)
	}

	e2 := ToEngine(decoded)

	r1, ok1, err1 := e1.Router.FindRoute("A", "B")
	r2, ok2, err2 := e2.Router.FindRoute("A", "B")
	if err1 != nil || err2 != nil || !ok1 || !ok2 {
		t.Fatalf("FindRoute: ok1=%v err1=%v ok2=%v err2=%v", ok1, err1, ok2, err2)
	}
	if r1.TotalTime != r2.TotalTime {
		t.Errorf("TotalTime before=%v after=%v, want equal", r1.TotalTime, r2.TotalTime)
	}

	buses2, ok := e2.Catalog.StopResponse("A")
	if !ok || len(buses2) != 1 || buses2[0] != "1" {
		t.Errorf("restored Catalog.StopResponse(A) = %v, ok=%v", buses2, ok)
	}
}

func TestRead_RejectsFormatVersionMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Data{FormatVersion: FormatVersion + 1}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := Read(&buf); err == nil {
		t.Errorf("Read should reject a mismatched format version")
	}
}
