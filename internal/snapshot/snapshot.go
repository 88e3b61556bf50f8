// Package snapshot persists and restores the binary artifact make_base
// writes and process_requests reads. Encoding uses encoding/gob: it
// needs no separate schema file and handles the interface-typed edge
// tags through gob.Register.
package snapshot

import (
	"github.com/google/uuid"

	"github.com/yourorg/transitcat/internal/model"
	"github.com/yourorg/transitcat/internal/router"
)

// FormatVersion guards against loading a snapshot written by an
// incompatible build; the wire format is not stable across versions.
const FormatVersion = 1

// Data is the full serializable snapshot:
// routing settings, the router's graph + precomputed tables + stop
// vertex ids, the painter section (render settings, bus descriptions,
// place coordinates), the catalog section (per-stop bus sets, per-bus
// stats), and the company database.
type Data struct {
	FormatVersion int
	BuildID       string

	RoutingSettings model.RoutingSettings
	RenderSettings  model.RenderSettings

	Router router.Snapshot

	StopNames []string
	Buses     map[string]*model.Bus
	BusStats  map[string]model.BusStats
	StopBuses map[string][]string

	PlaceStops     map[string]Point2D
	PlaceCompanies map[int]Point2D

	Rubrics   model.RubricDict
	Companies []model.Company
}

// Point2D mirrors layout.Point2D with a gob-friendly name local to this
// package (layout.Point2D is itself plain enough to encode directly,
// but keeping the wire type here decouples the snapshot format from
// internal/layout's API).
type Point2D struct {
	X, Y float64
}

// newBuildID stamps every snapshot with a fresh build identifier,
// logged on both ends of the pipeline for traceability.
func newBuildID() string {
	return uuid.New().String()
}
