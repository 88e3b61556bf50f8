package model

// Stop is a named geographic point served by one or more buses.
//
// Distances is a sparse, directional road-distance table: Distances[name]
// is the road distance in meters FROM this stop TO the named neighbor.
// The reverse direction reuses the same value when only one is given
// (see catalog.ComputeStopsDistance).
type Stop struct {
	Name      string
	Position  Point
	Distances map[string]float64
}

// Bus is a named ordered route over stops.
//
// Stops holds the expanded (palindromic, for non-roundtrip routes) stop
// sequence used for routing and rendering. Endpoints holds the terminal
// labels shown on the map, which for a non-roundtrip bus is the original
// first and last stop of the forward sequence (not the mirrored one).
type Bus struct {
	Name        string
	Stops       []string
	Endpoints   []string
	IsRoundtrip bool
}

// BusStats are derived, per-bus aggregate figures.
type BusStats struct {
	StopCount       int
	UniqueStopCount int
	RoadRouteLength float64
	GeoRouteLength  float64
}

// Curvature is the ratio of the road route length to the straight-line
// geo route length; undefined (reported as 0) when GeoRouteLength is 0.
func (s BusStats) Curvature() float64 {
	if s.GeoRouteLength == 0 {
		return 0
	}
	return s.RoadRouteLength / s.GeoRouteLength
}
