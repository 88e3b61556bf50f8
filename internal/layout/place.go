// Package layout assigns every stop and company a non-overlapping grid
// cell for the SVG renderer, respecting bus-adjacency ordering on each
// axis.
package layout

import "strconv"

// PlaceID uniquely names a stop or a company within the layout graph.
type PlaceID string

func stopPlace(name string) PlaceID {
	return PlaceID("s:" + name)
}

func companyPlace(idx int) PlaceID {
	return PlaceID("c:" + strconv.Itoa(idx))
}

// Point2D is a final screen-space coordinate.
type Point2D struct {
	X, Y float64
}
