package layout

import (
	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/model"
)

// controlStops identifies the anchor stops: every bus endpoint, every
// stop appearing more than twice across all expanded stop lists, and
// every stop appearing in more than one distinct roundtrip bus.
func controlStops(cat *catalog.Catalog) map[string]struct{} {
	control := make(map[string]struct{})
	occurrences := make(map[string]int)
	roundtripBuses := make(map[string]map[string]struct{}) // stop -> set of roundtrip bus names

	for _, busName := range cat.SortedBusNames() {
		bus := cat.Buses[busName]
		for _, ep := range bus.Endpoints {
			control[ep] = struct{}{}
		}
		seenInBus := make(map[string]struct{})
		for _, name := range bus.Stops {
			occurrences[name]++
			if bus.IsRoundtrip {
				if _, dup := seenInBus[name]; !dup {
					seenInBus[name] = struct{}{}
					if roundtripBuses[name] == nil {
						roundtripBuses[name] = make(map[string]struct{})
					}
					roundtripBuses[name][busName] = struct{}{}
				}
			}
		}
	}

	for name, n := range occurrences {
		if n > 2 {
			control[name] = struct{}{}
		}
	}
	for name, buses := range roundtripBuses {
		if len(buses) > 1 {
			control[name] = struct{}{}
		}
	}

	return control
}

// recomputeCoordinates runs the control-anchor interpolation: walking
// each bus's expanded stop list, intermediate stops between two
// consecutive control stops get a linearly interpolated position. Stops untouched by any bus keep their
// original coordinates. Buses are processed in deterministic (sorted
// name) order; a stop touched by more than one bus takes the position
// from the last bus processed.
func recomputeCoordinates(cat *catalog.Catalog, control map[string]struct{}) map[string]model.Point {
	coords := make(map[string]model.Point, len(cat.Stops))
	for name, s := range cat.Stops {
		coords[name] = s.Position
	}

	for _, busName := range cat.SortedBusNames() {
		bus := cat.Buses[busName]
		interpolateBus(cat, bus, control, coords)
	}

	return coords
}

func interpolateBus(cat *catalog.Catalog, bus *model.Bus, control map[string]struct{}, coords map[string]model.Point) {
	var controlIdx []int
	for i, name := range bus.Stops {
		if _, ok := control[name]; ok {
			controlIdx = append(controlIdx, i)
		}
	}
	if len(controlIdx) < 2 {
		return
	}

	for k := 0; k+1 < len(controlIdx); k++ {
		i1, i2 := controlIdx[k], controlIdx[k+1]
		n := i2 - i1
		if n <= 1 {
			continue
		}
		p1 := cat.Stops[bus.Stops[i1]].Position
		p2 := cat.Stops[bus.Stops[i2]].Position
		for j := i1 + 1; j < i2; j++ {
			t := float64(j-i1) / float64(n)
			coords[bus.Stops[j]] = model.Point{
				Lat: p1.Lat + t*(p2.Lat-p1.Lat),
				Lon: p1.Lon + t*(p2.Lon-p1.Lon),
			}
		}
	}
}
