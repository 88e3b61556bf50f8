package layout

import (
	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/model"
)

// buildNeighbors constructs the neighbor relation: stops
// adjacent in some bus's expanded stop list, plus bidirectional
// company<->nearby-stop edges.
func buildNeighbors(cat *catalog.Catalog, companies []model.Company) map[PlaceID]map[PlaceID]struct{} {
	n := make(map[PlaceID]map[PlaceID]struct{})
	link := func(a, b PlaceID) {
		if n[a] == nil {
			n[a] = make(map[PlaceID]struct{})
		}
		if n[b] == nil {
			n[b] = make(map[PlaceID]struct{})
		}
		n[a][b] = struct{}{}
		n[b][a] = struct{}{}
	}

	for _, busName := range cat.SortedBusNames() {
		bus := cat.Buses[busName]
		for i := 0; i+1 < len(bus.Stops); i++ {
			link(stopPlace(bus.Stops[i]), stopPlace(bus.Stops[i+1]))
		}
	}

	for idx, co := range companies {
		cp := companyPlace(idx)
		for _, nb := range co.Nearby {
			link(cp, stopPlace(nb.Name))
		}
	}

	return n
}
