package catalog

import "github.com/yourorg/transitcat/internal/model"

// FromParts reconstructs a Catalog directly from a binary snapshot's
// stored sections (bus descriptions, per-stop bus name sets, per-bus
// aggregate stats), without re-running Build over the raw stop/bus
// descriptions. stopNames need only be known by name: nothing past
// make_base reads a stop's position or road-distance table, since the
// router table and place coordinates are already precomputed.
func FromParts(stopNames []string, buses map[string]*model.Bus, stats map[string]model.BusStats, stopBuses map[string][]string) *Catalog {
	c := &Catalog{
		Stops:     make(map[string]*model.Stop, len(stopNames)),
		Buses:     buses,
		Stats:     stats,
		stopBuses: make(map[string]map[string]struct{}, len(stopBuses)),
	}
	for _, name := range stopNames {
		c.Stops[name] = &model.Stop{Name: name}
	}
	for stop, names := range stopBuses {
		set := make(map[string]struct{}, len(names))
		for _, n := range names {
			set[n] = struct{}{}
		}
		c.stopBuses[stop] = set
	}
	return c
}

// ExportStopBuses returns the per-stop bus name sets in the
// serializable form the snapshot's Catalog section stores.
func (c *Catalog) ExportStopBuses() map[string][]string {
	out := make(map[string][]string, len(c.stopBuses))
	for stop, set := range c.stopBuses {
		names := make([]string, 0, len(set))
		for n := range set {
			names = append(names, n)
		}
		out[stop] = names
	}
	return out
}
