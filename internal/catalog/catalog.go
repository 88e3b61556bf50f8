// Package catalog assembles the immutable stop/bus dictionaries and their
// derived statistics from the partitioned input.
package catalog

import (
	"sort"

	"github.com/yourorg/transitcat/internal/model"
)

// BusInput is a bus description as it arrives from the input bundle,
// before the non-roundtrip forward+reverse expansion is applied.
type BusInput struct {
	Name        string
	Stops       []string // forward sequence as given in the input
	IsRoundtrip bool
}

// Catalog holds the assembled, read-only stop/bus dictionaries and their
// derived statistics. Nothing in a Catalog is mutated after Build returns.
type Catalog struct {
	Stops map[string]*model.Stop
	Buses map[string]*model.Bus
	Stats map[string]model.BusStats

	// stopBuses[stop] is the set of bus names passing through stop.
	stopBuses map[string]map[string]struct{}
}

// Build partitions stops and buses, expands non-roundtrip bus routes,
// computes derived bus stats, and accumulates per-stop bus membership.
func Build(stops []model.Stop, buses []BusInput) (*Catalog, error) {
	c := &Catalog{
		Stops:     make(map[string]*model.Stop, len(stops)),
		Buses:     make(map[string]*model.Bus, len(buses)),
		Stats:     make(map[string]model.BusStats, len(buses)),
		stopBuses: make(map[string]map[string]struct{}),
	}

	for i := range stops {
		s := stops[i]
		c.Stops[s.Name] = &s
		c.stopBuses[s.Name] = make(map[string]struct{})
	}

	for _, raw := range buses {
		bus, err := expandBus(raw)
		if err != nil {
			return nil, err
		}
		for _, name := range bus.Stops {
			if _, ok := c.Stops[name]; !ok {
				return nil, structuralf("bus "+raw.Name, "references unknown stop %q", name)
			}
		}

		stats, err := computeStats(c.Stops, bus)
		if err != nil {
			return nil, err
		}

		c.Buses[bus.Name] = bus
		c.Stats[bus.Name] = stats

		seen := make(map[string]struct{}, len(bus.Stops))
		for _, name := range bus.Stops {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			c.stopBuses[name][bus.Name] = struct{}{}
		}
	}

	return c, nil
}

// expandBus expands a non-roundtrip forward sequence to
// forward+reverse without duplicating the terminal.
func expandBus(raw BusInput) (*model.Bus, error) {
	if len(raw.Stops) == 0 {
		return nil, structuralf("bus "+raw.Name, "has no stops")
	}

	bus := &model.Bus{Name: raw.Name, IsRoundtrip: raw.IsRoundtrip}

	if raw.IsRoundtrip {
		bus.Stops = append([]string(nil), raw.Stops...)
		bus.Endpoints = []string{raw.Stops[0]}
		return bus, nil
	}

	n := len(raw.Stops)
	expanded := make([]string, 0, 2*n-1)
	expanded = append(expanded, raw.Stops...)
	for i := n - 2; i >= 0; i-- {
		expanded = append(expanded, raw.Stops[i])
	}
	bus.Stops = expanded

	first, last := raw.Stops[0], raw.Stops[n-1]
	if first == last {
		bus.Endpoints = []string{first}
	} else {
		bus.Endpoints = []string{first, last}
	}
	return bus, nil
}

// ComputeStopsDistance returns the road distance from a to b, preferring
// the direct a->b entry and falling back to the reverse b->a entry.
// It is a structural error for neither direction to exist.
func ComputeStopsDistance(stops map[string]*model.Stop, a, b string) (float64, error) {
	sa, ok := stops[a]
	if !ok {
		return 0, structuralf("distance", "unknown stop %q", a)
	}
	if d, ok := sa.Distances[b]; ok {
		return d, nil
	}
	sb, ok := stops[b]
	if !ok {
		return 0, structuralf("distance", "unknown stop %q", b)
	}
	if d, ok := sb.Distances[a]; ok {
		return d, nil
	}
	return 0, structuralf("distance", "no road distance between %q and %q", a, b)
}

func computeStats(stops map[string]*model.Stop, bus *model.Bus) (model.BusStats, error) {
	stats := model.BusStats{StopCount: len(bus.Stops)}

	unique := make(map[string]struct{}, len(bus.Stops))
	for _, name := range bus.Stops {
		unique[name] = struct{}{}
	}
	stats.UniqueStopCount = len(unique)

	for i := 0; i+1 < len(bus.Stops); i++ {
		a, b := bus.Stops[i], bus.Stops[i+1]
		d, err := ComputeStopsDistance(stops, a, b)
		if err != nil {
			return model.BusStats{}, err
		}
		stats.RoadRouteLength += d
		stats.GeoRouteLength += model.GreatCircleMeters(stops[a].Position, stops[b].Position)
	}

	return stats, nil
}

// StopResponse returns the sorted set of bus names passing through stop,
// and whether the stop exists at all.
func (c *Catalog) StopResponse(name string) ([]string, bool) {
	set, ok := c.stopBuses[name]
	if !ok {
		return nil, false
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, true
}

// SortedBusNames returns every bus name in deterministic order, used
// wherever iteration order must be stable (e.g. color assignment).
func (c *Catalog) SortedBusNames() []string {
	names := make([]string, 0, len(c.Buses))
	for n := range c.Buses {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SortedStopNames returns every stop name in deterministic order.
func (c *Catalog) SortedStopNames() []string {
	names := make([]string, 0, len(c.Stops))
	for n := range c.Stops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
