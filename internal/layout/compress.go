package layout

import "sort"

// axisEntry is one place's value on the axis currently being compressed.
type axisEntry struct {
	place PlaceID
	value float64
}

// compressAxis assigns discrete indices along one axis: sorted by
// axis value ascending, each place gets
// idx(p) = 1 + max(idx(q) : q assigned neighbor), or 0 if none.
func compressAxis(entries []axisEntry, neighbors map[PlaceID]map[PlaceID]struct{}) (map[PlaceID]int, int) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].value < entries[j].value })

	idx := make(map[PlaceID]int, len(entries))
	maxIdx := 0

	for _, e := range entries {
		best := -1
		for q := range neighbors[e.place] {
			if qi, ok := idx[q]; ok && qi > best {
				best = qi
			}
		}
		v := 0
		if best >= 0 {
			v = best + 1
		}
		idx[e.place] = v
		if v > maxIdx {
			maxIdx = v
		}
	}

	return idx, maxIdx
}
