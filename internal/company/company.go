// Package company builds the yellow-pages catalog (rubric dictionary,
// companies, inverted indices, weekly timelines) and answers
// FindCompanies/WaitingForOpen queries.
package company

import (
	"sort"

	"github.com/yourorg/transitcat/internal/model"
)

// Catalog is the assembled, read-only company yellow-pages database.
type Catalog struct {
	Rubrics   model.RubricDict
	Companies []model.Company

	byName   map[string]map[int]struct{}
	byRubric map[string]map[int]struct{}
	byURL    map[string]map[int]struct{}
	byPhone  map[string]map[int]struct{} // keyed by phone Number

	timelines [][]int // timelines[i] is Companies[i]'s sorted minute-offsets
}

// Build assembles the inverted indices and weekly timelines.
func Build(rubrics model.RubricDict, companies []model.Company) *Catalog {
	c := &Catalog{
		Rubrics:   rubrics,
		Companies: companies,
		byName:    make(map[string]map[int]struct{}),
		byRubric:  make(map[string]map[int]struct{}),
		byURL:     make(map[string]map[int]struct{}),
		byPhone:   make(map[string]map[int]struct{}),
		timelines: make([][]int, len(companies)),
	}

	for i, co := range companies {
		for _, n := range co.Names {
			addIndex(c.byName, n.Value, i)
		}
		for _, rid := range co.RubricIDs {
			if name, ok := rubrics[rid]; ok {
				addIndex(c.byRubric, name, i)
			}
		}
		for _, u := range co.URLs {
			addIndex(c.byURL, u, i)
		}
		for _, p := range co.Phones {
			addIndex(c.byPhone, p.Number, i)
		}
		c.timelines[i] = buildTimeline(co.WorkingTime)
	}

	return c
}

func addIndex(idx map[string]map[int]struct{}, key string, i int) {
	set, ok := idx[key]
	if !ok {
		set = make(map[int]struct{})
		idx[key] = set
	}
	set[i] = struct{}{}
}

// buildTimeline expands working intervals into a sorted sequence of
// minute-offsets since Monday 00:00, EVERYDAY contributing all seven
// days.
func buildTimeline(intervals []model.WorkingInterval) []int {
	if len(intervals) == 0 {
		return nil
	}

	offsets := make([]int, 0, 2*len(intervals)*7)
	for _, iv := range intervals {
		days := []model.Day{iv.Day}
		if iv.Day == model.Everyday {
			days = []model.Day{
				model.Monday, model.Tuesday, model.Wednesday, model.Thursday,
				model.Friday, model.Saturday, model.Sunday,
			}
		}
		for _, d := range days {
			base := int(d) * model.MinutesPerDay
			offsets = append(offsets, base+iv.From, base+iv.To)
		}
	}

	sort.Ints(offsets)
	return offsets
}

// WaitingForOpen returns how many minutes (t is minutes since Monday
// 00:00, within [0, 7*1440)) company must wait before it is open,
// 0 if already open.
func (c *Catalog) WaitingForOpen(t int, companyIdx int) int {
	return int(c.WaitingForOpenAt(float64(t), companyIdx))
}

// WaitingForOpenAt is WaitingForOpen for a fractional arrival time:
// timeline entries are whole minutes, but the wait is measured from
// the exact arrival instant.
func (c *Catalog) WaitingForOpenAt(t float64, companyIdx int) float64 {
	timeline := c.timelines[companyIdx]
	if len(timeline) == 0 {
		return 0
	}

	whole := int(t)
	i := sort.Search(len(timeline), func(i int) bool { return timeline[i] > whole })
	if i == len(timeline) {
		return float64(timeline[0]+model.MinutesPerWeek) - t
	}
	if i == 0 {
		return float64(timeline[0]) - t
	}
	if (i-1)%2 == 0 {
		return 0
	}
	return float64(timeline[i]) - t
}
