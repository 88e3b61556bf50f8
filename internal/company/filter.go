package company

import (
	"sort"

	"github.com/yourorg/transitcat/internal/model"
)

// PhoneFilter matches a company phone entry; a zero-value field means
// "unconstrained" for that attribute, with two exceptions: Number is
// always matched exactly, and LocalCode is matched exactly (empty
// included) whenever CountryCode or LocalCode is set.
type PhoneFilter struct {
	HasType     bool
	Type        model.PhoneType
	CountryCode string
	LocalCode   string
	Number      string
	Extension   string
}

// Filter is a FindCompanies query: any of its groups may be empty,
// meaning "no constraint from this group".
type Filter struct {
	Names   []string
	Rubrics []string
	URLs    []string
	Phones  []PhoneFilter
}

// FindCompanies intersects the per-group unions in the fixed order
// names, rubrics, urls, phones, returning matching
// company indices in ascending order.
func (c *Catalog) FindCompanies(f Filter) []int {
	var acc map[int]struct{}
	started := false

	apply := func(group map[int]struct{}) {
		if !started {
			acc = group
			started = true
			return
		}
		acc = intersect(acc, group)
	}

	if len(f.Names) > 0 {
		apply(unionIndex(c.byName, f.Names))
	}
	if len(f.Rubrics) > 0 {
		apply(unionIndex(c.byRubric, f.Rubrics))
	}
	if len(f.URLs) > 0 {
		apply(unionIndex(c.byURL, f.URLs))
	}
	if len(f.Phones) > 0 {
		apply(c.unionPhones(f.Phones))
	}

	if !started {
		return nil
	}

	result := make([]int, 0, len(acc))
	for i := range acc {
		result = append(result, i)
	}
	sort.Ints(result)
	return result
}

func unionIndex(idx map[string]map[int]struct{}, keys []string) map[int]struct{} {
	out := make(map[int]struct{})
	for _, k := range keys {
		for i := range idx[k] {
			out[i] = struct{}{}
		}
	}
	return out
}

func (c *Catalog) unionPhones(filters []PhoneFilter) map[int]struct{} {
	out := make(map[int]struct{})
	for _, pf := range filters {
		for i := range c.byPhone[pf.Number] {
			if phoneMatches(c.Companies[i].Phones, pf) {
				out[i] = struct{}{}
			}
		}
	}
	return out
}

// phoneMatches reports whether some phone on the company satisfies
// every constraint pf sets.
func phoneMatches(phones []model.Phone, pf PhoneFilter) bool {
	for _, p := range phones {
		if p.Number != pf.Number {
			continue
		}
		if pf.Extension != "" && p.Extension != pf.Extension {
			continue
		}
		if pf.HasType && effectivePhoneType(p) != pf.Type {
			continue
		}
		if pf.CountryCode != "" && p.CountryCode != pf.CountryCode {
			continue
		}
		if (pf.CountryCode != "" || pf.LocalCode != "") && p.LocalCode != pf.LocalCode {
			continue
		}
		return true
	}
	return false
}

// effectivePhoneType treats an untyped phone as PHONE, the wire
// format's default.
func effectivePhoneType(p model.Phone) model.PhoneType {
	if !p.HasType {
		return model.PhoneTypePhone
	}
	return p.Type
}

func intersect(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for i := range a {
		if _, ok := b[i]; ok {
			out[i] = struct{}{}
		}
	}
	return out
}
