// Package depot extends a routed bus trip to a yellow-pages company,
// walking the final leg from whichever nearby stop gives the smallest
// total time.
package depot

import (
	"errors"
	"fmt"
	"math"

	"github.com/yourorg/transitcat/internal/company"
	"github.com/yourorg/transitcat/internal/model"
	"github.com/yourorg/transitcat/internal/router"
)

// ErrPedestrianVelocity marks a depot-route attempt without a usable
// pedestrian velocity. It is a configuration fault, not a query-level
// not-found: callers must abort rather than answer.
var ErrPedestrianVelocity = errors.New("pedestrian velocity is not configured")

// Router is the subset of *router.Router depot needs, kept as an
// interface so tests can substitute a canned route table.
type Router interface {
	FindRoute(from, to string) (*router.Route, bool, error)
}

// WalkToCompanyItem is the final leg of a depot route: walking from a
// served stop to the company's door.
type WalkToCompanyItem struct {
	Time         float64
	StopFrom     string
	CompanyIndex int
	CompanyName  string
	Rubric       string
}

// WaitCompanyItem models waiting for the company to open after arrival.
type WaitCompanyItem struct {
	Time        float64
	CompanyName string
}

// Route is a full depot route: a bus route plus its company-side
// extension.
type Route struct {
	TotalTime float64
	BusItems  []router.Item
	Walk      WalkToCompanyItem
	Wait      *WaitCompanyItem
}

// RouteToCompany finds the minimum-total route from "from" to any
// company matching filter, given a departure time in minutes since
// Monday 00:00. ok is false when no candidate exists.
func RouteToCompany(r Router, cat *company.Catalog, from string, datetime int, filter company.Filter, settings model.RoutingSettings) (*Route, bool, error) {
	if settings.PedestrianVelocity <= 0 {
		return nil, false, fmt.Errorf("depot: %w", ErrPedestrianVelocity)
	}
	walkSpeed := settings.PedestrianVelocity * 1000 / 60 // meters/minute

	matches := cat.FindCompanies(filter)

	var best *Route
	bestTotal := math.Inf(1)

	for _, idx := range matches {
		co := cat.Companies[idx]
		for _, nearby := range co.Nearby {
			route, ok, err := r.FindRoute(from, nearby.Name)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}

			walkTime := nearby.Meters / walkSpeed
			arrival := float64(datetime) + route.TotalTime + walkTime
			arrivalMod := math.Mod(arrival, model.MinutesPerWeek)
			if arrivalMod < 0 {
				arrivalMod += model.MinutesPerWeek
			}
			wait := cat.WaitingForOpenAt(arrivalMod, idx)
			total := route.TotalTime + walkTime + wait

			if total < bestTotal {
				bestTotal = total
				best = buildRoute(route, walkTime, nearby.Name, idx, co, cat.Rubrics, total, wait)
			}
		}
	}

	if best == nil {
		return nil, false, nil
	}
	return best, true, nil
}

func buildRoute(route *router.Route, walkTime float64, stopFrom string, companyIdx int, co model.Company, rubrics model.RubricDict, total float64, wait float64) *Route {
	rubric := ""
	if len(co.RubricIDs) > 0 {
		rubric = rubrics[co.RubricIDs[0]]
	}

	out := &Route{
		TotalTime: total,
		BusItems:  route.Items,
		Walk: WalkToCompanyItem{
			Time:         walkTime,
			StopFrom:     stopFrom,
			CompanyIndex: companyIdx,
			CompanyName:  co.MainName(),
			Rubric:       rubric,
		},
	}
	if wait > 0 {
		out.Wait = &WaitCompanyItem{Time: wait, CompanyName: co.MainName()}
	}
	return out
}
