package depot

import (
	"errors"
	"math"
	"testing"

	"github.com/yourorg/transitcat/internal/company"
	"github.com/yourorg/transitcat/internal/model"
	"github.com/yourorg/transitcat/internal/router"
)

type fakeRouter struct {
	routes map[string]*router.Route
}

func (f *fakeRouter) FindRoute(from, to string) (*router.Route, bool, error) {
	r, ok := f.routes[to]
	return r, ok, nil
}

func TestRouteToCompany_PicksMinimumTotal(t *testing.T) {
	r := &fakeRouter{routes: map[string]*router.Route{
		"Near": {TotalTime: 10},
		"Far":  {TotalTime: 5},
	}}

	companies := []model.Company{
		{
			Names:     []model.Name{{Type: model.NameTypeMain, Value: "Acme"}},
			RubricIDs: []int{1},
			Nearby: []model.NearbyStop{
				{Name: "Near", Meters: 100},
				{Name: "Far", Meters: 3000},
			},
		},
	}
	rubrics := model.RubricDict{1: "cafe"}
	cat := company.Build(rubrics, companies)
	settings := model.RoutingSettings{PedestrianVelocity: 6} // 100 m/min

	route, ok, err := RouteToCompany(r, cat, "Start", 0, company.Filter{Names: []string{"Acme"}}, settings)
	if err != nil {
		t.Fatalf("RouteToCompany: %v", err)
	}
	if !ok {
		t.Fatalf("RouteToCompany: not found")
	}
	// Near: 10 + 100/100 = 11. Far: 5 + 3000/100 = 35. Near wins.
	if route.Walk.StopFrom != "Near" {
		t.Errorf("StopFrom = %q, want Near", route.Walk.StopFrom)
	}
	if math.Abs(route.TotalTime-11) > 1e-6 {
		t.Errorf("TotalTime = %v, want 11", route.TotalTime)
	}
	if route.Walk.Rubric != "cafe" {
		t.Errorf("Rubric = %q, want cafe", route.Walk.Rubric)
	}
	if route.Wait != nil {
		t.Errorf("Wait = %+v, want nil (always open)", route.Wait)
	}
}

// Arrive before the company opens and wait out the remainder.
func TestRouteToCompany_WaitsForOpen(t *testing.T) {
	r := &fakeRouter{routes: map[string]*router.Route{
		"B": {TotalTime: 10},
	}}
	companies := []model.Company{
		{
			Names:  []model.Name{{Type: model.NameTypeMain, Value: "Depot"}},
			Nearby: []model.NearbyStop{{Name: "B", Meters: 300}},
			WorkingTime: []model.WorkingInterval{
				{Day: model.Monday, From: 720, To: 1080},
			},
		},
	}
	cat := company.Build(model.RubricDict{}, companies)
	settings := model.RoutingSettings{PedestrianVelocity: 6} // 100 m/min

	route, ok, err := RouteToCompany(r, cat, "A", 590, company.Filter{Names: []string{"Depot"}}, settings)
	if err != nil || !ok {
		t.Fatalf("RouteToCompany: ok=%v err=%v", ok, err)
	}

	// arrival = 590 + 10 + 3 = 603; wait = 720 - 603 = 117; total = 130.
	if math.Abs(route.TotalTime-130) > 1e-6 {
		t.Errorf("TotalTime = %v, want 130", route.TotalTime)
	}
	if route.Wait == nil || math.Abs(route.Wait.Time-117) > 1e-6 {
		t.Errorf("Wait = %+v, want 117 minutes", route.Wait)
	}
}

func TestRouteToCompany_NoPedestrianVelocity(t *testing.T) {
	r := &fakeRouter{routes: map[string]*router.Route{}}
	cat := company.Build(model.RubricDict{}, nil)

	_, _, err := RouteToCompany(r, cat, "Start", 0, company.Filter{}, model.RoutingSettings{})
	if !errors.Is(err, ErrPedestrianVelocity) {
		t.Errorf("RouteToCompany error = %v, want ErrPedestrianVelocity", err)
	}
}

func TestRouteToCompany_NoCandidates(t *testing.T) {
	r := &fakeRouter{routes: map[string]*router.Route{}}
	cat := company.Build(model.RubricDict{}, nil)
	settings := model.RoutingSettings{PedestrianVelocity: 5}

	_, ok, err := RouteToCompany(r, cat, "Start", 0, company.Filter{}, settings)
	if err != nil {
		t.Fatalf("RouteToCompany: %v", err)
	}
	if ok {
		t.Errorf("RouteToCompany should report not-found with no companies")
	}
}
