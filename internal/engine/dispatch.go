package engine

import (
	"errors"

	"github.com/yourorg/transitcat/internal/company"
	"github.com/yourorg/transitcat/internal/config"
	"github.com/yourorg/transitcat/internal/depot"
	"github.com/yourorg/transitcat/internal/render"
	"github.com/yourorg/transitcat/internal/router"
)

// Answer dispatches one decoded stat_requests entry to the matching
// query and returns the JSON-serializable response. An
// unrecognized Type answers not-found, so the request loop never
// aborts; a non-nil error is a configuration fault the caller must
// treat as fatal.
func (e *Engine) Answer(req config.StatRequest) (interface{}, error) {
	switch req.Type {
	case "Stop":
		return e.AnswerStop(req.ID, req.Name), nil
	case "Bus":
		return e.AnswerBus(req.ID, req.Name), nil
	case "Route":
		return e.AnswerRoute(req.ID, req.From, req.To), nil
	case "Map":
		return e.AnswerMap(req.ID), nil
	case "FindCompanies":
		return e.AnswerFindCompanies(req.ID, req.Filter), nil
	case "FindDepotRoute":
		return e.AnswerFindDepotRoute(req.ID, req.From, req.Datetime, req.Filter)
	default:
		return notFoundResponse(req.ID), nil
	}
}

// AnswerStop answers a "Stop" request.
func (e *Engine) AnswerStop(id int, name string) interface{} {
	buses, ok := e.Catalog.StopResponse(name)
	if !ok {
		return notFoundResponse(id)
	}
	return StopResponse{RequestID: id, Buses: buses}
}

// AnswerBus answers a "Bus" request.
func (e *Engine) AnswerBus(id int, name string) interface{} {
	stats, ok := e.Catalog.Stats[name]
	if !ok {
		return notFoundResponse(id)
	}
	return BusResponse{
		RequestID:       id,
		StopCount:       stats.StopCount,
		UniqueStopCount: stats.UniqueStopCount,
		RouteLength:     int(stats.RoadRouteLength),
		Curvature:       stats.Curvature(),
	}
}

// AnswerRoute answers a "Route" request: the shortest route
// between two stops, plus its highlighted overlay map.
func (e *Engine) AnswerRoute(id int, from, to string) interface{} {
	route, ok, err := e.Router.FindRoute(from, to)
	if err != nil || !ok {
		return notFoundResponse(id)
	}

	overlay := render.BuildRouteOverlay(e.BaseMap, e.Catalog, e.Companies, e.Rubrics, e.Layout, e.Render, route.Items, nil)
	return RouteResponse{
		RequestID: id,
		TotalTime: route.TotalTime,
		Items:     routeItems(route.Items),
		Map:       overlay.Render(),
	}
}

// AnswerMap answers a "Map" request with the base SVG document.
func (e *Engine) AnswerMap(id int) MapResponse {
	return MapResponse{RequestID: id, Map: e.BaseMap.Render()}
}

// AnswerFindCompanies answers a "FindCompanies" request.
func (e *Engine) AnswerFindCompanies(id int, filter company.Filter) FindCompaniesResponse {
	matches := e.CompanyCatalog.FindCompanies(filter)
	names := make([]string, 0, len(matches))
	for _, idx := range matches {
		names = append(names, e.Companies[idx].MainName())
	}
	return FindCompaniesResponse{RequestID: id, Companies: names}
}

// AnswerFindDepotRoute answers a "FindDepotRoute" request: the
// fastest route from a stop to any company matching filter, extended
// with the walking/waiting legs and a highlighted overlay. A missing
// pedestrian velocity is a fatal configuration fault, not a not-found
// answer.
func (e *Engine) AnswerFindDepotRoute(id int, from string, datetime int, filter company.Filter) (interface{}, error) {
	route, ok, err := depot.RouteToCompany(e.Router, e.CompanyCatalog, from, datetime, filter, e.Routing)
	if errors.Is(err, depot.ErrPedestrianVelocity) {
		return nil, err
	}
	if err != nil || !ok {
		return notFoundResponse(id), nil
	}

	items := routeItems(route.BusItems)
	items = append(items, RouteItem{Type: "WalkToCompany", StopName: route.Walk.StopFrom, Company: route.Walk.CompanyName, Time: route.Walk.Time})
	if route.Wait != nil {
		items = append(items, RouteItem{Type: "WaitCompany", Company: route.Wait.CompanyName, Time: route.Wait.Time})
	}

	overlay := render.BuildRouteOverlay(e.BaseMap, e.Catalog, e.Companies, e.Rubrics, e.Layout, e.Render, route.BusItems, &route.Walk)
	return RouteResponse{
		RequestID: id,
		TotalTime: route.TotalTime,
		Items:     items,
		Map:       overlay.Render(),
	}, nil
}

func routeItems(items []router.Item) []RouteItem {
	out := make([]RouteItem, 0, len(items))
	for _, it := range items {
		switch v := it.(type) {
		case router.WaitItem:
			out = append(out, RouteItem{Type: "WaitBus", StopName: v.StopName, Time: v.Time})
		case router.BusItem:
			out = append(out, RouteItem{Type: "RideBus", Bus: v.BusName, Time: v.Time, SpanCount: v.SpanCount})
		}
	}
	return out
}
