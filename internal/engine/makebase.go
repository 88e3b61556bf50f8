package engine

import (
	"fmt"

	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/company"
	"github.com/yourorg/transitcat/internal/config"
	"github.com/yourorg/transitcat/internal/layout"
	"github.com/yourorg/transitcat/internal/render"
	"github.com/yourorg/transitcat/internal/router"
)

// MakeBase runs the full make_base pipeline: assemble the
// catalog, build the router and precompute all-pairs shortest paths,
// build the company catalog, lay out the map, and freeze the base SVG.
func MakeBase(b *config.Bundle) (*Engine, error) {
	cat, err := catalog.Build(b.Base.Stops, b.Base.Buses)
	if err != nil {
		return nil, fmt.Errorf("engine: make_base: %w", err)
	}

	r, err := router.Build(cat, b.RoutingSettings)
	if err != nil {
		return nil, fmt.Errorf("engine: make_base: %w", err)
	}

	companyCat := company.Build(b.Rubrics, b.Companies)

	lay := layout.Build(cat, b.Companies, b.Render)

	baseMap := render.BuildBaseMap(cat, b.Companies, b.Rubrics, lay, b.Render)

	return &Engine{
		Routing:        b.RoutingSettings,
		Render:         b.Render,
		Catalog:        cat,
		Router:         r,
		Rubrics:        b.Rubrics,
		Companies:      b.Companies,
		CompanyCatalog: companyCat,
		Layout:         lay,
		BaseMap:        baseMap,
	}, nil
}
