// Package engine orchestrates both CLI phases: make_base
// builds every immutable component from a config.Bundle, snapshot
// persists/restores them, and process_requests dispatches stat_requests
// against the restored Engine.
package engine

import (
	"github.com/yourorg/transitcat/internal/catalog"
	"github.com/yourorg/transitcat/internal/company"
	"github.com/yourorg/transitcat/internal/layout"
	"github.com/yourorg/transitcat/internal/model"
	"github.com/yourorg/transitcat/internal/router"
	"github.com/yourorg/transitcat/internal/svgdoc"
)

// Engine bundles the fully built, read-only core components:
// everything a query needs to answer in amortized constant time, with
// no further I/O.
type Engine struct {
	Routing        model.RoutingSettings
	Render         model.RenderSettings
	Catalog        *catalog.Catalog
	Router         *router.Router
	Rubrics        model.RubricDict
	Companies      []model.Company
	CompanyCatalog *company.Catalog
	Layout         *layout.Layout
	BaseMap        *svgdoc.Document
}
