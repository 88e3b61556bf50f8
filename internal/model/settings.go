package model

// RoutingSettings are the routing-graph parameters.
type RoutingSettings struct {
	BusWaitTime        int     // minutes
	BusVelocityKmh     float64 // km/h
	PedestrianVelocity float64 // km/h, 0 means absent; validated when a depot route is attempted
}

// Color is a render color, either a named color or an RGB(A) triple.
// Alpha is a 0..1 opacity, meaningful only when HasA is set.
type Color struct {
	Name  string
	RGB   [3]uint8 // used when Name == ""
	Alpha float64
	HasA  bool
}

// Layer names recognized by the renderer.
const (
	LayerBusLines      = "bus_lines"
	LayerBusLabels     = "bus_labels"
	LayerStopPoints    = "stop_points"
	LayerStopLabels    = "stop_labels"
	LayerCompanyLines  = "company_lines"
	LayerCompanyPoints = "company_points"
	LayerCompanyLabels = "company_labels"
)

// RenderSettings are the SVG rendering parameters.
type RenderSettings struct {
	Width  float64
	Height float64

	Padding float64

	StopRadius float64
	LineWidth  float64

	BusLabelFontSize int
	BusLabelOffset   [2]float64

	StopLabelFontSize int
	StopLabelOffset   [2]float64

	UnderlayerColor Color
	UnderlayerWidth float64

	ColorPalette []Color

	Layers []string

	OuterMargin float64

	CompanyRadius    float64
	CompanyLineWidth float64
}
