package svgdoc

import (
	"fmt"
	"strings"
)

func svgOpenTag(width, height float64) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%g" height="%g">`+"\n", width, height)
}

// Color renders as either a named SVG color or an rgb()/rgba() triple.
// A is a 0..1 opacity, written only when HasAlpha is set.
type Color struct {
	Name     string
	R, G, B  uint8
	A        float64
	HasAlpha bool
}

func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	if c.HasAlpha {
		return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Point is one vertex of a polyline, in final screen space.
type Point struct {
	X, Y float64
}

// Circle is a filled circle, used for stop_points/company_points.
type Circle struct {
	Center Point
	Radius float64
	Fill   Color
}

func (c Circle) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, `<circle cx="%g" cy="%g" r="%g" fill="%s" />`+"\n", c.Center.X, c.Center.Y, c.Radius, c.Fill)
}

// Polyline is an open, unfilled, round-capped stroke through a point
// sequence, used for bus_lines/company_lines and walk segments.
type Polyline struct {
	Points []Point
	Stroke Color
	Width  float64
}

func (p Polyline) writeTo(b *strings.Builder) {
	b.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "%g,%g", pt.X, pt.Y)
	}
	fmt.Fprintf(b, `" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round" />`+"\n", p.Stroke, p.Width)
}

// Rectangle is an axis-aligned filled rectangle, used as the route
// overlay's full-canvas backdrop.
type Rectangle struct {
	X, Y, Width, Height float64
	Fill                Color
}

func (r Rectangle) writeTo(b *strings.Builder) {
	fmt.Fprintf(b, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" />`+"\n", r.X, r.Y, r.Width, r.Height, r.Fill)
}

// Text is a single label, optionally drawn as a stroked underlayer
// (bus_labels/stop_labels/company_labels both draw an underlayer pass
// then a fill-only top pass).
type Text struct {
	Position    Point
	Offset      Point
	Value       string
	Size        int
	Bold        bool
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	HasStroke   bool
}

func (t Text) writeTo(b *strings.Builder) {
	weight := ""
	if t.Bold {
		weight = ` font-weight="bold"`
	}
	stroke := ""
	if t.HasStroke {
		stroke = fmt.Sprintf(` stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"`, t.Stroke, t.StrokeWidth)
	}
	fmt.Fprintf(b, `<text x="%g" y="%g" fill="%s" font-family="Verdana" font-size="%d"%s%s>%s</text>`+"\n",
		t.Position.X+t.Offset.X, t.Position.Y+t.Offset.Y, t.Fill, t.Size, weight, stroke, escapeText(t.Value))
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
