package svgdoc

import (
	"strings"
	"testing"
)

func TestRender_ContainsProlog(t *testing.T) {
	doc := NewDocument(100, 50)
	doc.Add(Circle{Center: Point{X: 1, Y: 2}, Radius: 3, Fill: Color{Name: "white"}})
	out := doc.Render()

	if want := `<?xml version="1.0" encoding="UTF-8" ?>`; !strings.Contains(out, want) {
		t.Errorf("Render() missing prolog, got %q", out)
	}
	if !strings.Contains(out, `<circle cx="1" cy="2" r="3" fill="white" />`) {
		t.Errorf("Render() missing circle element, got %q", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Errorf("Render() missing closing svg tag")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	base := NewDocument(10, 10)
	base.Add(Rectangle{Width: 1, Height: 1, Fill: Color{Name: "black"}})

	clone := base.Clone()
	clone.Add(Rectangle{Width: 2, Height: 2, Fill: Color{Name: "red"}})

	if len(base.Elements) != 1 {
		t.Errorf("base.Elements mutated by clone append, got %d elements", len(base.Elements))
	}
	if len(clone.Elements) != 2 {
		t.Errorf("clone.Elements = %d, want 2", len(clone.Elements))
	}
}

func TestColor_RGBA(t *testing.T) {
	c := Color{R: 255, G: 0, B: 0, A: 0.85, HasAlpha: true}
	got := c.String()
	want := "rgba(255,0,0,0.85)"
	if got != want {
		t.Errorf("Color.String() = %q, want %q", got, want)
	}
}
