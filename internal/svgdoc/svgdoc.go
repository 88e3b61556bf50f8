// Package svgdoc is a minimal tagged-variant SVG primitive document.
// Primitives form a closed set behind an interface with an unexported
// method; the
// document is an ordered sequence of them, serialized in insertion
// order.
package svgdoc

import "strings"

// Primitive is any drawable SVG element this document can hold.
type Primitive interface {
	writeTo(b *strings.Builder)
}

// Document is an ordered sequence of primitives, serialized with an
// XML prolog and svg root element.
type Document struct {
	Width, Height float64
	Elements      []Primitive
}

// NewDocument creates an empty canvas of the given pixel size.
func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// Add appends one or more primitives in draw order.
func (d *Document) Add(p ...Primitive) {
	d.Elements = append(d.Elements, p...)
}

// Clone deep-copies the document (used by the renderer's route overlay,
// which starts from a copy of the base map and appends to it).
func (d *Document) Clone() *Document {
	clone := &Document{Width: d.Width, Height: d.Height, Elements: make([]Primitive, len(d.Elements))}
	copy(clone.Elements, d.Elements)
	return clone
}

// Render serializes the document to an SVG string.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	b.WriteString(svgOpenTag(d.Width, d.Height))
	for _, e := range d.Elements {
		e.writeTo(&b)
	}
	b.WriteString("</svg>")
	return b.String()
}
