// Package geometry holds the derived, per-run description of a footprint:
// pins, pads, silkscreen primitives and the courtyard box.
package geometry

import "math"

// Point is a 2D coordinate. +X points right and +Y points down, as in the
// footprint file.
type Point struct {
	X float64
	Y float64
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Point // Minimum (top-left) corner
	Max Point // Maximum (bottom-right) corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Box returns the box spanning the two corners in any order.
func Box(x0, y0, x1, y1 float64) BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Point{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// Centered returns a width x height box centred on c.
func Centered(c Point, width, height float64) BoundingBox {
	return Box(c.X-width/2, c.Y-height/2, c.X+width/2, c.Y+height/2)
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(pos Point) {
	bb.Min.X = math.Min(bb.Min.X, pos.X)
	bb.Min.Y = math.Min(bb.Min.Y, pos.Y)
	bb.Max.X = math.Max(bb.Max.X, pos.X)
	bb.Max.Y = math.Max(bb.Max.Y, pos.Y)
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Grow returns the box widened by d on every side.
func (bb BoundingBox) Grow(d float64) BoundingBox {
	if bb.IsEmpty() {
		return bb
	}
	return BoundingBox{
		Min: Point{X: bb.Min.X - d, Y: bb.Min.Y - d},
		Max: Point{X: bb.Max.X + d, Y: bb.Max.Y + d},
	}
}

// Contains checks if a position is within the bounding box
func (bb BoundingBox) Contains(pos Point) bool {
	return pos.X >= bb.Min.X && pos.X <= bb.Max.X &&
		pos.Y >= bb.Min.Y && pos.Y <= bb.Max.Y
}

// ContainsBox reports whether other lies entirely inside bb.
func (bb BoundingBox) ContainsBox(other BoundingBox) bool {
	if other.IsEmpty() {
		return true
	}
	return bb.Contains(other.Min) && bb.Contains(other.Max)
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}
