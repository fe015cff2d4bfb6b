package packages

import (
	"fmt"
	"math"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

// textMargin is the distance, in internal units, between the top of the
// courtyard and the refdes text anchor.
const textMargin = 1000

// layout builds a Model in user units, origin at the body centre and +Y
// pointing down. finish scales it into internal units.
type layout struct {
	p    *params.Parameters
	m    geometry.Model
	body geometry.BoundingBox

	// Position 1 is tracked even when it is listed as an exception, so the
	// indicator still marks where it belongs.
	hasPin1    bool
	pin1       geometry.BoundingBox
	pin1Center geometry.Point

	// turned rotates the copper half way round the origin.
	turned bool

	// keep caches keepouts for keepN copper items.
	keep  []geometry.BoundingBox
	keepN int
}

func newLayout(p *params.Parameters) *layout {
	return &layout{
		p:    p,
		body: geometry.Centered(geometry.Point{}, p.PackageBodyLength, p.PackageBodyWidth),
	}
}

// shapeFlags returns the flags implied by the pad shape, with the pin #1
// square override applied to position 1.
func (l *layout) shapeFlags(number int, through bool) geometry.Flags {
	var f geometry.Flags
	switch l.p.PadShape {
	case catalog.PadShapeRectangular:
		f = geometry.FlagSquare
	case catalog.PadShapeOctagonal:
		if through {
			f = geometry.FlagOctagon
		}
	}
	if number == 1 && l.p.Pin1Square {
		f = f&^geometry.FlagOctagon | geometry.FlagSquare
	}
	return f
}

// place maps a copper centre from the kind's natural orientation.
func (l *layout) place(c geometry.Point) geometry.Point {
	if l.turned {
		return geometry.Point{X: -c.X, Y: -c.Y}
	}
	return c
}

func (l *layout) mark(number int, c geometry.Point, extent geometry.BoundingBox) {
	if number != 1 {
		return
	}
	l.hasPin1 = true
	l.pin1 = extent
	l.pin1Center = c
}

func (l *layout) skip(number int, name string) bool {
	return l.p.IsException(name) || l.p.IsException(strconv.Itoa(number))
}

// pin places a through-hole pin at position number. An empty name defaults
// to the number.
func (l *layout) pin(c geometry.Point, number int, name string) {
	if name == "" {
		name = strconv.Itoa(number)
	}
	c = l.place(c)
	pin := geometry.Pin{
		Center:    c,
		Diameter:  l.p.PadDiameter,
		Clearance: 2 * l.p.PadClearance,
		Mask:      l.p.PadDiameter + 2*l.p.PadSolderMaskClearance,
		Drill:     l.p.PinDrillDiameter,
		Name:      name,
		Number:    name,
		Flags:     l.shapeFlags(number, true),
	}
	l.mark(number, c, pin.Extent())
	if l.skip(number, name) {
		return
	}
	l.m.Pins = append(l.m.Pins, pin)
}

// pad places a surface-mount pad of sizeX by sizeY at position number.
func (l *layout) pad(c geometry.Point, sizeX, sizeY float64, number int, name string) {
	if name == "" {
		name = strconv.Itoa(number)
	}
	c = l.place(c)
	pad := newPad(c, sizeX, sizeY, l.p.PadClearance, l.p.PadSolderMaskClearance)
	pad.Name = name
	pad.Number = name
	pad.Flags = l.shapeFlags(number, false)
	l.mark(number, c, pad.Extent())
	if l.skip(number, name) {
		return
	}
	l.m.Pads = append(l.m.Pads, pad)
}

// newPad draws a sizeX by sizeY pad as a segment along its longer axis, as
// thick as the shorter one.
func newPad(c geometry.Point, sizeX, sizeY, clearance, maskClearance float64) geometry.Pad {
	w := math.Min(sizeX, sizeY)
	var dx, dy float64
	if sizeX >= sizeY {
		dx = (sizeX - w) / 2
	} else {
		dy = (sizeY - w) / 2
	}
	return geometry.Pad{
		Start:     geometry.Point{X: c.X - dx, Y: c.Y - dy},
		End:       geometry.Point{X: c.X + dx, Y: c.Y + dy},
		Width:     w,
		Clearance: 2 * clearance,
		Mask:      w + 2*maskClearance,
	}
}

// thermal places the central thermal pad, numbered after the last pin.
// Zero thermal clearances fall back to the pad clearances.
func (l *layout) thermal(number int) {
	p := l.p
	if !p.Thermal {
		return
	}
	clearance := p.ThermalClearance
	if clearance == 0 {
		clearance = p.PadClearance
	}
	mask := p.ThermalSolderMaskClearance
	if mask == 0 {
		mask = p.PadSolderMaskClearance
	}
	name := strconv.Itoa(number)
	if l.skip(number, name) {
		return
	}
	pad := newPad(geometry.Point{}, p.ThermalLength, p.ThermalWidth, clearance, mask)
	pad.Name = name
	pad.Number = name
	pad.Flags = geometry.FlagSquare
	if p.ThermalNoPaste {
		pad.Flags |= geometry.FlagNoPaste
	}
	l.m.Pads = append(l.m.Pads, pad)
}

// fiducials places FID1 and FID2 beyond opposite corners of the copper.
func (l *layout) fiducials() {
	p := l.p
	if !p.Fiducial {
		return
	}
	bb := l.m.CopperExtent()
	bb.ExpandBox(l.body)
	d := p.FiducialPadDiameter
	off := d/2 + p.FiducialPadSolderMaskClearance + p.PadClearance
	corners := []geometry.Point{
		{X: bb.Min.X - off, Y: bb.Min.Y - off},
		{X: bb.Max.X + off, Y: bb.Max.Y + off},
	}
	for i, c := range corners {
		pad := newPad(c, d, d, p.PadClearance, p.FiducialPadSolderMaskClearance)
		pad.Name = fmt.Sprintf("FID%d", i+1)
		l.m.Pads = append(l.m.Pads, pad)
	}
}

func (l *layout) drawOutline() bool {
	return l.p.SilkscreenPackageOutline && l.p.SilkscreenLineWidth > 0
}

// keepouts are the copper extents widened by one silkscreen line width.
// They are rebuilt only when copper was added since the last call.
func (l *layout) keepouts() []geometry.BoundingBox {
	n := len(l.m.Pins) + len(l.m.Pads)
	if l.keep != nil && l.keepN == n {
		return l.keep
	}
	lw := l.p.SilkscreenLineWidth
	out := make([]geometry.BoundingBox, 0, n)
	for _, pin := range l.m.Pins {
		out = append(out, pin.Extent().Grow(lw))
	}
	for _, pad := range l.m.Pads {
		out = append(out, pad.Extent().Grow(lw))
	}
	l.keep, l.keepN = out, n
	return out
}

// line draws a silkscreen line, leaving gaps where it would cross copper.
func (l *layout) line(a, b geometry.Point) {
	s := geometry.Line{Start: a, End: b, Width: l.p.SilkscreenLineWidth}
	l.m.Lines = append(l.m.Lines, geometry.ClipSegment(s, l.keepouts())...)
}

func (l *layout) rect(bb geometry.BoundingBox) {
	l.line(geometry.Point{X: bb.Min.X, Y: bb.Min.Y}, geometry.Point{X: bb.Max.X, Y: bb.Min.Y})
	l.line(geometry.Point{X: bb.Max.X, Y: bb.Min.Y}, geometry.Point{X: bb.Max.X, Y: bb.Max.Y})
	l.line(geometry.Point{X: bb.Max.X, Y: bb.Max.Y}, geometry.Point{X: bb.Min.X, Y: bb.Max.Y})
	l.line(geometry.Point{X: bb.Min.X, Y: bb.Max.Y}, geometry.Point{X: bb.Min.X, Y: bb.Min.Y})
}

func (l *layout) arc(c geometry.Point, r, start, delta float64) {
	l.m.Arcs = append(l.m.Arcs, geometry.Arc{
		Center:     c,
		RadiusX:    r,
		RadiusY:    r,
		StartAngle: start,
		Delta:      delta,
		Width:      l.p.SilkscreenLineWidth,
	})
}

// indicator marks pin #1. When its copper sticks out of the body a short
// line runs alongside it; otherwise a dot sits outside the nearest body
// corner.
func (l *layout) indicator() {
	lw := l.p.SilkscreenLineWidth
	if !l.p.SilkscreenIndicateOne || lw <= 0 || !l.hasPin1 {
		return
	}
	keep := l.pin1.Grow(lw)
	left := l.pin1Center.X <= 0
	top := l.pin1Center.Y <= 0

	switch {
	case l.pin1.Min.X < l.body.Min.X || l.pin1.Max.X > l.body.Max.X:
		y := keep.Max.Y + lw/2
		if top {
			y = keep.Min.Y - lw/2
		}
		l.m.Lines = append(l.m.Lines, geometry.Line{
			Start: geometry.Point{X: l.pin1.Min.X, Y: y},
			End:   geometry.Point{X: l.pin1.Max.X, Y: y},
			Width: lw,
		})
	case l.pin1.Min.Y < l.body.Min.Y || l.pin1.Max.Y > l.body.Max.Y:
		x := keep.Max.X + lw/2
		if left {
			x = keep.Min.X - lw/2
		}
		l.m.Lines = append(l.m.Lines, geometry.Line{
			Start: geometry.Point{X: x, Y: l.pin1.Min.Y},
			End:   geometry.Point{X: x, Y: l.pin1.Max.Y},
			Width: lw,
		})
	default:
		c := geometry.Point{X: l.body.Max.X + 2*lw, Y: l.body.Max.Y + 2*lw}
		if left {
			c.X = l.body.Min.X - 2*lw
		}
		if top {
			c.Y = l.body.Min.Y - 2*lw
		}
		l.arc(c, lw/2, 0, 360)
	}
}

// courtyard sets the courtyard box to the union of the copper, the body
// plus its clearance and the requested courtyard size, and draws it when
// asked to.
func (l *layout) courtyard() {
	p := l.p
	bb := l.m.CopperExtent()
	bb.ExpandBox(l.body.Grow(p.CourtyardClearanceWithPackage))
	if p.Courtyard && p.CourtyardLength > 0 && p.CourtyardWidth > 0 {
		bb.ExpandBox(geometry.Centered(geometry.Point{}, p.CourtyardLength, p.CourtyardWidth))
	}
	l.m.Courtyard = bb

	if !p.Courtyard || p.CourtyardLineWidth <= 0 {
		return
	}
	w := p.CourtyardLineWidth
	corners := []geometry.Point{
		{X: bb.Min.X, Y: bb.Min.Y},
		{X: bb.Max.X, Y: bb.Min.Y},
		{X: bb.Max.X, Y: bb.Max.Y},
		{X: bb.Min.X, Y: bb.Max.Y},
	}
	for i, c := range corners {
		next := corners[(i+1)%len(corners)]
		l.m.Lines = append(l.m.Lines, geometry.Line{Start: c, End: next, Width: w})
	}
}

func (l *layout) attributes() {
	if !l.p.AttributesInFootprint {
		return
	}
	for _, kv := range l.p.Attributes() {
		l.m.Attributes = append(l.m.Attributes, geometry.Attribute{Name: kv[0], Value: kv[1]})
	}
}

// finish converts the model to internal units and anchors the refdes text
// above the courtyard's top left corner.
func (l *layout) finish() *geometry.Model {
	m := l.m.Scale(l.p.Units.Multiplier())
	m.TextAnchor = geometry.Point{X: m.Courtyard.Min.X, Y: m.Courtyard.Min.Y - textMargin}
	return m
}

// row returns the offset of position i in a centred row of n positions
// spaced pitch apart.
func row(i, n int, pitch float64) float64 {
	return (float64(i) - float64(n-1)/2) * pitch
}
