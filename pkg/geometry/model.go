package geometry

import "strings"

// Flags are the per-pin/per-pad option tokens of the footprint file.
type Flags uint8

const (
	FlagSquare Flags = 1 << iota
	FlagOctagon
	FlagOnSolder
	FlagNoPaste
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagSquare, "square"},
	{FlagOctagon, "octagon"},
	{FlagOnSolder, "onsolder"},
	{FlagNoPaste, "nopaste"},
}

// String joins the set flags with commas, in fixed order and without spaces.
func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, ",")
}

// Pin is a plated through-hole: a round (or square/octagonal) annulus around
// a drilled hole.
type Pin struct {
	Center    Point
	Diameter  float64 // copper annulus diameter
	Clearance float64 // polygon clearance, twice the copper-to-copper gap
	Mask      float64 // solder mask aperture diameter
	Drill     float64
	Name      string
	Number    string
	Flags     Flags
}

// Extent is the drawn copper area including its solder mask aperture.
func (p Pin) Extent() BoundingBox {
	return Centered(p.Center, p.Mask, p.Mask)
}

// Pad is a surface-mount pad, drawn as a line of width Width between Start
// and End with round or (FlagSquare) square caps.
type Pad struct {
	Start     Point
	End       Point
	Width     float64
	Clearance float64
	Mask      float64
	Name      string
	Number    string
	Flags     Flags
}

// Extent is the drawn copper area including its solder mask aperture.
func (p Pad) Extent() BoundingBox {
	bb := Box(p.Start.X, p.Start.Y, p.End.X, p.End.Y)
	return bb.Grow(p.Mask / 2)
}

// Line is a silkscreen (or courtyard) line segment.
type Line struct {
	Start Point
	End   Point
	Width float64
}

// Arc is a silkscreen arc. Angles are in degrees, 0 pointing to -X and 90
// to +Y; RadiusX and RadiusY are the half-axes.
type Arc struct {
	Center     Point
	RadiusX    float64
	RadiusY    float64
	StartAngle float64
	Delta      float64
	Width      float64
}

// Attribute is a name/value pair embedded in the footprint.
type Attribute struct {
	Name  string
	Value string
}

// Model is the complete geometry of one footprint. It is built once per run
// and not modified afterwards.
type Model struct {
	Pins       []Pin
	Pads       []Pad
	Lines      []Line
	Arcs       []Arc
	Attributes []Attribute
	Courtyard  BoundingBox
	TextAnchor Point
}

// CopperExtent is the union of every pin and pad extent.
func (m *Model) CopperExtent() BoundingBox {
	bb := NewBoundingBox()
	for _, pin := range m.Pins {
		bb.ExpandBox(pin.Extent())
	}
	for _, pad := range m.Pads {
		bb.ExpandBox(pad.Extent())
	}
	return bb
}

// Scale returns a copy of m with every length multiplied by k. Angles are
// left untouched.
func (m *Model) Scale(k float64) *Model {
	sp := func(p Point) Point { return Point{X: p.X * k, Y: p.Y * k} }
	sb := func(b BoundingBox) BoundingBox {
		if b.IsEmpty() {
			return b
		}
		return BoundingBox{Min: sp(b.Min), Max: sp(b.Max)}
	}

	out := &Model{
		Pins:       make([]Pin, len(m.Pins)),
		Pads:       make([]Pad, len(m.Pads)),
		Lines:      make([]Line, len(m.Lines)),
		Arcs:       make([]Arc, len(m.Arcs)),
		Attributes: append([]Attribute(nil), m.Attributes...),
		Courtyard:  sb(m.Courtyard),
		TextAnchor: sp(m.TextAnchor),
	}
	for i, pin := range m.Pins {
		pin.Center = sp(pin.Center)
		pin.Diameter *= k
		pin.Clearance *= k
		pin.Mask *= k
		pin.Drill *= k
		out.Pins[i] = pin
	}
	for i, pad := range m.Pads {
		pad.Start = sp(pad.Start)
		pad.End = sp(pad.End)
		pad.Width *= k
		pad.Clearance *= k
		pad.Mask *= k
		out.Pads[i] = pad
	}
	for i, line := range m.Lines {
		out.Lines[i] = Line{Start: sp(line.Start), End: sp(line.End), Width: line.Width * k}
	}
	for i, arc := range m.Arcs {
		arc.Center = sp(arc.Center)
		arc.RadiusX *= k
		arc.RadiusY *= k
		arc.Width *= k
		out.Arcs[i] = arc
	}
	return out
}

// ClipSegment removes from the axis-aligned segment s every part that would
// touch one of the keep-out boxes, returning the remaining pieces. Segments
// that are not horizontal or vertical are returned unchanged.
func ClipSegment(s Line, keepouts []BoundingBox) []Line {
	horizontal := s.Start.Y == s.End.Y
	vertical := s.Start.X == s.End.X
	if !horizontal && !vertical {
		return []Line{s}
	}

	// Work on the interval [lo, hi] along the segment's axis.
	lo, hi := s.Start.X, s.End.X
	across := s.Start.Y
	if !horizontal {
		lo, hi = s.Start.Y, s.End.Y
		across = s.Start.X
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	type span struct{ lo, hi float64 }
	pieces := []span{{lo, hi}}
	half := s.Width / 2
	for _, k := range keepouts {
		kLo, kHi, aLo, aHi := k.Min.X, k.Max.X, k.Min.Y, k.Max.Y
		if !horizontal {
			kLo, kHi, aLo, aHi = k.Min.Y, k.Max.Y, k.Min.X, k.Max.X
		}
		if across+half <= aLo || across-half >= aHi {
			continue
		}
		var next []span
		for _, p := range pieces {
			if kHi <= p.lo || kLo >= p.hi {
				next = append(next, p)
				continue
			}
			if kLo > p.lo {
				next = append(next, span{p.lo, kLo})
			}
			if kHi < p.hi {
				next = append(next, span{kHi, p.hi})
			}
		}
		pieces = next
	}

	var out []Line
	for _, p := range pieces {
		if p.hi-p.lo <= 0 {
			continue
		}
		if horizontal {
			out = append(out, Line{Start: Point{p.lo, across}, End: Point{p.hi, across}, Width: s.Width})
		} else {
			out = append(out, Line{Start: Point{across, p.lo}, End: Point{across, p.hi}, Width: s.Width})
		}
	}
	return out
}
