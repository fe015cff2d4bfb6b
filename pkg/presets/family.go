package presets

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/packages"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

// Courtyard clearances of the IPC-7351 density levels, in mm. Chip names
// end in the level letter.
var densityClearance = map[byte]float64{
	'L': 0.10,
	'N': 0.25,
	'M': 0.50,
}

func metric(kind catalog.PackageKind, name string) params.Parameters {
	p := params.Default()
	p.Type = kind
	p.FootprintName = name
	p.Refdes = refdes(kind)
	if pkg, err := packages.Get(kind); err == nil {
		p.SilkscreenIndicateOne = pkg.Polarized
	}
	return p
}

func imperial(kind catalog.PackageKind, name string) params.Parameters {
	p := metric(kind, name)
	p.Units = catalog.UnitsMil
	p.PadClearance = 6
	p.PadSolderMaskClearance = 3
	p.SilkscreenLineWidth = 8
	p.CourtyardLineWidth = 2
	p.CourtyardClearanceWithPackage = 10
	return p
}

func refdes(kind catalog.PackageKind) string {
	switch kind {
	case catalog.KindCAPA, catalog.KindCAPC, catalog.KindCAPM, catalog.KindCAPMP, catalog.KindCAPPR:
		return "C"
	case catalog.KindDIOM, catalog.KindDIOMELF:
		return "D"
	case catalog.KindINDC, catalog.KindINDM:
		return "L"
	case catalog.KindRES, catalog.KindRESC, catalog.KindRESM:
		return "R"
	case catalog.KindConDIL, catalog.KindConDIP, catalog.KindConSIL:
		return "J"
	case catalog.KindTO92:
		return "Q"
	}
	return "U"
}

// fitCourtyard sizes the courtyard around the larger of the body and the
// copper, plus the package clearance on every side, rounded up to 0.05 mm
// (or 1 mil).
func fitCourtyard(p *params.Parameters, copperX, copperY float64) {
	grid := 0.05
	if p.Units == catalog.UnitsMil {
		grid = 1
	}
	up := func(v float64) float64 {
		v = math.Ceil(v/grid-1e-9) * grid
		return math.Round(v*1e6) / 1e6
	}
	c := 2 * p.CourtyardClearanceWithPackage
	p.Courtyard = true
	p.CourtyardLength = up(math.Max(p.PackageBodyLength, copperX) + c)
	p.CourtyardWidth = up(math.Max(p.PackageBodyWidth, copperY) + c)
}

// chip is a two-terminal SMD part: body size, pad centre distance and pad
// size, all in mm.
type chip struct {
	name                string
	bodyL, bodyW, bodyH float64
	pitch, padL, padW   float64
}

func (c chip) params(kind catalog.PackageKind) params.Parameters {
	p := metric(kind, c.name)
	p.NumberOfPins = 2
	p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = c.bodyL, c.bodyW, c.bodyH
	p.PitchX = c.pitch
	p.PadLength, p.PadWidth = c.padL, c.padW
	p.Pin1Location = catalog.Pin1MiddleLeft
	if clr, ok := densityClearance[c.name[len(c.name)-1]]; ok {
		p.CourtyardClearanceWithPackage = clr
	}
	mask := 2 * p.PadSolderMaskClearance
	fitCourtyard(&p, c.pitch+c.padL+mask, c.padW+mask)
	return p
}

// lead is a two-lead through-hole part in mm. For radial parts bodyL is the
// can diameter and bodyH its height.
type lead struct {
	name                string
	bodyL, bodyW, bodyH float64
	pitch, pad, drill   float64
}

func (c lead) params(kind catalog.PackageKind, radial bool) params.Parameters {
	p := metric(kind, c.name)
	p.NumberOfPins = 2
	p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = c.bodyL, c.bodyW, c.bodyH
	p.PackageIsRadial = radial
	p.PitchX = c.pitch
	p.PadShape = catalog.PadShapeCircular
	p.PadDiameter, p.PinDrillDiameter = c.pad, c.drill
	p.Pin1Square = kind != catalog.KindRES
	p.Pin1Location = catalog.Pin1MiddleLeft
	mask := c.pad + 2*p.PadSolderMaskClearance
	fitCourtyard(&p, c.pitch+mask, mask)
	return p
}

// dual is a through-hole part with two rows of pins, in the units of its
// table. span is the row distance and pitch the pin distance in a row.
type dual struct {
	name                string
	pins                int
	span, pitch         float64
	bodyL, bodyW, bodyH float64
	pad, drill          float64
}

func (d dual) params(p params.Parameters) params.Parameters {
	p.NumberOfPins = d.pins
	p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = d.bodyL, d.bodyW, d.bodyH
	p.PadShape = catalog.PadShapeCircular
	p.PadDiameter, p.PinDrillDiameter = d.pad, d.drill
	p.Pin1Square = true
	mask := d.pad + 2*p.PadSolderMaskClearance
	n := d.pins / 2
	if p.Type == catalog.KindConDIL {
		// Columns along X, two rows along Y.
		p.NumberOfColumns, p.NumberOfRows = n, 2
		p.PitchX, p.PitchY = d.pitch, d.span
		fitCourtyard(&p, float64(n-1)*d.pitch+mask, d.span+mask)
		return p
	}
	p.NumberOfColumns, p.NumberOfRows = 2, n
	p.PitchX, p.PitchY = d.span, d.pitch
	fitCourtyard(&p, d.span+mask, float64(n-1)*d.pitch+mask)
	return p
}

// single is a single row through-hole part in mm.
type single struct {
	name                string
	pins                int
	pitch               float64
	bodyL, bodyW, bodyH float64
	pad, drill          float64
}

func (s single) params(kind catalog.PackageKind) params.Parameters {
	p := metric(kind, s.name)
	p.NumberOfPins = s.pins
	p.NumberOfColumns, p.NumberOfRows = s.pins, 1
	p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = s.bodyL, s.bodyW, s.bodyH
	p.PitchX = s.pitch
	p.PadShape = catalog.PadShapeCircular
	p.PadDiameter, p.PinDrillDiameter = s.pad, s.drill
	p.Pin1Square = true
	p.Pin1Location = catalog.Pin1MiddleLeft
	mask := s.pad + 2*p.PadSolderMaskClearance
	fitCourtyard(&p, float64(s.pins-1)*s.pitch+mask, mask)
	return p
}

// array is a full grid of balls (BGA) or pins (PGA) in mm; drill is zero
// for balls.
type array struct {
	name                string
	cols, rows          int
	pitch               float64
	bodyL, bodyW, bodyH float64
	pad, drill          float64
}

func (a array) params(kind catalog.PackageKind) params.Parameters {
	p := metric(kind, a.name)
	p.NumberOfColumns, p.NumberOfRows = a.cols, a.rows
	p.NumberOfPins = a.cols * a.rows
	p.PitchX, p.PitchY = a.pitch, a.pitch
	p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = a.bodyL, a.bodyW, a.bodyH
	p.PadShape = catalog.PadShapeCircular
	p.PadDiameter, p.PinDrillDiameter = a.pad, a.drill
	p.Pin1Square = kind == catalog.KindPGA
	mask := a.pad + 2*p.PadSolderMaskClearance
	fitCourtyard(&p, float64(a.cols-1)*a.pitch+mask, float64(a.rows-1)*a.pitch+mask)
	return p
}

// gullWing is a small outline or quad flat part in mm. countX pads sit on
// the top and bottom sides and countY on the left and right ones; SO parts
// only have the latter. spanX and spanY are the centre distances of
// opposing pad rows. Thermal sizes are zero without an exposed pad.
type gullWing struct {
	name                string
	countX, countY      int
	pitch               float64
	spanX, spanY        float64
	padL, padW          float64
	bodyL, bodyW, bodyH float64
	thermalL, thermalW  float64
}

func (g gullWing) so() params.Parameters {
	p := metric(catalog.KindSO, g.name)
	p.NumberOfPins = 2 * g.countY
	p.NumberOfColumns, p.NumberOfRows = 2, g.countY
	p.PitchX, p.PitchY = g.spanX, g.pitch
	g.common(&p)
	mask := 2 * p.PadSolderMaskClearance
	fitCourtyard(&p, g.spanX+g.padL+mask, float64(g.countY-1)*g.pitch+g.padW+mask)
	return p
}

func (g gullWing) quad(kind catalog.PackageKind) params.Parameters {
	p := metric(kind, g.name)
	p.NumberOfPins = 2 * (g.countX + g.countY)
	p.CountX, p.CountY = g.countX, g.countY
	p.PitchX, p.PitchY = g.pitch, g.pitch
	p.C1, p.C2 = g.spanX, g.spanY
	g.common(&p)
	mask := 2 * p.PadSolderMaskClearance
	fitCourtyard(&p, g.spanX+g.padL+mask, g.spanY+g.padL+mask)
	return p
}

func (g gullWing) common(p *params.Parameters) {
	p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = g.bodyL, g.bodyW, g.bodyH
	p.PadLength, p.PadWidth = g.padL, g.padW
	if g.thermalL > 0 {
		p.Thermal = true
		p.ThermalLength, p.ThermalWidth = g.thermalL, g.thermalW
		p.ThermalClearance = p.PadClearance
		p.ThermalSolderMaskClearance = p.PadSolderMaskClearance
	}
}

// to92 is a three lead transistor package in mm: can diameter, depth from
// the round back to the flat face, and height.
type to92 struct {
	name                    string
	diameter, depth, height float64
	pitch, pad, drill       float64
}

func (t to92) params() params.Parameters {
	p := metric(catalog.KindTO92, t.name)
	p.NumberOfPins = 3
	p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = t.diameter, t.depth, t.height
	p.PitchX = t.pitch
	p.PadShape = catalog.PadShapeCircular
	p.PadDiameter, p.PinDrillDiameter = t.pad, t.drill
	p.Pin1Square = true
	p.Pin1Location = catalog.Pin1MiddleLeft
	mask := t.pad + 2*p.PadSolderMaskClearance
	fitCourtyard(&p, 2*t.pitch+mask, mask)
	return p
}
