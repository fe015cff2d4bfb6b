package packages

import (
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
)

func init() {
	register(Package{
		Kind:        catalog.KindQFP,
		Description: "quad flat package",
		Family:      FamilyQuad,
		Polarized:   true,
		copper:      quadCopper,
		check:       quadCheck,
	})
	register(Package{
		Kind:        catalog.KindQFN,
		Description: "quad flat no-lead package",
		Family:      FamilyQuad,
		Polarized:   true,
		copper:      quadCopper,
		check:       quadCheck,
	})
}

// quadCopper places count_y pads on the left and right sides, pitch_y
// apart, and count_x pads on the top and bottom sides, pitch_x apart. The
// left and right rows are span X apart (C1, G1 or Z1), top and bottom rows
// span Y apart (C2, G2 or Z2). Numbering runs counter-clockwise from the top
// of the left side.
func quadCopper(l *layout) {
	p := l.p
	spanX, _ := p.SpanX()
	spanY, _ := p.SpanY()
	nx, ny := p.CountX, p.CountY

	number := 1
	for i := 0; i < ny; i++ {
		c := geometry.Point{X: -spanX / 2, Y: row(i, ny, p.PitchY)}
		l.pad(c, p.PadLength, p.PadWidth, number, "")
		number++
	}
	for i := 0; i < nx; i++ {
		c := geometry.Point{X: row(i, nx, p.PitchX), Y: spanY / 2}
		l.pad(c, p.PadWidth, p.PadLength, number, "")
		number++
	}
	for i := ny - 1; i >= 0; i-- {
		c := geometry.Point{X: spanX / 2, Y: row(i, ny, p.PitchY)}
		l.pad(c, p.PadLength, p.PadWidth, number, "")
		number++
	}
	for i := nx - 1; i >= 0; i-- {
		c := geometry.Point{X: row(i, nx, p.PitchX), Y: -spanY / 2}
		l.pad(c, p.PadWidth, p.PadLength, number, "")
		number++
	}
	l.thermal(number)
}

func quadCheck(c *drc.Checker) {
	p := c.Params()
	c.PadShape(catalog.PadShapeRectangular, catalog.PadShapeCircular, catalog.PadShapeRoundElongated)
	c.PadSize()
	c.Thermal()

	xOK := c.Count("count_x", p.CountX)
	yOK := c.Count("count_y", p.CountY)
	if xOK && yOK {
		c.PinCount(2*(p.CountX+p.CountY), "count_x and count_y pads per side")
	}
	if p.CountX > 1 && c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadWidth)
	}
	if p.CountY > 1 && c.Pitch("pitch_y", p.PitchY) {
		c.CopperClearance(drc.RuleCopperClearanceY, "pitch_y", p.PitchY, p.PadWidth)
	}

	spanX, okX := p.SpanX()
	if !okX {
		c.Addf(drc.RuleHeelToe, "c1", "the left to right row span needs one of C1, G1 or Z1")
	} else {
		c.CopperClearance(drc.RuleCopperClearanceX, "c1", spanX, p.PadLength)
	}
	spanY, okY := p.SpanY()
	if !okY {
		c.Addf(drc.RuleHeelToe, "c2", "the top to bottom row span needs one of C2, G2 or Z2")
	} else {
		c.CopperClearance(drc.RuleCopperClearanceY, "c2", spanY, p.PadLength)
	}

	// The outermost pads of one side must clear the inner end of the
	// neighbouring side.
	if okX && okY && p.CountX > 0 && p.CountY > 0 {
		cornerX := (spanX-p.PadLength)/2 - (row(p.CountX-1, p.CountX, p.PitchX) + p.PadWidth/2)
		cornerY := (spanY-p.PadLength)/2 - (row(p.CountY-1, p.CountY, p.PitchY) + p.PadWidth/2)
		if cornerX < p.PadClearance && cornerY < p.PadClearance {
			c.Addf(drc.RuleCopperClearanceX, "count_x", "corner pads of adjacent sides overlap")
		}
	}
	if p.Thermal && okX && okY {
		c.CopperClearance(drc.RuleThermal, "thermal_length", spanX/2, (p.PadLength+p.ThermalLength)/2)
		c.CopperClearance(drc.RuleThermal, "thermal_width", spanY/2, (p.PadLength+p.ThermalWidth)/2)
	}
}
