package packages

import (
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
)

func init() {
	register(Package{
		Kind:        catalog.KindDIP,
		Description: "dual in-line package",
		Family:      FamilyDualRow,
		Polarized:   true,
		copper:      dipCopper,
		check:       dipCheck,
	})
	register(Package{
		Kind:        catalog.KindConDIP,
		Description: "dual in-line connector, DIP numbering",
		Family:      FamilyDualRow,
		Polarized:   true,
		copper:      dipCopper,
		check:       dipCheck,
	})
	register(Package{
		Kind:        catalog.KindConDIL,
		Description: "dual in-line connector, zig-zag numbering",
		Family:      FamilyDualRow,
		Polarized:   true,
		copper:      dilCopper,
		check:       dilCheck,
	})
}

// dipCopper numbers counter-clockwise: down the left column, then up the
// right one. Columns are pitch_x apart, pins pitch_y apart.
func dipCopper(l *layout) {
	p := l.p
	n := p.NumberOfPins / 2
	for i := 0; i < n; i++ {
		l.pin(geometry.Point{X: -p.PitchX / 2, Y: row(i, n, p.PitchY)}, i+1, "")
	}
	for i := 0; i < n; i++ {
		l.pin(geometry.Point{X: p.PitchX / 2, Y: -row(i, n, p.PitchY)}, n+i+1, "")
	}
}

func dipCheck(c *drc.Checker) {
	p := c.Params()
	thtCheck(c)
	if p.NumberOfPins <= 0 || p.NumberOfPins%2 != 0 {
		c.Addf(drc.RulePinCount, "number_of_pins", "%s needs an even, positive pin count, got %d",
			p.Type, p.NumberOfPins)
	}
	if c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadDiameter)
	}
	if p.NumberOfPins > 2 && c.Pitch("pitch_y", p.PitchY) {
		c.CopperClearance(drc.RuleCopperClearanceY, "pitch_y", p.PitchY, p.PadDiameter)
	}
}

// dilCopper lays number_of_columns columns along X, pitch_x apart, with two
// rows pitch_y apart. Numbering zig-zags: 1 top, 2 below it, 3 top of the
// next column and so on.
func dilCopper(l *layout) {
	p := l.p
	cols := p.NumberOfColumns
	for col := 0; col < cols; col++ {
		x := row(col, cols, p.PitchX)
		l.pin(geometry.Point{X: x, Y: -p.PitchY / 2}, 2*col+1, "")
		l.pin(geometry.Point{X: x, Y: p.PitchY / 2}, 2*col+2, "")
	}
}

func dilCheck(c *drc.Checker) {
	p := c.Params()
	thtCheck(c)
	if c.Count("number_of_columns", p.NumberOfColumns) {
		c.PinCount(2*p.NumberOfColumns, "two rows of number_of_columns")
	}
	if p.NumberOfColumns > 1 && c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadDiameter)
	}
	if c.Pitch("pitch_y", p.PitchY) {
		c.CopperClearance(drc.RuleCopperClearanceY, "pitch_y", p.PitchY, p.PadDiameter)
	}
}

// thtCheck holds the rules shared by through-hole arrays.
func thtCheck(c *drc.Checker) {
	c.PadShape(catalog.PadShapeCircular, catalog.PadShapeRectangular, catalog.PadShapeOctagonal)
	c.PinSize()
	c.NoThermal()
}
