package packages

import (
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
)

func init() {
	register(Package{
		Kind:        catalog.KindSO,
		Description: "small outline package",
		Family:      FamilyDualRowSMD,
		Polarized:   true,
		copper:      soCopper,
		check:       soCheck,
		derive:      derivePitchX,
	})
}

// soCopper uses DIP numbering with pads: rows pitch_x apart, pads pitch_y
// apart, then an optional thermal pad in the middle.
func soCopper(l *layout) {
	p := l.p
	n := p.NumberOfPins / 2
	for i := 0; i < n; i++ {
		c := geometry.Point{X: -p.PitchX / 2, Y: row(i, n, p.PitchY)}
		l.pad(c, p.PadLength, p.PadWidth, i+1, "")
	}
	for i := 0; i < n; i++ {
		c := geometry.Point{X: p.PitchX / 2, Y: -row(i, n, p.PitchY)}
		l.pad(c, p.PadLength, p.PadWidth, n+i+1, "")
	}
	l.thermal(p.NumberOfPins + 1)
}

func soCheck(c *drc.Checker) {
	p := c.Params()
	c.PadShape(catalog.PadShapeRectangular, catalog.PadShapeCircular, catalog.PadShapeRoundElongated)
	c.PadSize()
	c.Thermal()
	if p.NumberOfPins <= 0 || p.NumberOfPins%2 != 0 {
		c.Addf(drc.RulePinCount, "number_of_pins", "%s needs an even, positive pin count, got %d",
			p.Type, p.NumberOfPins)
	}
	if c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadLength)
		if p.Thermal {
			// The thermal pad sits between the two rows.
			c.CopperClearance(drc.RuleThermal, "thermal_length", p.PitchX/2, (p.PadLength+p.ThermalLength)/2)
		}
	}
	if p.NumberOfPins > 2 && c.Pitch("pitch_y", p.PitchY) {
		c.CopperClearance(drc.RuleCopperClearanceY, "pitch_y", p.PitchY, p.PadWidth)
	}
}
