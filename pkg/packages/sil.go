package packages

import (
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
)

func init() {
	register(Package{
		Kind:        catalog.KindSIL,
		Description: "single in-line package",
		Family:      FamilySingleRow,
		Polarized:   true,
		copper:      silCopper,
		check:       silCheck,
	})
	register(Package{
		Kind:        catalog.KindConSIL,
		Description: "single in-line connector",
		Family:      FamilySingleRow,
		Polarized:   true,
		copper:      silCopper,
		check:       silCheck,
	})
}

// silCopper places the pins along X, pin 1 leftmost.
func silCopper(l *layout) {
	n := l.p.NumberOfPins
	for i := 0; i < n; i++ {
		l.pin(geometry.Point{X: row(i, n, l.p.PitchX)}, i+1, "")
	}
}

func silCheck(c *drc.Checker) {
	p := c.Params()
	thtCheck(c)
	c.Count("number_of_pins", p.NumberOfPins)
	if p.NumberOfPins > 1 && c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadDiameter)
	}
}
