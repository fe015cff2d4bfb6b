package packages

import (
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
)

func init() {
	twoPad := []struct {
		kind      catalog.PackageKind
		desc      string
		polarized bool
	}{
		{catalog.KindCAPC, "chip capacitor", false},
		{catalog.KindCAPM, "molded capacitor", false},
		{catalog.KindCAPMP, "molded polarized capacitor", true},
		{catalog.KindDIOM, "molded diode", true},
		{catalog.KindDIOMELF, "MELF diode", true},
		{catalog.KindINDC, "chip inductor", false},
		{catalog.KindINDM, "molded inductor", false},
		{catalog.KindRESC, "chip resistor", false},
		{catalog.KindRESM, "molded resistor", false},
	}
	for _, tp := range twoPad {
		register(Package{
			Kind:        tp.kind,
			Description: tp.desc,
			Family:      FamilyTwoPad,
			Polarized:   tp.polarized,
			copper:      twoPadCopper,
			check:       twoPadCheck,
			derive:      derivePitchX,
		})
	}
}

// twoPadCopper places pad 1 left and pad 2 right of the body centre, with
// their length along X.
func twoPadCopper(l *layout) {
	p := l.p
	for i := 0; i < 2; i++ {
		c := geometry.Point{X: row(i, 2, p.PitchX)}
		l.pad(c, p.PadLength, p.PadWidth, i+1, "")
	}
}

func twoPadCheck(c *drc.Checker) {
	p := c.Params()
	c.PadShape(catalog.PadShapeRectangular, catalog.PadShapeCircular, catalog.PadShapeRoundElongated)
	c.PinCount(2, "one pad per terminal")
	c.PadSize()
	if c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadLength)
	}
	c.NoThermal()
}
