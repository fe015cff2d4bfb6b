package packages

import (
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
)

func init() {
	register(Package{
		Kind:        catalog.KindCAPA,
		Description: "axial capacitor",
		Family:      FamilyAxial,
		Polarized:   true,
		copper:      twoPinCopper,
		silk:        axialOrRadialSilk,
		mark:        axialOrRadialMark,
		check:       twoPinCheck,
	})
	register(Package{
		Kind:        catalog.KindRES,
		Description: "axial resistor",
		Family:      FamilyAxial,
		copper:      twoPinCopper,
		silk:        axialSilk,
		check:       twoPinCheck,
	})
	register(Package{
		Kind:        catalog.KindCAPPR,
		Description: "radial polarized capacitor",
		Family:      FamilyRadial,
		Polarized:   true,
		copper:      twoPinCopper,
		silk:        radialSilk,
		mark:        plusMark,
		check:       twoPinCheck,
	})
}

// twoPinCopper places pin 1 left and pin 2 right of the body centre.
func twoPinCopper(l *layout) {
	for i := 0; i < 2; i++ {
		l.pin(geometry.Point{X: row(i, 2, l.p.PitchX)}, i+1, "")
	}
}

func twoPinCheck(c *drc.Checker) {
	p := c.Params()
	c.PadShape(catalog.PadShapeCircular, catalog.PadShapeRectangular, catalog.PadShapeOctagonal)
	c.PinCount(2, "one pin per lead")
	c.PinSize()
	if c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadDiameter)
	}
	c.NoThermal()
}

// axialSilk draws the body and a lead from each end of it towards its pin.
func axialSilk(l *layout) {
	l.rect(l.body)
	half := l.p.PitchX / 2
	if half <= l.body.Max.X {
		return
	}
	l.line(geometry.Point{X: -half, Y: 0}, geometry.Point{X: l.body.Min.X, Y: 0})
	l.line(geometry.Point{X: l.body.Max.X, Y: 0}, geometry.Point{X: half, Y: 0})
}

// axialOrRadialSilk lets an axial kind be mounted standing up.
func axialOrRadialSilk(l *layout) {
	if l.p.PackageIsRadial {
		radialSilk(l)
		return
	}
	axialSilk(l)
}

// radialSilk draws the can as a circle of the body length.
func radialSilk(l *layout) {
	r := l.p.PackageBodyLength / 2
	l.arc(geometry.Point{}, r, 0, 360)
}

// axialOrRadialMark marks pin 1 the way the mounting's outline expects.
func axialOrRadialMark(l *layout) {
	if l.p.PackageIsRadial {
		plusMark(l)
		return
	}
	l.indicator()
}

// plusMark draws a plus sign above pin 1.
func plusMark(l *layout) {
	lw := l.p.SilkscreenLineWidth
	if !l.p.SilkscreenIndicateOne || lw <= 0 || !l.hasPin1 {
		return
	}
	size := l.p.PadDiameter / 2
	c := geometry.Point{X: l.pin1Center.X, Y: l.pin1.Min.Y - lw - size}
	l.line(geometry.Point{X: c.X - size, Y: c.Y}, geometry.Point{X: c.X + size, Y: c.Y})
	l.line(geometry.Point{X: c.X, Y: c.Y - size}, geometry.Point{X: c.X, Y: c.Y + size})
}
