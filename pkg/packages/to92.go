package packages

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
)

func init() {
	register(Package{
		Kind:        catalog.KindTO92,
		Description: "TO-92 transistor",
		Family:      FamilyTO92,
		Polarized:   true,
		copper:      to92Copper,
		silk:        to92Silk,
		check:       to92Check,
	})
}

// to92Copper places three pins in line, pitch_x apart, pin 1 left. The
// body extends a full radius behind the pins and up to the flat face in
// front of them.
func to92Copper(l *layout) {
	r := l.p.PackageBodyLength / 2
	l.body = geometry.Box(-r, -r, r, math.Min(l.p.PackageBodyWidth-r, r))
	for i := 0; i < 3; i++ {
		l.pin(geometry.Point{X: row(i, 3, l.p.PitchX)}, i+1, "")
	}
}

// to92Silk draws the D-shaped body: a circle of the body length, cut by
// the flat face package_body_width away from the rounded back.
func to92Silk(l *layout) {
	p := l.p
	r := p.PackageBodyLength / 2
	flat := p.PackageBodyWidth - r
	if flat >= r {
		l.arc(geometry.Point{}, r, 0, 360)
		return
	}
	// Arc angles start at -X and grow towards +Y.
	theta := math.Asin(flat/r) * 180 / math.Pi
	l.arc(geometry.Point{}, r, 180-theta, 180+2*theta)

	half := math.Sqrt(r*r - flat*flat)
	l.line(geometry.Point{X: -half, Y: flat}, geometry.Point{X: half, Y: flat})
}

func to92Check(c *drc.Checker) {
	p := c.Params()
	thtCheck(c)
	c.PinCount(3, "one pin per lead")
	if c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadDiameter)
	}
	if p.PackageBodyWidth > p.PackageBodyLength {
		c.Addf(drc.RuleBodyDimension, "package_body_width",
			"body width %g exceeds the body diameter %g", p.PackageBodyWidth, p.PackageBodyLength)
	}
}
