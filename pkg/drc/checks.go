package drc

import (
	"math"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

// Common runs the checks that apply to every package kind: units, non
// negative dimensions, body, courtyard, fiducials, silkscreen and heel/toe
// goals.
func (c *Checker) Common() {
	c.Units()
	c.NonNegative()
	c.Body()
	c.CourtyardDimensions()
	c.CourtyardClearance()
	c.Fiducials()
	c.SilkscreenLineWidth()
	c.HeelToe()
}

// Units flags a unit system that did not resolve.
func (c *Checker) Units() {
	if !c.p.Units.Known() {
		c.Addf(RuleUnits, "footprint_units", "units are not set to one of mil, mil/100 or mm")
	}
}

// NonNegative flags every numeric field holding a negative value.
func (c *Checker) NonNegative() {
	for _, f := range params.Fields() {
		v, ok := f.Number(c.p)
		if ok && v < 0 {
			c.Addf(RuleNegativeDimension, f.Name, "%s must not be negative, got %g", f.Name, v)
		}
	}
}

// PadShape flags a pad shape that is not in allowed.
func (c *Checker) PadShape(allowed ...catalog.PadShape) {
	for _, s := range allowed {
		if c.p.PadShape == s {
			return
		}
	}
	if c.p.PadShape == catalog.PadShapeNone {
		c.Addf(RulePadShape, "pad_shape", "pad shape is not set")
		return
	}
	c.Addf(RulePadShape, "pad_shape", "%q is not allowed for %s", c.p.PadShape, c.p.Type)
}

// Pin1Location rejects a pin #1 location the kind's layout cannot produce.
// An unset location is always accepted.
func (c *Checker) Pin1Location(allowed ...catalog.Pin1Location) {
	if c.p.Pin1Location == catalog.Pin1None {
		return
	}
	names := make([]string, 0, len(allowed))
	for _, l := range allowed {
		if c.p.Pin1Location == l {
			return
		}
		names = append(names, strconv.Quote(l.String()))
	}
	c.Addf(RulePin1Location, "pin_1_position", "%s cannot put pin 1 at %q, only at %s",
		c.p.Type, c.p.Pin1Location, strings.Join(names, " or "))
}

// Body requires the package body length, width and height to be positive.
func (c *Checker) Body() {
	c.positive(RuleBodyDimension, "package_body_length", c.p.PackageBodyLength)
	c.positive(RuleBodyDimension, "package_body_width", c.p.PackageBodyWidth)
	c.positive(RuleBodyDimension, "package_body_height", c.p.PackageBodyHeight)
}

// CourtyardDimensions requires a courtyard size when a courtyard is drawn.
func (c *Checker) CourtyardDimensions() {
	if !c.p.Courtyard {
		return
	}
	c.positive(RuleCourtyardDimension, "courtyard_length", c.p.CourtyardLength)
	c.positive(RuleCourtyardDimension, "courtyard_width", c.p.CourtyardWidth)
}

// CourtyardClearance requires the courtyard to leave at least the package
// clearance on both sides of the body, independently for length and width.
func (c *Checker) CourtyardClearance() {
	if !c.p.Courtyard {
		return
	}
	need := 2 * c.p.CourtyardClearanceWithPackage
	if c.p.CourtyardLength > 0 && c.p.CourtyardLength-c.p.PackageBodyLength < need-tolerance {
		c.Addf(RuleCourtyardClearance, "courtyard_length",
			"courtyard length %g leaves less than %g clearance around body length %g",
			c.p.CourtyardLength, c.p.CourtyardClearanceWithPackage, c.p.PackageBodyLength)
	}
	if c.p.CourtyardWidth > 0 && c.p.CourtyardWidth-c.p.PackageBodyWidth < need-tolerance {
		c.Addf(RuleCourtyardClearance, "courtyard_width",
			"courtyard width %g leaves less than %g clearance around body width %g",
			c.p.CourtyardWidth, c.p.CourtyardClearanceWithPackage, c.p.PackageBodyWidth)
	}
}

// CopperClearance checks the copper gap between neighbouring positions on
// one axis: pitch minus the copper size along that axis must be at least the
// pad clearance. Callers only check axes with more than one position.
func (c *Checker) CopperClearance(rule Rule, field string, pitch, size float64) {
	gap := pitch - size
	if gap < c.p.PadClearance-tolerance {
		c.Addf(rule, field, "copper gap %g (pitch %g, pad %g) is below pad clearance %g",
			round(gap), pitch, size, c.p.PadClearance)
	}
}

// Fiducials requires a diameter and a solder mask clearance when fiducials
// are placed.
func (c *Checker) Fiducials() {
	if !c.p.Fiducial {
		return
	}
	c.positive(RuleFiducial, "fiducial_pad_diameter", c.p.FiducialPadDiameter)
	c.positive(RuleFiducial, "fiducial_pad_solder_mask_clearance", c.p.FiducialPadSolderMaskClearance)
}

// SilkscreenLineWidth requires a usable line width whenever something is
// drawn on the silkscreen. The upper bound depends on the unit system.
func (c *Checker) SilkscreenLineWidth() {
	if !c.p.SilkscreenPackageOutline && !c.p.SilkscreenIndicateOne {
		return
	}
	w := c.p.SilkscreenLineWidth
	if !c.positive(RuleSilkscreenLineWidth, "silkscreen_line_width", w) {
		return
	}
	if !c.p.Units.Known() {
		return
	}
	if ceiling := c.p.Units.SilkscreenCeiling(); w > ceiling {
		c.Addf(RuleSilkscreenLineWidth, "silkscreen_line_width",
			"silkscreen line width %g exceeds %g %s", w, ceiling, c.p.Units)
	}
}

// HeelToe flags axes with more than one heel/toe goal.
func (c *Checker) HeelToe() {
	for _, axis := range c.p.HeelToeConflicts() {
		c.Addf(RuleHeelToe, heelToeField(axis), "only one of C%d, G%d and Z%d may be set", axis, axis, axis)
	}
}

func heelToeField(axis int) string {
	if axis == 2 {
		return "c2"
	}
	return "c1"
}

// PadSize requires a positive pad length and width.
func (c *Checker) PadSize() {
	c.positive(RulePadSize, "pad_length", c.p.PadLength)
	c.positive(RulePadSize, "pad_width", c.p.PadWidth)
}

// PinSize requires a positive annulus diameter and a drill that fits inside
// it.
func (c *Checker) PinSize() {
	if !c.positive(RulePadSize, "pad_diameter", c.p.PadDiameter) {
		c.positive(RuleDrill, "pin_drill_diameter", c.p.PinDrillDiameter)
		return
	}
	if !c.positive(RuleDrill, "pin_drill_diameter", c.p.PinDrillDiameter) {
		return
	}
	if c.p.PinDrillDiameter >= c.p.PadDiameter {
		c.Addf(RuleDrill, "pin_drill_diameter", "drill %g leaves no annulus in pad diameter %g",
			c.p.PinDrillDiameter, c.p.PadDiameter)
	}
}

// Thermal requires a thermal pad size when a thermal pad is placed.
func (c *Checker) Thermal() {
	if !c.p.Thermal {
		return
	}
	c.positive(RuleThermal, "thermal_length", c.p.ThermalLength)
	c.positive(RuleThermal, "thermal_width", c.p.ThermalWidth)
}

// NoThermal flags a thermal pad on a kind that cannot carry one.
func (c *Checker) NoThermal() {
	if c.p.Thermal {
		c.Addf(RuleThermal, "thermal", "%s has no thermal pad", c.p.Type)
	}
}

// Pitch requires a positive pitch.
func (c *Checker) Pitch(field string, v float64) bool {
	return c.positive(RulePitch, field, v)
}

// PinCount requires the pin count to equal want.
func (c *Checker) PinCount(want int, why string) {
	if c.p.NumberOfPins != want {
		c.Addf(RulePinCount, "number_of_pins", "%s needs %d pins (%s), got %d",
			c.p.Type, want, why, c.p.NumberOfPins)
	}
}

// Count requires a positive count in field.
func (c *Checker) Count(field string, v int) bool {
	if v > 0 {
		return true
	}
	c.Addf(RulePinCount, field, "%s must be greater than zero, got %d", field, v)
	return false
}

func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
