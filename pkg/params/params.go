// Package params holds the Parameters record every stage of the footprint
// wizard reads: the catalog-typed identity of the footprint plus all of its
// physical dimensions, counts, flags and text fields.
package params

import (
	"math"
	"strings"
	"unicode"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
)

// Parameters describes one footprint in progress. Lengths are expressed in
// Units; nothing in this struct is shared between runs.
type Parameters struct {
	FootprintFilename string
	FootprintName     string
	Type              catalog.PackageKind
	Units             catalog.Units
	Refdes            string
	Value             string

	PackageBodyLength float64
	PackageBodyWidth  float64
	PackageBodyHeight float64
	PackageIsRadial   bool

	Author                string
	DistLicense           string
	UseLicense            string
	Status                catalog.Status
	AttributesInFootprint bool

	NumberOfPins     int
	NumberOfColumns  int
	NumberOfRows     int
	PitchX           float64
	PitchY           float64
	CountX           int
	CountY           int
	PadShape         catalog.PadShape
	PinPadExceptions string
	Pin1Location     catalog.Pin1Location

	PadDiameter            float64
	PinDrillDiameter       float64
	Pin1Square             bool
	PadLength              float64
	PadWidth               float64
	PadClearance           float64
	PadSolderMaskClearance float64

	Thermal                    bool
	ThermalNoPaste             bool
	ThermalLength              float64
	ThermalWidth               float64
	ThermalClearance           float64
	ThermalSolderMaskClearance float64

	Fiducial                       bool
	FiducialPadDiameter            float64
	FiducialPadSolderMaskClearance float64

	SilkscreenPackageOutline bool
	SilkscreenIndicateOne    bool
	SilkscreenLineWidth      float64

	Courtyard                     bool
	CourtyardLength               float64
	CourtyardWidth                float64
	CourtyardLineWidth            float64
	CourtyardClearanceWithPackage float64

	// Heel/toe goals. Per axis at most one of centre-centre (C), inner-inner
	// (G) or outer-outer (Z) is set.
	C1, G1, Z1 float64
	C2, G2, Z2 float64
}

// Default returns a metric parameter set with conservative clearances and
// line widths. Identity and geometry are left for the caller, and so is the
// pin #1 location: unset, each layout puts pin 1 where it naturally falls.
func Default() Parameters {
	return Parameters{
		Units:                         catalog.UnitsMM,
		Refdes:                        "U",
		Status:                        catalog.StatusExperimental,
		PadShape:                      catalog.PadShapeRectangular,
		PadClearance:                  0.15,
		PadSolderMaskClearance:        0.05,
		SilkscreenPackageOutline:      true,
		SilkscreenIndicateOne:         true,
		SilkscreenLineWidth:           0.15,
		Courtyard:                     true,
		CourtyardLineWidth:            0.05,
		CourtyardClearanceWithPackage: 0.25,
	}
}

// Exceptions splits the pin/pad exception list on commas and white space.
func (p *Parameters) Exceptions() []string {
	return strings.FieldsFunc(p.PinPadExceptions, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// IsException reports whether the pin or pad called name is listed as not
// physically present.
func (p *Parameters) IsException(name string) bool {
	if name == "" {
		return false
	}
	for _, e := range p.Exceptions() {
		if e == name {
			return true
		}
	}
	return false
}

// DeriveSpan back-derives a centre-centre span from a heel/toe goal: C is used
// as is, G is widened by one pad length and Z narrowed by one. It reports
// false when no goal is set.
func DeriveSpan(c, g, z, padLength float64) (float64, bool) {
	switch {
	case c > 0:
		return c, true
	case g > 0:
		return g + padLength, true
	case z > 0:
		return z - padLength, true
	default:
		return 0, false
	}
}

// SpanX derives the X span from C1/G1/Z1.
func (p *Parameters) SpanX() (float64, bool) {
	return DeriveSpan(p.C1, p.G1, p.Z1, p.PadLength)
}

// SpanY derives the Y span from C2/G2/Z2. Pads on the top and bottom rows
// are rotated, so their length runs along Y as well.
func (p *Parameters) SpanY() (float64, bool) {
	return DeriveSpan(p.C2, p.G2, p.Z2, p.PadLength)
}

// HeelToeConflicts returns the axes (1 and/or 2) that have more than one
// heel/toe goal set.
func (p *Parameters) HeelToeConflicts() []int {
	var axes []int
	if countSet(p.C1, p.G1, p.Z1) > 1 {
		axes = append(axes, 1)
	}
	if countSet(p.C2, p.G2, p.Z2) > 1 {
		axes = append(axes, 2)
	}
	return axes
}

func countSet(values ...float64) int {
	n := 0
	for _, v := range values {
		if v != 0 {
			n++
		}
	}
	return n
}

// WarnFunc receives recoverable problems. It matches the signature of
// (*log.Logger).Warn.
type WarnFunc func(msg interface{}, keyvals ...interface{})

// Normalize replaces NaN and infinite values with 0, reporting the
// substitution through warn.
func Normalize(field string, v float64, warn WarnFunc) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if warn != nil {
			warn("substituting 0 for non-finite value", "field", field, "value", v)
		}
		return 0
	}
	return v
}
