// Package packages holds one layout algorithm and one rule set per package
// kind. Every kind is registered once, at init, in a table keyed by
// catalog.PackageKind.
package packages

import (
	"fmt"
	"sort"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

// Family groups package kinds sharing a placement algorithm.
type Family string

const (
	FamilyTwoPad     Family = "two-pad SMD"
	FamilyAxial      Family = "axial THT"
	FamilyRadial     Family = "radial THT"
	FamilyDualRow    Family = "dual-row THT"
	FamilySingleRow  Family = "single-row THT"
	FamilyGrid       Family = "grid array"
	FamilyDualRowSMD Family = "dual-row SMD"
	FamilyQuad       Family = "quad SMD"
	FamilyTO92       Family = "TO-92"
)

// pin1 is where the family's layout puts pin 1 before any turn.
func (f Family) pin1() catalog.Pin1Location {
	switch f {
	case FamilyTwoPad, FamilyAxial, FamilyRadial, FamilySingleRow, FamilyTO92:
		return catalog.Pin1MiddleLeft
	}
	return catalog.Pin1UpperLeft
}

// opposite maps a pin #1 location to the one a half turn of the copper
// moves it to.
var opposite = map[catalog.Pin1Location]catalog.Pin1Location{
	catalog.Pin1UpperLeft:    catalog.Pin1LowerRight,
	catalog.Pin1LowerRight:   catalog.Pin1UpperLeft,
	catalog.Pin1MiddleLeft:   catalog.Pin1MiddleRight,
	catalog.Pin1MiddleRight:  catalog.Pin1MiddleLeft,
	catalog.Pin1LowerLeft:    catalog.Pin1UpperRight,
	catalog.Pin1UpperRight:   catalog.Pin1LowerLeft,
	catalog.Pin1MiddleTop:    catalog.Pin1MiddleBottom,
	catalog.Pin1MiddleBottom: catalog.Pin1MiddleTop,
}

// Package is the registry entry of one package kind.
type Package struct {
	Kind        catalog.PackageKind
	Description string
	Family      Family
	// Polarized kinds need their pin #1 marked; presets of the other kinds
	// leave the indicator off.
	Polarized bool

	copper func(*layout)
	silk   func(*layout)
	// mark replaces the generic pin #1 indicator.
	mark   func(*layout)
	check  func(*drc.Checker)
	derive func(*params.Parameters)
}

// Pin1Locations lists where the layout can put pin 1: its natural
// location, and the opposite one reached by turning the copper half way
// round, which keeps the numbering direction.
func (pkg Package) Pin1Locations() []catalog.Pin1Location {
	natural := pkg.Family.pin1()
	return []catalog.Pin1Location{natural, opposite[natural]}
}

// Generate computes the footprint geometry of p in internal units. It only
// fails when p's units are unknown; any other input is expected to have
// passed Validate.
func (pkg Package) Generate(p *params.Parameters) (*geometry.Model, error) {
	if !p.Units.Known() {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownUnit, p.Units.String())
	}
	l := newLayout(p)
	l.turned = p.Pin1Location == opposite[pkg.Family.pin1()]
	pkg.copper(l)
	l.fiducials()
	if l.drawOutline() {
		if pkg.silk != nil {
			pkg.silk(l)
		} else {
			l.rect(l.body)
		}
	}
	if pkg.mark != nil {
		pkg.mark(l)
	} else {
		l.indicator()
	}
	l.courtyard()
	l.attributes()
	return l.finish(), nil
}

// Validate runs the checks shared by every kind followed by the kind's own
// rules, returning every violation found.
func (pkg Package) Validate(p *params.Parameters) []drc.Violation {
	c := drc.New(p)
	c.Common()
	pkg.check(c)
	c.Pin1Location(pkg.Pin1Locations()...)
	return c.Violations()
}

// Derive back-derives dimensions from heel/toe goals, for the kinds that
// use them.
func (pkg Package) Derive(p *params.Parameters) {
	if pkg.derive != nil {
		pkg.derive(p)
	}
}

var registry = map[catalog.PackageKind]Package{}

func register(pkg Package) {
	if _, dup := registry[pkg.Kind]; dup {
		panic(fmt.Sprintf("packages: %s registered twice", pkg.Kind))
	}
	registry[pkg.Kind] = pkg
}

// Get returns the registry entry for kind.
func Get(kind catalog.PackageKind) (Package, error) {
	pkg, ok := registry[kind]
	if !ok {
		return Package{}, fmt.Errorf("%w: %q", catalog.ErrUnknownPackageKind, kind.String())
	}
	return pkg, nil
}

// Kinds lists every registered kind in catalog order.
func Kinds() []catalog.PackageKind {
	kinds := make([]catalog.PackageKind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Generate dispatches on p.Type.
func Generate(p *params.Parameters) (*geometry.Model, error) {
	pkg, err := Get(p.Type)
	if err != nil {
		return nil, err
	}
	return pkg.Generate(p)
}

// Validate checks p against the rules of kind. An unregistered kind is
// reported as a violation next to the common checks.
func Validate(kind catalog.PackageKind, p *params.Parameters) []drc.Violation {
	pkg, err := Get(kind)
	if err != nil {
		c := drc.New(p)
		c.Addf(drc.RulePackageKind, "footprint_type", "%v", err)
		c.Common()
		return c.Violations()
	}
	return pkg.Validate(p)
}

// Derive applies the heel/toe back-derivation of p.Type, if any.
func Derive(p *params.Parameters) {
	if pkg, err := Get(p.Type); err == nil {
		pkg.Derive(p)
	}
}

// derivePitchX sets the centre-centre pad distance from C1, G1 or Z1.
func derivePitchX(p *params.Parameters) {
	if span, ok := p.SpanX(); ok {
		p.PitchX = span
	}
}
