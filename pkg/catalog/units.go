package catalog

// Units is the unit system footprint dimensions are entered in.
type Units int

const (
	UnitsUnknown Units = iota
	UnitsMil
	UnitsMil100
	UnitsMM
)

var unitNames = []string{"", "mil", "mil/100", "mm"}

var unitTable = index[Units](unitNames)

// Multipliers convert a value in the given unit into 1/100 mil, the
// fixed-point unit of the footprint file.
const (
	milMultiplier    = 100.0
	mil100Multiplier = 1.0
	mmMultiplier     = 1000.0 / 25.4 * 100.0
)

// ResolveUnits maps a unit name ("mil", "mil/100", "mm") to its Units value.
func ResolveUnits(text string) (Units, error) {
	return resolve(unitTable, text, ErrUnknownUnit)
}

func (u Units) String() string { return name(unitNames, u) }

// Known reports whether u resolved to a unit system.
func (u Units) Known() bool { return u > UnitsUnknown && int(u) < len(unitNames) }

// Multiplier returns the factor converting u into 1/100 mil. It is 0 for an
// unresolved unit.
func (u Units) Multiplier() float64 {
	switch u {
	case UnitsMil:
		return milMultiplier
	case UnitsMil100:
		return mil100Multiplier
	case UnitsMM:
		return mmMultiplier
	default:
		return 0
	}
}

// SilkscreenCeiling is the widest silkscreen line accepted by the DRC in
// u: 40 mil for the imperial units and a rounded 1.0 mm (about 39.4 mil)
// for metric.
func (u Units) SilkscreenCeiling() float64 {
	switch u {
	case UnitsMil:
		return 40.0
	case UnitsMil100:
		return 4000.0
	case UnitsMM:
		return 1.0
	default:
		return 0
	}
}
