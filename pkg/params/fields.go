package params

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
)

// ErrMalformedValue is returned when a non-empty field value cannot be parsed
// into the field's type.
var ErrMalformedValue = errors.New("params: malformed value")

// FieldKind is the storage type of a parameter field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldFloat
	FieldInt
	FieldBool
	FieldEnum
)

// Field describes one Parameters member by name, in the fixed order used by
// the wizard file and by footprint attributes.
type Field struct {
	Name string
	Kind FieldKind

	text    func(*Parameters) *string
	float   func(*Parameters) *float64
	integer func(*Parameters) *int
	flag    func(*Parameters) *bool
	enum    func(*Parameters) enumAccess
}

type enumAccess struct {
	get   func() string
	set   func(string) error
	reset func()
}

func textField(name string, f func(*Parameters) *string) Field {
	return Field{Name: name, Kind: FieldText, text: f}
}

func floatField(name string, f func(*Parameters) *float64) Field {
	return Field{Name: name, Kind: FieldFloat, float: f}
}

func intField(name string, f func(*Parameters) *int) Field {
	return Field{Name: name, Kind: FieldInt, integer: f}
}

func boolField(name string, f func(*Parameters) *bool) Field {
	return Field{Name: name, Kind: FieldBool, flag: f}
}

func enumField(name string, f func(*Parameters) enumAccess) Field {
	return Field{Name: name, Kind: FieldEnum, enum: f}
}

func enumOf[T fmt.Stringer](v *T, resolve func(string) (T, error)) enumAccess {
	return enumAccess{
		get: func() string { return (*v).String() },
		set: func(text string) error {
			r, err := resolve(text)
			if err != nil {
				return err
			}
			*v = r
			return nil
		},
		reset: func() {
			var zero T
			*v = zero
		},
	}
}

var fields = []Field{
	textField("footprint_filename", func(p *Parameters) *string { return &p.FootprintFilename }),
	textField("footprint_name", func(p *Parameters) *string { return &p.FootprintName }),
	enumField("footprint_type", func(p *Parameters) enumAccess { return enumOf(&p.Type, catalog.ResolvePackageKind) }),
	enumField("footprint_units", func(p *Parameters) enumAccess { return enumOf(&p.Units, catalog.ResolveUnits) }),
	textField("footprint_refdes", func(p *Parameters) *string { return &p.Refdes }),
	textField("footprint_value", func(p *Parameters) *string { return &p.Value }),
	floatField("package_body_length", func(p *Parameters) *float64 { return &p.PackageBodyLength }),
	floatField("package_body_width", func(p *Parameters) *float64 { return &p.PackageBodyWidth }),
	floatField("package_body_height", func(p *Parameters) *float64 { return &p.PackageBodyHeight }),
	boolField("package_is_radial", func(p *Parameters) *bool { return &p.PackageIsRadial }),
	textField("footprint_author", func(p *Parameters) *string { return &p.Author }),
	textField("footprint_dist_license", func(p *Parameters) *string { return &p.DistLicense }),
	textField("footprint_use_license", func(p *Parameters) *string { return &p.UseLicense }),
	enumField("footprint_status", func(p *Parameters) enumAccess { return enumOf(&p.Status, catalog.ResolveStatus) }),
	boolField("attributes_in_footprint", func(p *Parameters) *bool { return &p.AttributesInFootprint }),
	intField("number_of_pins", func(p *Parameters) *int { return &p.NumberOfPins }),
	intField("number_of_columns", func(p *Parameters) *int { return &p.NumberOfColumns }),
	intField("number_of_rows", func(p *Parameters) *int { return &p.NumberOfRows }),
	floatField("pitch_x", func(p *Parameters) *float64 { return &p.PitchX }),
	floatField("pitch_y", func(p *Parameters) *float64 { return &p.PitchY }),
	intField("count_x", func(p *Parameters) *int { return &p.CountX }),
	intField("count_y", func(p *Parameters) *int { return &p.CountY }),
	enumField("pad_shape", func(p *Parameters) enumAccess { return enumOf(&p.PadShape, catalog.ResolvePadShape) }),
	textField("pin_pad_exceptions", func(p *Parameters) *string { return &p.PinPadExceptions }),
	enumField("pin_1_position", func(p *Parameters) enumAccess { return enumOf(&p.Pin1Location, catalog.ResolvePin1Location) }),
	floatField("pad_diameter", func(p *Parameters) *float64 { return &p.PadDiameter }),
	floatField("pin_drill_diameter", func(p *Parameters) *float64 { return &p.PinDrillDiameter }),
	boolField("pin1_square", func(p *Parameters) *bool { return &p.Pin1Square }),
	floatField("pad_length", func(p *Parameters) *float64 { return &p.PadLength }),
	floatField("pad_width", func(p *Parameters) *float64 { return &p.PadWidth }),
	floatField("pad_clearance", func(p *Parameters) *float64 { return &p.PadClearance }),
	floatField("pad_solder_mask_clearance", func(p *Parameters) *float64 { return &p.PadSolderMaskClearance }),
	boolField("thermal", func(p *Parameters) *bool { return &p.Thermal }),
	boolField("thermal_nopaste", func(p *Parameters) *bool { return &p.ThermalNoPaste }),
	floatField("thermal_length", func(p *Parameters) *float64 { return &p.ThermalLength }),
	floatField("thermal_width", func(p *Parameters) *float64 { return &p.ThermalWidth }),
	floatField("thermal_clearance", func(p *Parameters) *float64 { return &p.ThermalClearance }),
	floatField("thermal_solder_mask_clearance", func(p *Parameters) *float64 { return &p.ThermalSolderMaskClearance }),
	boolField("fiducial", func(p *Parameters) *bool { return &p.Fiducial }),
	floatField("fiducial_pad_diameter", func(p *Parameters) *float64 { return &p.FiducialPadDiameter }),
	floatField("fiducial_pad_solder_mask_clearance", func(p *Parameters) *float64 { return &p.FiducialPadSolderMaskClearance }),
	boolField("silkscreen_package_outline", func(p *Parameters) *bool { return &p.SilkscreenPackageOutline }),
	boolField("silkscreen_indicate_1", func(p *Parameters) *bool { return &p.SilkscreenIndicateOne }),
	floatField("silkscreen_line_width", func(p *Parameters) *float64 { return &p.SilkscreenLineWidth }),
	boolField("courtyard", func(p *Parameters) *bool { return &p.Courtyard }),
	floatField("courtyard_length", func(p *Parameters) *float64 { return &p.CourtyardLength }),
	floatField("courtyard_width", func(p *Parameters) *float64 { return &p.CourtyardWidth }),
	floatField("courtyard_line_width", func(p *Parameters) *float64 { return &p.CourtyardLineWidth }),
	floatField("courtyard_clearance_with_package", func(p *Parameters) *float64 { return &p.CourtyardClearanceWithPackage }),
	floatField("c1", func(p *Parameters) *float64 { return &p.C1 }),
	floatField("g1", func(p *Parameters) *float64 { return &p.G1 }),
	floatField("z1", func(p *Parameters) *float64 { return &p.Z1 }),
	floatField("c2", func(p *Parameters) *float64 { return &p.C2 }),
	floatField("g2", func(p *Parameters) *float64 { return &p.G2 }),
	floatField("z2", func(p *Parameters) *float64 { return &p.Z2 }),
}

// Fields returns the parameter fields in wizard-file order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// FieldByName finds a field by its wizard/attribute name.
func FieldByName(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Format renders the field's value of p as a single line of text.
func (f Field) Format(p *Parameters) string {
	switch f.Kind {
	case FieldText:
		return *f.text(p)
	case FieldFloat:
		return strconv.FormatFloat(*f.float(p), 'f', -1, 64)
	case FieldInt:
		return strconv.Itoa(*f.integer(p))
	case FieldBool:
		if *f.flag(p) {
			return "1"
		}
		return "0"
	case FieldEnum:
		return f.enum(p).get()
	}
	return ""
}

// Number returns the value of a float or int field; ok is false for every
// other kind.
func (f Field) Number(p *Parameters) (v float64, ok bool) {
	switch f.Kind {
	case FieldFloat:
		return *f.float(p), true
	case FieldInt:
		return float64(*f.integer(p)), true
	}
	return 0, false
}

// Parse stores text into the field of p. Empty text yields the zero value.
// Non-finite or out-of-range numbers and unknown enumeration names are
// replaced by zero and reported through warn; only text that is not a
// number at all is an error.
func (f Field) Parse(p *Parameters, text string, warn WarnFunc) error {
	switch f.Kind {
	case FieldText:
		*f.text(p) = text
		return nil
	case FieldFloat:
		v, err := parseFloat(f.Name, strings.TrimSpace(text), warn)
		if err != nil {
			return err
		}
		*f.float(p) = v
		return nil
	case FieldInt:
		v, err := parseInt(f.Name, strings.TrimSpace(text), warn)
		if err != nil {
			return err
		}
		*f.integer(p) = v
		return nil
	case FieldBool:
		text = strings.TrimSpace(text)
		if text == "" {
			*f.flag(p) = false
			return nil
		}
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("%w: %s = %q", ErrMalformedValue, f.Name, text)
		}
		*f.flag(p) = v
		return nil
	case FieldEnum:
		access := f.enum(p)
		if text == "" {
			access.reset()
			return nil
		}
		if err := access.set(text); err != nil {
			access.reset()
			if warn != nil {
				warn("ignoring unrecognised value", "field", f.Name, "err", err)
			}
		}
		return nil
	}
	return fmt.Errorf("params: field %s has no kind", f.Name)
}

func parseFloat(field, text string, warn WarnFunc) (float64, error) {
	if text == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// ParseFloat reports overflow as ±Inf, underflow as 0.
			return Normalize(field, v, warn), nil
		}
		return 0, fmt.Errorf("%w: %s = %q", ErrMalformedValue, field, text)
	}
	return Normalize(field, v, warn), nil
}

func parseInt(field, text string, warn WarnFunc) (int, error) {
	if text == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(text)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if warn != nil {
			warn("substituting 0 for out-of-range integer", "field", field, "value", text)
		}
		return 0, nil
	}
	// Integers written as "8.000000" by older wizard files.
	if fv, ferr := strconv.ParseFloat(text, 64); ferr == nil {
		fv = Normalize(field, fv, warn)
		if fv == math.Trunc(fv) && math.Abs(fv) <= math.MaxInt32 {
			return int(fv), nil
		}
	}
	return 0, fmt.Errorf("%w: %s = %q", ErrMalformedValue, field, text)
}

// Attributes returns one name/value pair per parameter field, in wizard
// order, for embedding in a footprint.
func (p *Parameters) Attributes() [][2]string {
	attrs := make([][2]string, 0, len(fields))
	for _, f := range fields {
		attrs = append(attrs, [2]string{f.Name, f.Format(p)})
	}
	return attrs
}
