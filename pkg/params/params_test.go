package params

import (
	"fmt"
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warnings []string

func (w *warnings) warn(msg interface{}, keyvals ...interface{}) {
	*w = append(*w, fmt.Sprint(msg, keyvals))
}

func TestExceptions(t *testing.T) {
	p := Parameters{PinPadExceptions: "A1, B2  C3,,\tD4\n"}
	assert.Equal(t, []string{"A1", "B2", "C3", "D4"}, p.Exceptions())
	assert.True(t, p.IsException("C3"))
	assert.False(t, p.IsException("C"))
	assert.False(t, p.IsException(""))

	empty := Parameters{}
	assert.Empty(t, empty.Exceptions())
}

func TestDeriveSpan(t *testing.T) {
	tests := []struct {
		name    string
		c, g, z float64
		want    float64
		ok      bool
	}{
		{"centre", 1.9, 0, 0, 1.9, true},
		{"inner", 0, 1.35, 0, 1.9, true},
		{"outer", 0, 0, 2.45, 1.9, true},
		{"none", 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveSpan(tt.c, tt.g, tt.z, 0.55)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestHeelToeConflicts(t *testing.T) {
	p := Parameters{C1: 1, Z1: 2, G2: 1}
	assert.Equal(t, []int{1}, p.HeelToeConflicts())

	p = Parameters{C1: 1, C2: 1, G2: 2}
	assert.Equal(t, []int{2}, p.HeelToeConflicts())

	p = Parameters{C1: 1, C2: 1}
	assert.Empty(t, p.HeelToeConflicts())
}

func TestNormalize(t *testing.T) {
	var w warnings
	assert.Equal(t, 0.0, Normalize("pitch_x", math.NaN(), w.warn))
	assert.Equal(t, 0.0, Normalize("pitch_x", math.Inf(-1), w.warn))
	assert.Equal(t, 1.5, Normalize("pitch_x", 1.5, w.warn))
	assert.Len(t, w, 2)

	assert.Equal(t, 0.0, Normalize("pitch_x", math.Inf(1), nil))
}

func TestFieldOrder(t *testing.T) {
	fs := Fields()
	require.Len(t, fs, 55)
	assert.Equal(t, "footprint_filename", fs[0].Name)
	assert.Equal(t, "footprint_type", fs[2].Name)
	assert.Equal(t, "z2", fs[len(fs)-1].Name)

	seen := map[string]bool{}
	for _, f := range fs {
		assert.False(t, seen[f.Name], "duplicate field %s", f.Name)
		seen[f.Name] = true
	}
}

func TestFieldFormatParse(t *testing.T) {
	src := Parameters{
		FootprintName: "DIOMELF1911L",
		Type:          catalog.KindDIOMELF,
		Units:         catalog.UnitsMM,
		PitchX:        1.9,
		NumberOfPins:  2,
		Pin1Square:    true,
		PadShape:      catalog.PadShapeRoundElongated,
		Pin1Location:  catalog.Pin1MiddleLeft,
	}
	var dst Parameters
	for _, f := range Fields() {
		require.NoError(t, f.Parse(&dst, f.Format(&src), nil), f.Name)
	}
	assert.Equal(t, src, dst)
}

func TestFieldParseRecovers(t *testing.T) {
	var w warnings
	var p Parameters

	pitch, _ := FieldByName("pitch_x")
	require.NoError(t, pitch.Parse(&p, "NaN", w.warn))
	assert.Equal(t, 0.0, p.PitchX)
	require.NoError(t, pitch.Parse(&p, "1e999", w.warn))
	assert.Equal(t, 0.0, p.PitchX)
	require.NoError(t, pitch.Parse(&p, "", w.warn))
	assert.Equal(t, 0.0, p.PitchX)

	pins, _ := FieldByName("number_of_pins")
	require.NoError(t, pins.Parse(&p, "99999999999999999999999", w.warn))
	assert.Equal(t, 0, p.NumberOfPins)
	require.NoError(t, pins.Parse(&p, "8.000000", w.warn))
	assert.Equal(t, 8, p.NumberOfPins)

	units, _ := FieldByName("footprint_units")
	require.NoError(t, units.Parse(&p, "furlong", w.warn))
	assert.Equal(t, catalog.UnitsUnknown, p.Units)

	assert.Len(t, w, 4)
}

func TestFieldParseMalformed(t *testing.T) {
	var p Parameters
	pitch, _ := FieldByName("pitch_x")
	assert.ErrorIs(t, pitch.Parse(&p, "one point nine", nil), ErrMalformedValue)

	radial, _ := FieldByName("package_is_radial")
	assert.ErrorIs(t, radial.Parse(&p, "maybe", nil), ErrMalformedValue)

	pins, _ := FieldByName("number_of_pins")
	assert.ErrorIs(t, pins.Parse(&p, "8.5", nil), ErrMalformedValue)
}

func TestAttributes(t *testing.T) {
	p := Default()
	p.FootprintName = "SOIC127P600X175-8N"
	attrs := p.Attributes()
	require.Len(t, attrs, len(Fields()))
	assert.Equal(t, [2]string{"footprint_name", "SOIC127P600X175-8N"}, attrs[1])
	assert.Equal(t, [2]string{"footprint_units", "mm"}, attrs[3])
}
