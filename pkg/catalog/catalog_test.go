package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnits(t *testing.T) {
	tests := []struct {
		text       string
		want       Units
		multiplier float64
	}{
		{"mil", UnitsMil, 100.0},
		{"mil/100", UnitsMil100, 1.0},
		{"mm", UnitsMM, 3937.0078740157483},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			u, err := ResolveUnits(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u)
			assert.InDelta(t, tt.multiplier, u.Multiplier(), 1e-9)
			assert.Equal(t, tt.text, u.String())
		})
	}
}

func TestResolveUnitsUnknown(t *testing.T) {
	for _, text := range []string{"", "MM", "inch", "mil/10", " mm"} {
		u, err := ResolveUnits(text)
		if !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("ResolveUnits(%q) error = %v, want ErrUnknownUnit", text, err)
		}
		if u != UnitsUnknown {
			t.Errorf("ResolveUnits(%q) = %v, want UnitsUnknown", text, u)
		}
		if u.Multiplier() != 0 {
			t.Errorf("unknown unit multiplier = %v, want 0", u.Multiplier())
		}
	}
}

func TestSilkscreenCeiling(t *testing.T) {
	assert.Equal(t, 40.0, UnitsMil.SilkscreenCeiling())
	assert.Equal(t, 4000.0, UnitsMil100.SilkscreenCeiling())
	assert.Equal(t, 1.0, UnitsMM.SilkscreenCeiling())
	assert.Equal(t, 0.0, UnitsUnknown.SilkscreenCeiling())

	// The imperial ceilings are exactly 40 mil; 1.0 mm falls just short.
	for _, u := range []Units{UnitsMil, UnitsMil100} {
		assert.InDelta(t, 4000.0, u.SilkscreenCeiling()*u.Multiplier(), 1e-6, u.String())
	}
	assert.InDelta(t, 3937.0, UnitsMM.SilkscreenCeiling()*UnitsMM.Multiplier(), 0.01)
}

func TestPackageKindRoundTrip(t *testing.T) {
	kinds := PackageKinds()
	require.Len(t, kinds, len(kindNames)-1)

	for _, k := range kinds {
		got, err := ResolvePackageKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
		assert.True(t, k.Known())
	}

	_, err := ResolvePackageKind("DIOMEL")
	assert.ErrorIs(t, err, ErrUnknownPackageKind)
	_, err = ResolvePackageKind("diomelf")
	assert.ErrorIs(t, err, ErrUnknownPackageKind)
	assert.False(t, KindUnknown.Known())
}

func TestResolvePadShape(t *testing.T) {
	s, err := ResolvePadShape("rounded pad, elongated")
	require.NoError(t, err)
	assert.Equal(t, PadShapeRoundElongated, s)

	_, err = ResolvePadShape("rounded pad")
	assert.ErrorIs(t, err, ErrUnknownPadShape)
	_, err = ResolvePadShape("")
	assert.ErrorIs(t, err, ErrUnknownPadShape)
}

func TestResolvePin1Location(t *testing.T) {
	for i := 1; i < len(pin1Names); i++ {
		l, err := ResolvePin1Location(pin1Names[i])
		require.NoError(t, err)
		assert.Equal(t, Pin1Location(i), l)
	}
	_, err := ResolvePin1Location("upper left")
	assert.ErrorIs(t, err, ErrUnknownPin1Location)
}

func TestResolveStatus(t *testing.T) {
	s, err := ResolveStatus("Stable")
	require.NoError(t, err)
	assert.Equal(t, StatusStable, s)

	_, err = ResolveStatus("Deprecated")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, "", StatusNone.String())
}
