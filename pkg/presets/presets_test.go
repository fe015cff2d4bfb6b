package presets_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/packages"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/presets"
)

func TestApplyQuery(t *testing.T) {
	p := params.Default()
	p.Type = catalog.KindDIOMELF
	p.Author = "someone"
	p.FootprintFilename = "melf.fp"

	require.NoError(t, presets.Apply(&p, "?DIOMELF1911L"))

	assert.Equal(t, "DIOMELF1911L", p.FootprintName)
	assert.Equal(t, catalog.UnitsMM, p.Units)
	assert.InDelta(t, 1.90, p.PitchX, 1e-9)
	assert.InDelta(t, 0.55, p.PadLength, 1e-9)
	assert.InDelta(t, 1.30, p.PadWidth, 1e-9)
	assert.Equal(t, "someone", p.Author)
	assert.Equal(t, "melf.fp", p.FootprintFilename)
	assert.Equal(t, "D", p.Refdes)
}

func TestApplyCallerFields(t *testing.T) {
	p := params.Parameters{
		Type:        catalog.KindSO,
		Value:       "dropped",
		DistLicense: "CERN-OHL-S",
		Status:      catalog.StatusStable,
		PitchY:      9.9,
	}
	require.NoError(t, presets.Apply(&p, "SOIC127P600X175-8N"))

	// Set caller fields survive, unset ones come from the preset.
	assert.Equal(t, "CERN-OHL-S", p.DistLicense)
	assert.Equal(t, catalog.StatusStable, p.Status)
	assert.Empty(t, p.Author)
	assert.Equal(t, "SOIC127P600X175-8N.fp", p.FootprintFilename)

	// Everything else is the preset's.
	preset, err := presets.Lookup(catalog.KindSO, "SOIC127P600X175-8N")
	require.NoError(t, err)
	assert.Equal(t, preset.Value, p.Value)
	assert.InDelta(t, 1.27, p.PitchY, 1e-9)

	p = params.Parameters{Type: catalog.KindSO}
	require.NoError(t, presets.Apply(&p, "SOIC127P600X175-8N"))
	assert.Equal(t, preset.Status, p.Status)
}

func TestApplyDefaultsFilename(t *testing.T) {
	p := params.Default()
	p.Type = catalog.KindRESC
	require.NoError(t, presets.Apply(&p, "RESC1608X55N"))
	assert.Equal(t, "RESC1608X55N.fp", p.FootprintFilename)
}

func TestApplyNotFound(t *testing.T) {
	p := params.Default()
	p.Type = catalog.KindRESC
	p.PitchX = 3.3

	err := presets.Apply(&p, "?NOSUCHPART")
	require.ErrorIs(t, err, presets.ErrPresetNotFound)
	assert.Contains(t, err.Error(), "NOSUCHPART")
	assert.Equal(t, "NOSUCHPART", p.FootprintName)
	assert.Equal(t, 3.3, p.PitchX)
}

func TestLookupIsPerKind(t *testing.T) {
	_, err := presets.Lookup(catalog.KindCAPC, "RESC1608X55N")
	assert.ErrorIs(t, err, presets.ErrPresetNotFound)

	p, err := presets.Lookup(catalog.KindRESC, "?RESC1608X55N")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindRESC, p.Type)
}

func TestLookupReturnsCopy(t *testing.T) {
	p, err := presets.Lookup(catalog.KindSO, "SOIC127P600X175-8N")
	require.NoError(t, err)
	p.PitchY = 99

	again, err := presets.Lookup(catalog.KindSO, "SOIC127P600X175-8N")
	require.NoError(t, err)
	assert.Equal(t, 1.27, again.PitchY)
}

func TestIsQuery(t *testing.T) {
	assert.True(t, presets.IsQuery("?DIP8"))
	assert.False(t, presets.IsQuery("DIP8"))
	assert.False(t, presets.IsQuery(""))
}

func TestNamesSorted(t *testing.T) {
	for _, kind := range catalog.PackageKinds() {
		names := presets.Names(kind)
		assert.NotEmpty(t, names, kind.String())
		assert.True(t, sort.StringsAreSorted(names), kind.String())
	}
	assert.Empty(t, presets.Names(catalog.KindUnknown))
}

// Every built-in part must pass its kind's rules and produce a courtyard
// that encloses all of its copper.
func TestPresetsAreClean(t *testing.T) {
	total := 0
	for _, kind := range catalog.PackageKinds() {
		for _, name := range presets.Names(kind) {
			total++
			p, err := presets.Lookup(kind, name)
			require.NoError(t, err)
			assert.Equal(t, name, p.FootprintName)

			packages.Derive(&p)
			if v := packages.Validate(kind, &p); !assert.Empty(t, v, name) {
				continue
			}
			m, err := packages.Generate(&p)
			require.NoError(t, err, name)
			assert.True(t, m.Courtyard.ContainsBox(m.CopperExtent()), name)
		}
	}
	assert.Equal(t, presets.Count(), total)
}

func TestImperialDIP(t *testing.T) {
	p, err := presets.Lookup(catalog.KindDIP, "DIP16")
	require.NoError(t, err)
	assert.Equal(t, catalog.UnitsMil, p.Units)
	assert.Equal(t, 16, p.NumberOfPins)
	assert.Equal(t, 300.0, p.PitchX)
	assert.Equal(t, 100.0, p.PitchY)
}

func TestExposedPad(t *testing.T) {
	p, err := presets.Lookup(catalog.KindQFN, "QFN50P400X400X90-25N")
	require.NoError(t, err)
	assert.True(t, p.Thermal)
	assert.Equal(t, 24, p.NumberOfPins)
	assert.InDelta(t, 2.7, p.ThermalLength, 1e-9)
}
