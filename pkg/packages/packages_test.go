package packages

import (
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns a metric parameter set for kind that passes DRC.
func sample(kind catalog.PackageKind) params.Parameters {
	p := params.Default()
	p.Type = kind
	p.FootprintName = kind.String() + "-TEST"
	p.NumberOfPins = 2

	tht := func(l, w, h, pitch float64) {
		p.PadShape = catalog.PadShapeCircular
		p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = l, w, h
		p.PitchX = pitch
		p.PadDiameter = 1.6
		p.PinDrillDiameter = 0.8
	}

	switch kind {
	case catalog.KindCAPC, catalog.KindCAPM, catalog.KindCAPMP, catalog.KindDIOM,
		catalog.KindDIOMELF, catalog.KindINDC, catalog.KindINDM, catalog.KindRESC, catalog.KindRESM:
		p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = 2.0, 1.25, 0.6
		p.PitchX = 1.9
		p.PadLength, p.PadWidth = 1.0, 1.3
	case catalog.KindCAPA, catalog.KindRES:
		tht(6.3, 2.5, 2.5, 10.16)
	case catalog.KindCAPPR:
		tht(5.0, 5.0, 11.0, 2.5)
		p.PackageIsRadial = true
	case catalog.KindDIP, catalog.KindConDIP:
		tht(6.35, 9.5, 3.3, 7.62)
		p.PitchY = 2.54
		p.NumberOfPins = 8
		p.Pin1Square = true
	case catalog.KindConDIL:
		tht(12.7, 5.08, 8.5, 2.54)
		p.PitchY = 2.54
		p.NumberOfColumns = 5
		p.NumberOfPins = 10
	case catalog.KindSIL, catalog.KindConSIL:
		tht(15.5, 2.6, 8.5, 2.54)
		p.NumberOfPins = 6
	case catalog.KindPGA:
		tht(10, 10, 2.5, 2.54)
		p.PitchY = 2.54
		p.NumberOfRows, p.NumberOfColumns, p.NumberOfPins = 3, 3, 9
	case catalog.KindBGA:
		p.PadShape = catalog.PadShapeCircular
		p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = 4, 4, 1.2
		p.PitchX, p.PitchY = 0.8, 0.8
		p.PadDiameter = 0.4
		p.NumberOfRows, p.NumberOfColumns, p.NumberOfPins = 4, 4, 16
	case catalog.KindSO:
		p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = 3.9, 4.9, 1.5
		p.NumberOfPins = 8
		p.PitchX, p.PitchY = 5.4, 1.27
		p.PadLength, p.PadWidth = 1.55, 0.6
	case catalog.KindQFP:
		p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = 7, 7, 1.4
		p.CountX, p.CountY, p.NumberOfPins = 8, 8, 32
		p.PitchX, p.PitchY = 0.8, 0.8
		p.PadLength, p.PadWidth = 1.5, 0.45
		p.C1, p.C2 = 8.5, 8.5
	case catalog.KindQFN:
		p.PackageBodyLength, p.PackageBodyWidth, p.PackageBodyHeight = 3, 3, 0.9
		p.CountX, p.CountY, p.NumberOfPins = 4, 4, 16
		p.PitchX, p.PitchY = 0.5, 0.5
		p.PadLength, p.PadWidth = 0.8, 0.3
		p.C1, p.C2 = 3.0, 3.0
		p.Thermal, p.ThermalNoPaste = true, true
		p.ThermalLength, p.ThermalWidth = 1.7, 1.7
	case catalog.KindTO92:
		tht(4.8, 3.8, 4.8, 1.27)
		p.PadDiameter = 1.0
		p.PinDrillDiameter = 0.6
		p.NumberOfPins = 3
	}
	p.CourtyardLength = p.PackageBodyLength + 1
	p.CourtyardWidth = p.PackageBodyWidth + 1
	return p
}

func extents(m *geometry.Model) []geometry.BoundingBox {
	var out []geometry.BoundingBox
	for _, pin := range m.Pins {
		out = append(out, pin.Extent())
	}
	for _, pad := range m.Pads {
		out = append(out, pad.Extent())
	}
	return out
}

func numbers(m *geometry.Model) []string {
	var out []string
	for _, pin := range m.Pins {
		out = append(out, pin.Number)
	}
	for _, pad := range m.Pads {
		out = append(out, pad.Number)
	}
	return out
}

func TestEveryKindRegistered(t *testing.T) {
	assert.Equal(t, catalog.PackageKinds(), Kinds())
	for _, kind := range catalog.PackageKinds() {
		pkg, err := Get(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, pkg.Kind)
		assert.NotEmpty(t, pkg.Description)
	}

	_, err := Get(catalog.KindUnknown)
	assert.True(t, errors.Is(err, catalog.ErrUnknownPackageKind))
}

func TestSamplesGenerate(t *testing.T) {
	wantCopper := map[catalog.PackageKind]int{
		catalog.KindCAPA: 2, catalog.KindRES: 2, catalog.KindCAPPR: 2,
		catalog.KindDIP: 8, catalog.KindConDIP: 8, catalog.KindConDIL: 10,
		catalog.KindSIL: 6, catalog.KindConSIL: 6,
		catalog.KindBGA: 16, catalog.KindPGA: 9,
		catalog.KindSO: 8, catalog.KindQFP: 32, catalog.KindQFN: 17,
		catalog.KindTO92: 3,
	}

	for _, kind := range catalog.PackageKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			p := sample(kind)
			Derive(&p)
			require.Empty(t, Validate(kind, &p))

			m, err := Generate(&p)
			require.NoError(t, err)

			want, ok := wantCopper[kind]
			if !ok {
				want = 2
			}
			assert.Len(t, extents(m), want)
			for _, e := range extents(m) {
				assert.True(t, m.Courtyard.ContainsBox(e), "courtyard %+v does not contain %+v", m.Courtyard, e)
			}
			assert.Less(t, m.TextAnchor.Y, m.Courtyard.Min.Y)
			assert.NotEmpty(t, m.Lines)
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := sample(catalog.KindQFP)
	a, err := Generate(&p)
	require.NoError(t, err)
	b, err := Generate(&p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateUnknownUnits(t *testing.T) {
	p := sample(catalog.KindRESC)
	p.Units = catalog.UnitsUnknown
	_, err := Generate(&p)
	assert.True(t, errors.Is(err, catalog.ErrUnknownUnit))

	p = sample(catalog.KindRESC)
	p.Type = catalog.KindUnknown
	_, err = Generate(&p)
	assert.True(t, errors.Is(err, catalog.ErrUnknownPackageKind))
}

func TestTwoPadCopperClearance(t *testing.T) {
	p := sample(catalog.KindDIOMELF)
	p.PitchX = 1.0
	p.PadLength = 1.0
	p.PadClearance = 0.5

	var found bool
	for _, v := range Validate(p.Type, &p) {
		if v.Rule == drc.RuleCopperClearanceX {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateUnknownKind(t *testing.T) {
	p := sample(catalog.KindRESC)
	vs := Validate(catalog.KindUnknown, &p)
	require.NotEmpty(t, vs)
	assert.Equal(t, drc.RulePackageKind, vs[0].Rule)
}

func TestTwoPadSymmetric(t *testing.T) {
	p := sample(catalog.KindDIOMELF)
	p.PitchX, p.PadLength, p.PadWidth = 1.90, 0.55, 1.30
	p.Courtyard = false
	p.SilkscreenPackageOutline = false
	p.SilkscreenIndicateOne = false

	m, err := Generate(&p)
	require.NoError(t, err)
	require.Len(t, m.Pads, 2)
	assert.Empty(t, m.Lines)

	left, right := m.Pads[0], m.Pads[1]
	assert.InDelta(t, -right.Start.X, left.End.X, 1e-6)
	assert.InDelta(t, -right.End.X, left.Start.X, 1e-6)
	assert.InDelta(t, 0.55*catalog.UnitsMM.Multiplier(), left.Width, 1e-6)
	assert.Equal(t, "1", left.Number)
	assert.Equal(t, "square", left.Flags.String())
}

func TestDeriveFromHeelToe(t *testing.T) {
	p := sample(catalog.KindRESC)
	p.G1 = 0.9
	Derive(&p)
	assert.InDelta(t, 1.9, p.PitchX, 1e-9)

	p = sample(catalog.KindRESC)
	p.Z1 = 2.9
	Derive(&p)
	assert.InDelta(t, 1.9, p.PitchX, 1e-9)

	// Kinds without heel/toe goals keep their pitch.
	p = sample(catalog.KindDIP)
	p.C1 = 10
	Derive(&p)
	assert.Equal(t, 7.62, p.PitchX)
}

func TestExceptionsSkipPositions(t *testing.T) {
	p := sample(catalog.KindDIP)
	p.PinPadExceptions = "2, 7"
	m, err := Generate(&p)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "4", "5", "6", "8"}, numbers(m))
}

func TestDIPNumbering(t *testing.T) {
	p := sample(catalog.KindDIP)
	m, err := Generate(&p)
	require.NoError(t, err)

	byNumber := map[string]geometry.Pin{}
	for _, pin := range m.Pins {
		byNumber[pin.Number] = pin
	}
	// Pin 1 top left, pin 4 bottom left, pin 5 bottom right, pin 8 top right.
	assert.Less(t, byNumber["1"].Center.X, 0.0)
	assert.Less(t, byNumber["1"].Center.Y, byNumber["4"].Center.Y)
	assert.Greater(t, byNumber["5"].Center.X, 0.0)
	assert.Equal(t, byNumber["4"].Center.Y, byNumber["5"].Center.Y)
	assert.Equal(t, byNumber["1"].Center.Y, byNumber["8"].Center.Y)

	assert.Equal(t, "square", byNumber["1"].Flags.String())
	assert.Equal(t, "", byNumber["2"].Flags.String())
}

func TestConDILZigZag(t *testing.T) {
	p := sample(catalog.KindConDIL)
	m, err := Generate(&p)
	require.NoError(t, err)
	require.Len(t, m.Pins, 10)
	assert.Equal(t, m.Pins[0].Center.X, m.Pins[1].Center.X)
	assert.Less(t, m.Pins[0].Center.Y, m.Pins[1].Center.Y)
	assert.Equal(t, "3", m.Pins[2].Number)
	assert.Less(t, m.Pins[0].Center.X, m.Pins[2].Center.X)
}

func TestOctagonalPins(t *testing.T) {
	p := sample(catalog.KindSIL)
	p.PadShape = catalog.PadShapeOctagonal
	m, err := Generate(&p)
	require.NoError(t, err)
	assert.Equal(t, "octagon", m.Pins[1].Flags.String())

	p = sample(catalog.KindRESC)
	p.PadShape = catalog.PadShapeOctagonal
	assert.NotEmpty(t, Validate(p.Type, &p))
}

func TestQuadNumbering(t *testing.T) {
	p := sample(catalog.KindQFP)
	m, err := Generate(&p)
	require.NoError(t, err)
	require.Len(t, m.Pads, 32)

	first, last := m.Pads[0], m.Pads[31]
	assert.Equal(t, "1", first.Number)
	assert.Less(t, first.Start.X, 0.0)
	assert.Less(t, first.Start.Y, 0.0)
	// Left pads lie along X, top pads along Y.
	assert.Equal(t, first.Start.Y, first.End.Y)
	assert.Equal(t, "32", last.Number)
	assert.Equal(t, last.Start.X, last.End.X)
	assert.Less(t, last.Start.Y, 0.0)

	// Pad 9 is the leftmost pad of the bottom row.
	assert.Greater(t, m.Pads[8].Start.Y, 0.0)
	assert.Less(t, m.Pads[8].Start.X, m.Pads[9].Start.X)
}

func TestQuadNeedsSpans(t *testing.T) {
	p := sample(catalog.KindQFN)
	p.C1 = 0
	var rules []drc.Rule
	for _, v := range Validate(p.Type, &p) {
		rules = append(rules, v.Rule)
	}
	assert.Contains(t, rules, drc.RuleHeelToe)
}

func TestThermalPad(t *testing.T) {
	p := sample(catalog.KindQFN)
	m, err := Generate(&p)
	require.NoError(t, err)

	th := m.Pads[len(m.Pads)-1]
	assert.Equal(t, "17", th.Number)
	assert.Equal(t, "square,nopaste", th.Flags.String())
	assert.Equal(t, geometry.Point{}, th.Start)

	p.Thermal = false
	p.ThermalLength = 0
	assert.Empty(t, Validate(p.Type, &p))

	p = sample(catalog.KindRESC)
	p.Thermal = true
	p.ThermalLength, p.ThermalWidth = 1, 1
	assert.NotEmpty(t, Validate(p.Type, &p))
}

func TestFiducials(t *testing.T) {
	p := sample(catalog.KindSO)
	p.Fiducial = true
	p.FiducialPadDiameter = 1.0
	p.FiducialPadSolderMaskClearance = 1.0
	require.Empty(t, Validate(p.Type, &p))

	m, err := Generate(&p)
	require.NoError(t, err)

	var fids []geometry.Pad
	copper := geometry.NewBoundingBox()
	for _, pad := range m.Pads {
		if strings.HasPrefix(pad.Name, "FID") {
			fids = append(fids, pad)
			continue
		}
		copper.ExpandBox(pad.Extent())
	}
	require.Len(t, fids, 2)
	assert.Equal(t, "FID1", fids[0].Name)
	assert.Equal(t, "FID2", fids[1].Name)
	for _, f := range fids {
		assert.False(t, overlaps(copper, f.Extent()))
		assert.True(t, m.Courtyard.ContainsBox(f.Extent()))
	}
	assert.Less(t, fids[0].Start.X, copper.Min.X)
	assert.Greater(t, fids[1].Start.Y, copper.Max.Y)
}

// overlaps reports whether a and b share a non-zero area.
func overlaps(a, b geometry.BoundingBox) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

func TestSilkscreenClearsCopper(t *testing.T) {
	for _, kind := range []catalog.PackageKind{catalog.KindDIP, catalog.KindQFN, catalog.KindSO, catalog.KindDIOMELF} {
		p := sample(kind)
		p.Courtyard = false
		m, err := Generate(&p)
		require.NoError(t, err)
		require.NotEmpty(t, m.Lines, kind)

		for _, line := range m.Lines {
			half := line.Width / 2
			drawn := geometry.Box(line.Start.X, line.Start.Y, line.End.X, line.End.Y).Grow(half)
			for _, e := range extents(m) {
				assert.False(t, overlaps(drawn, e), "%s: line %+v overlaps copper %+v", kind, line, e)
			}
		}
	}
}

func TestKeepoutsFollowCopper(t *testing.T) {
	p := sample(catalog.KindRESC)
	l := newLayout(&p)
	l.pad(geometry.Point{X: -1}, 0.5, 0.5, 1, "")

	first := l.keepouts()
	require.Len(t, first, 1)
	again := l.keepouts()
	assert.Same(t, &first[0], &again[0])

	// Copper placed after a line is drawn still clears later lines.
	l.line(geometry.Point{X: -2}, geometry.Point{X: 2})
	require.Len(t, l.m.Lines, 2)
	l.pad(geometry.Point{X: 1}, 0.5, 0.5, 2, "")
	require.Len(t, l.keepouts(), 2)
	l.line(geometry.Point{X: -2, Y: 0.1}, geometry.Point{X: 2, Y: 0.1})
	assert.Len(t, l.m.Lines, 5)
}

func TestZeroWidthsSuppressLines(t *testing.T) {
	p := sample(catalog.KindDIP)
	p.SilkscreenLineWidth = 0
	p.CourtyardLineWidth = 0
	m, err := Generate(&p)
	require.NoError(t, err)
	assert.Empty(t, m.Lines)
	assert.Empty(t, m.Arcs)
	assert.False(t, m.Courtyard.IsEmpty())
}

func TestCourtyardUnion(t *testing.T) {
	p := sample(catalog.KindRESC)
	k := catalog.UnitsMM.Multiplier()

	// An undersized courtyard never shrinks the computed minimum.
	p.CourtyardLength, p.CourtyardWidth = 0.1, 0.1
	m, err := Generate(&p)
	require.NoError(t, err)
	assert.InDelta(t, (1.9+1.0+2*0.05)*k, m.Courtyard.Width(), 1e-6)
	assert.InDelta(t, (1.25+2*0.25)*k, m.Courtyard.Height(), 1e-6)

	// A larger one wins.
	p.CourtyardLength, p.CourtyardWidth = 6, 4
	m, err = Generate(&p)
	require.NoError(t, err)
	assert.InDelta(t, 6*k, m.Courtyard.Width(), 1e-6)
	assert.InDelta(t, 4*k, m.Courtyard.Height(), 1e-6)
}

func TestPolarizedIndicator(t *testing.T) {
	p := sample(catalog.KindDIOMELF)
	p.Courtyard = false
	p.SilkscreenPackageOutline = false
	m, err := Generate(&p)
	require.NoError(t, err)
	require.Len(t, m.Lines, 1)
	assert.Less(t, m.Lines[0].Start.X, 0.0)

	// Unpolarized kinds follow the same flag.
	p.Type = catalog.KindRESC
	m, err = Generate(&p)
	require.NoError(t, err)
	require.Len(t, m.Lines, 1)
	assert.Less(t, m.Lines[0].Start.X, 0.0)

	p.SilkscreenIndicateOne = false
	m, err = Generate(&p)
	require.NoError(t, err)
	assert.Empty(t, m.Lines)

	// Balls sit inside the body, so BGA gets a dot.
	p = sample(catalog.KindBGA)
	p.SilkscreenPackageOutline = false
	m, err = Generate(&p)
	require.NoError(t, err)
	require.Len(t, m.Arcs, 1)
	assert.Equal(t, 360.0, m.Arcs[0].Delta)
}

// firstCopper returns the centre of the first pin or pad placed.
func firstCopper(m *geometry.Model) geometry.Point {
	if len(m.Pins) > 0 {
		return m.Pins[0].Center
	}
	pad := m.Pads[0]
	return geometry.Point{X: (pad.Start.X + pad.End.X) / 2, Y: (pad.Start.Y + pad.End.Y) / 2}
}

func TestPin1LocationTurnsCopper(t *testing.T) {
	tests := []struct {
		kind            catalog.PackageKind
		natural, turned catalog.Pin1Location
	}{
		{catalog.KindQFP, catalog.Pin1UpperLeft, catalog.Pin1LowerRight},
		{catalog.KindDIP, catalog.Pin1UpperLeft, catalog.Pin1LowerRight},
		{catalog.KindBGA, catalog.Pin1UpperLeft, catalog.Pin1LowerRight},
		{catalog.KindRESC, catalog.Pin1MiddleLeft, catalog.Pin1MiddleRight},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := sample(tt.kind)
			p.Pin1Location = tt.natural
			require.Empty(t, Validate(p.Type, &p))
			natural, err := Generate(&p)
			require.NoError(t, err)

			p.Pin1Location = tt.turned
			require.Empty(t, Validate(p.Type, &p))
			turned, err := Generate(&p)
			require.NoError(t, err)

			assert.NotEqual(t, natural, turned)
			a, b := firstCopper(natural), firstCopper(turned)
			assert.Less(t, a.X, 0.0)
			assert.InDelta(t, -a.X, b.X, 1e-6)
			assert.InDelta(t, -a.Y, b.Y, 1e-6)
			assert.Equal(t, len(natural.Lines)+len(natural.Arcs), len(turned.Lines)+len(turned.Arcs))
		})
	}
}

func TestPin1LocationRejected(t *testing.T) {
	p := sample(catalog.KindQFP)
	p.Pin1Location = catalog.Pin1LowerLeft
	var found bool
	for _, v := range Validate(p.Type, &p) {
		if v.Rule == drc.RulePin1Location {
			found = true
			assert.Equal(t, "pin_1_position", v.Field)
		}
	}
	assert.True(t, found)

	// Every kind offers its natural location and the opposite one.
	for _, kind := range catalog.PackageKinds() {
		pkg, err := Get(kind)
		require.NoError(t, err)
		locs := pkg.Pin1Locations()
		require.Len(t, locs, 2, kind)
		assert.NotEqual(t, locs[0], locs[1], kind)
	}
}

func TestGridNames(t *testing.T) {
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "A1"},
		{7, 2, "H3"},
		{8, 0, "J1"},
		{12, 4, "N5"},
		{13, 4, "P5"},
		{19, 0, "Y1"},
		{20, 0, "AA1"},
		{21, 9, "AB10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gridName(tt.row, tt.col))
	}
}

func TestGridExceptions(t *testing.T) {
	p := sample(catalog.KindBGA)
	p.PinPadExceptions = "B2 B3 C2 C3"
	assert.NotEmpty(t, Validate(p.Type, &p))

	p.NumberOfPins = 12
	require.Empty(t, Validate(p.Type, &p))
	m, err := Generate(&p)
	require.NoError(t, err)
	assert.Len(t, m.Pads, 12)
	assert.NotContains(t, numbers(m), "B2")
	assert.Contains(t, numbers(m), "D4")
}

func TestTO92Body(t *testing.T) {
	p := sample(catalog.KindTO92)
	p.SilkscreenIndicateOne = false
	p.Courtyard = false
	m, err := Generate(&p)
	require.NoError(t, err)

	require.Len(t, m.Arcs, 1)
	arc := m.Arcs[0]
	assert.Greater(t, arc.Delta, 180.0)
	assert.Less(t, arc.Delta, 360.0)
	assert.InDelta(t, 540.0, 2*arc.StartAngle+arc.Delta, 1e-9)
	require.NotEmpty(t, m.Lines)
	assert.Greater(t, m.Lines[0].Start.Y, 0.0)

	p.PackageBodyWidth = 6
	vs := Validate(p.Type, &p)
	require.NotEmpty(t, vs)
	assert.Equal(t, drc.RuleBodyDimension, vs[len(vs)-1].Rule)
}

func TestRadialCapacitor(t *testing.T) {
	p := sample(catalog.KindCAPPR)
	p.Courtyard = false
	m, err := Generate(&p)
	require.NoError(t, err)
	require.Len(t, m.Arcs, 1)
	assert.InDelta(t, 2.5*catalog.UnitsMM.Multiplier(), m.Arcs[0].RadiusX, 1e-6)
	assert.Len(t, m.Lines, 2)

	p = sample(catalog.KindCAPA)
	p.Courtyard = false
	p.SilkscreenIndicateOne = false
	p.PackageIsRadial = true
	m, err = Generate(&p)
	require.NoError(t, err)
	assert.Len(t, m.Arcs, 1)
}

func TestAttributes(t *testing.T) {
	p := sample(catalog.KindRESC)
	p.AttributesInFootprint = true
	m, err := Generate(&p)
	require.NoError(t, err)
	require.Len(t, m.Attributes, len(params.Fields()))
	assert.Equal(t, geometry.Attribute{Name: "footprint_type", Value: "RESC"}, m.Attributes[2])
}
