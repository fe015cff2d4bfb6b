package pipeline_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/pipeline"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/presets"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/wizard"
)

func query(kind catalog.PackageKind, name string) params.Parameters {
	p := params.Default()
	p.Type = kind
	p.FootprintName = presets.QueryPrefix + name
	return p
}

func files(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	p := query(catalog.KindRESC, "RESC1608X55N")

	res, err := pipeline.Run(p, pipeline.Options{OutputDir: dir, WriteWizard: true})
	require.NoError(t, err)
	assert.Empty(t, res.Violations)
	assert.Equal(t, "RESC1608X55N", res.Parameters.FootprintName)
	assert.Equal(t, filepath.Join(dir, "RESC1608X55N.fp"), res.FootprintPath)
	assert.Equal(t, filepath.Join(dir, "RESC1608X55N.fpw"), res.WizardPath)
	assert.ElementsMatch(t, []string{"RESC1608X55N.fp", "RESC1608X55N.fpw"}, files(t, dir))
	assert.Equal(t, presets.QueryPrefix+"RESC1608X55N", p.FootprintName, "input must not change")

	data, err := os.ReadFile(res.FootprintPath)
	require.NoError(t, err)
	rendered, err := pipeline.Render(p, pipeline.Options{})
	require.NoError(t, err)
	assert.Equal(t, rendered, data)
	assert.Equal(t, 2, bytes.Count(data, []byte("\tPad[")))

	saved, err := wizard.ReadFile(res.WizardPath, nil)
	require.NoError(t, err)
	assert.Equal(t, res.Parameters, *saved)
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	p := query(catalog.KindQFN, "QFN50P400X400X90-25N")
	opts := pipeline.Options{OutputDir: dir, License: true}

	res, err := pipeline.Run(p, opts)
	require.NoError(t, err)
	first, err := os.ReadFile(res.FootprintPath)
	require.NoError(t, err)

	res, err = pipeline.Run(p, opts)
	require.NoError(t, err)
	second, err := os.ReadFile(res.FootprintPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, bytes.HasPrefix(first, []byte("# ")))
}

func TestRunStopsOnViolations(t *testing.T) {
	dir := t.TempDir()
	p := query(catalog.KindRESC, "RESC1608X55N")
	require.NoError(t, presets.Apply(&p, p.FootprintName))
	p.PitchX, p.PadLength, p.PadClearance = 1.0, 1.0, 0.5
	p.PackageBodyHeight = 0

	res, err := pipeline.Run(p, pipeline.Options{OutputDir: dir, WriteWizard: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, drc.ErrDRC))

	var drcErr *drc.Error
	require.True(t, errors.As(err, &drcErr))
	assert.Equal(t, res.Violations, drcErr.Violations)

	var rules []drc.Rule
	for _, v := range res.Violations {
		rules = append(rules, v.Rule)
	}
	assert.Contains(t, rules, drc.RuleCopperClearanceX)
	assert.Contains(t, rules, drc.RuleBodyDimension)
	assert.Nil(t, res.Model)
	assert.Empty(t, files(t, dir))
}

func TestRunFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(*params.Parameters)
		want error
	}{
		{"unknown kind", func(p *params.Parameters) { p.Type = catalog.KindUnknown }, catalog.ErrUnknownPackageKind},
		{"unknown units", func(p *params.Parameters) { p.Units = catalog.UnitsUnknown }, catalog.ErrUnknownUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			p := query(catalog.KindSO, "SOIC127P600X175-8N")
			require.NoError(t, presets.Apply(&p, p.FootprintName))
			tt.edit(&p)

			res, err := pipeline.Run(p, pipeline.Options{OutputDir: dir})
			require.ErrorIs(t, err, tt.want)
			assert.False(t, errors.Is(err, drc.ErrDRC))
			assert.Empty(t, res.Violations)
			assert.Empty(t, files(t, dir))
		})
	}
}

func TestPresetMissIsAWarning(t *testing.T) {
	dir := t.TempDir()
	p, err := presets.Lookup(catalog.KindRESC, "RESC2012X70N")
	require.NoError(t, err)
	p.FootprintFilename = ""
	p.FootprintName = "?MYRES"

	var logs bytes.Buffer
	res, err := pipeline.Run(p, pipeline.Options{OutputDir: dir, Logger: log.New(&logs)})
	require.NoError(t, err)
	assert.Equal(t, "MYRES", res.Parameters.FootprintName)
	assert.Equal(t, filepath.Join(dir, "MYRES.fp"), res.FootprintPath)
	assert.Contains(t, logs.String(), "preset lookup failed")
}

func TestRunNeedsFilename(t *testing.T) {
	p, err := presets.Lookup(catalog.KindRESC, "RESC2012X70N")
	require.NoError(t, err)
	p.FootprintFilename, p.FootprintName = "", ""

	_, err = pipeline.Run(p, pipeline.Options{OutputDir: t.TempDir()})
	assert.ErrorIs(t, err, pipeline.ErrNoFilename)
}

func TestCheck(t *testing.T) {
	p := query(catalog.KindDIOMELF, "DIOMELF1911L")
	res, err := pipeline.Check(p, pipeline.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 1.90, res.Parameters.PitchX, 1e-9)
	assert.Nil(t, res.Model)

	p = res.Parameters
	p.CourtyardLength = 0.1
	res, err = pipeline.Check(p, pipeline.Options{})
	assert.ErrorIs(t, err, drc.ErrDRC)
	require.Len(t, res.Violations, 1)
	assert.Equal(t, drc.RuleCourtyardClearance, res.Violations[0].Rule)
}

func TestParallelRenders(t *testing.T) {
	names := presets.Names(catalog.KindSO)
	want := make([][]byte, len(names))
	for i, name := range names {
		out, err := pipeline.Render(query(catalog.KindSO, name), pipeline.Options{})
		require.NoError(t, err)
		want[i] = out
	}

	got := make([][]byte, len(names))
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			got[i], errs[i] = pipeline.Render(query(catalog.KindSO, name), pipeline.Options{})
		}(i, name)
	}
	wg.Wait()

	for i := range names {
		require.NoError(t, errs[i])
		assert.Equal(t, want[i], got[i], names[i])
	}
}
