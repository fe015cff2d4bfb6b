// Package pipeline runs one footprint through the wizard: preset lookup,
// heel/toe derivation, design rule check, geometry and file output. Runs
// share no state and may execute in parallel on separate Parameters.
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/atomicfile"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/packages"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/presets"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/wizard"
)

// ErrNoFilename is returned when neither a footprint filename nor a
// footprint name is set.
var ErrNoFilename = errors.New("pipeline: footprint has no filename")

const (
	FootprintExt = ".fp"
	WizardExt    = ".fpw"
)

// Options configure a run.
type Options struct {
	// OutputDir receives the footprint (and wizard) file. Empty means the
	// working directory.
	OutputDir string
	// License prepends the license block to the footprint.
	License bool
	// WriteWizard saves the final parameters next to the footprint.
	WriteWizard bool
	// Logger receives progress and warnings; nil discards them.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Result describes a run. Violations is set when the design rule check
// failed, in which case no file was written.
type Result struct {
	Parameters    params.Parameters
	Model         *geometry.Model
	FootprintPath string
	WizardPath    string
	Violations    []drc.Violation
}

// Run processes p, which is copied and never modified. Unknown package
// kinds and units abort the run before the design rule check; rule
// violations return a *drc.Error together with a Result listing them.
func Run(p params.Parameters, opts Options) (*Result, error) {
	logger := opts.logger()

	res, err := prepare(p, logger)
	if err != nil {
		return res, err
	}
	q := &res.Parameters

	filename := q.FootprintFilename
	if filename == "" && q.FootprintName != "" {
		filename = q.FootprintName + FootprintExt
	}
	if filename == "" {
		return res, ErrNoFilename
	}
	res.FootprintPath = filepath.Join(opts.OutputDir, filename)

	err = atomicfile.WriteFile(res.FootprintPath, 0o644, func(w io.Writer) error {
		return footprint.Write(w, q, res.Model, footprint.Options{License: opts.License})
	})
	if err != nil {
		return res, fmt.Errorf("pipeline: %w", err)
	}
	logger.Info("wrote footprint", "path", res.FootprintPath,
		"pins", len(res.Model.Pins), "pads", len(res.Model.Pads))

	if opts.WriteWizard {
		res.WizardPath = strings.TrimSuffix(res.FootprintPath, filepath.Ext(res.FootprintPath)) + WizardExt
		if err := wizard.WriteFile(res.WizardPath, q); err != nil {
			return res, fmt.Errorf("pipeline: %w", err)
		}
		logger.Info("wrote wizard file", "path", res.WizardPath)
	}
	return res, nil
}

// Render runs p through the same stages as Run and returns the footprint
// text instead of writing it. Repeated calls give identical output.
func Render(p params.Parameters, opts Options) ([]byte, error) {
	res, err := prepare(p, opts.logger())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := footprint.Write(&buf, &res.Parameters, res.Model, footprint.Options{License: opts.License}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Check runs every stage up to and including the design rule check.
func Check(p params.Parameters, opts Options) (*Result, error) {
	res, pkg, err := resolve(p, opts.logger())
	if err != nil {
		return res, err
	}
	return res, validate(res, pkg)
}

func prepare(p params.Parameters, logger *log.Logger) (*Result, error) {
	res, pkg, err := resolve(p, logger)
	if err != nil {
		return res, err
	}
	if err := validate(res, pkg); err != nil {
		return res, err
	}
	m, err := pkg.Generate(&res.Parameters)
	if err != nil {
		return res, fmt.Errorf("pipeline: %w", err)
	}
	res.Model = m
	return res, nil
}

// resolve looks up the package kind, applies a preset query and derives
// heel/toe dimensions.
func resolve(p params.Parameters, logger *log.Logger) (*Result, packages.Package, error) {
	res := &Result{Parameters: p}
	q := &res.Parameters

	pkg, err := packages.Get(q.Type)
	if err != nil {
		return res, pkg, fmt.Errorf("pipeline: %w", err)
	}

	if presets.IsQuery(q.FootprintName) {
		name := q.FootprintName
		if err := presets.Apply(q, name); err != nil {
			logger.Warn("preset lookup failed, keeping current values", "kind", q.Type, "name", name, "err", err)
		} else {
			logger.Debug("applied preset", "kind", q.Type, "name", q.FootprintName)
		}
	}

	if !q.Units.Known() {
		return res, pkg, fmt.Errorf("pipeline: %w: %q", catalog.ErrUnknownUnit, q.Units.String())
	}

	pkg.Derive(q)
	return res, pkg, nil
}

func validate(res *Result, pkg packages.Package) error {
	v := pkg.Validate(&res.Parameters)
	if len(v) == 0 {
		return nil
	}
	res.Violations = v
	return &drc.Error{Violations: v}
}
