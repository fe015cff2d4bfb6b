package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/export"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/presets"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/wizard"
)

// Parameter source flags shared by generate and check
var (
	inputKind  string
	inputName  string
	inputUnits string
	inputSheet string
	inputSets  []string
)

var errNoInput = errors.New("no input: give wizard files, --sheet or --type")

func addInputFlags(c *cobra.Command) {
	c.Flags().StringVarP(&inputKind, "type", "t", "", "package kind, e.g. SO or RESC")
	c.Flags().StringVarP(&inputName, "name", "n", "", "footprint name; ?NAME loads the preset NAME")
	c.Flags().StringVarP(&inputUnits, "units", "u", "", "units of the dimensions (mm, mil, mil/100)")
	c.Flags().StringVar(&inputSheet, "sheet", "", "read parameter sets from an xlsx workbook")
	c.Flags().StringArrayVarP(&inputSets, "set", "s", nil, "override a field, e.g. --set pad_width=0.6")
}

// loadInputs collects the parameter sets named by the arguments and flags.
// The kind, name, units and --set overrides apply to every set, in that
// order, so --set can adjust a preset.
func loadInputs(args []string) ([]params.Parameters, error) {
	var out []params.Parameters
	for _, path := range args {
		p, err := wizard.ReadFile(path, logger.With("file", path))
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}

	if inputSheet != "" {
		f, err := os.Open(inputSheet)
		if err != nil {
			return nil, fmt.Errorf("failed to open sheet: %w", err)
		}
		ps, err := export.ReadParameters(f, logger.With("file", inputSheet))
		f.Close()
		if err != nil {
			return nil, err
		}
		if len(ps) == 0 {
			logger.Warn("sheet has no parameter rows", "file", inputSheet)
		}
		out = append(out, ps...)
	}

	if len(out) == 0 {
		if inputKind == "" {
			return nil, errNoInput
		}
		out = append(out, params.Default())
	}

	for i := range out {
		if err := override(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func override(p *params.Parameters) error {
	if inputKind != "" {
		kind, err := catalog.ResolvePackageKind(strings.ToUpper(inputKind))
		if err != nil {
			return err
		}
		p.Type = kind
	}
	if inputName != "" {
		p.FootprintName = inputName
	}
	if inputUnits != "" {
		units, err := catalog.ResolveUnits(inputUnits)
		if err != nil {
			return err
		}
		p.Units = units
	}

	if presets.IsQuery(p.FootprintName) && len(inputSets) > 0 {
		name := p.FootprintName
		if err := presets.Apply(p, name); err != nil {
			logger.Warn("preset lookup failed, keeping current values", "kind", p.Type, "name", name, "err", err)
		}
	}

	warn := logger.Warn
	for _, kv := range inputSets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: want field=value", kv)
		}
		f, ok := params.FieldByName(strings.TrimSpace(name))
		if !ok {
			return fmt.Errorf("invalid --set %q: unknown field %q", kv, name)
		}
		if err := f.Parse(p, value, warn); err != nil {
			return err
		}
	}

	cfg.Stamp(p)
	return nil
}
