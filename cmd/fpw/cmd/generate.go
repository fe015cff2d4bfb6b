package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/report"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/pipeline"
)

var (
	outputDir   string
	writeWizard bool
	noLicense   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [wizard-file...]",
	Short: "Generate footprints",
	Long: `Generate a pcb footprint for every parameter set given as wizard files,
as rows of an xlsx workbook (--sheet) or, without either, from --type and
--name. A name starting with ? loads the built-in preset of that name.

Each set is checked against the design rules first; a set that fails is
reported and no file is written for it. The remaining sets are still
generated.

Examples:
  fpw generate --type QFN --name ?QFN50P400X400X90-25N
  fpw generate --type RESC --name ?RESC1608X55N --set pad_width=1.0 --wizard
  fpw generate -o out/ part1.fpw part2.fpw
  fpw generate --sheet parts.xlsx --no-license`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addInputFlags(generateCmd)
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"output directory (default from config)")
	generateCmd.Flags().BoolVarP(&writeWizard, "wizard", "w", false,
		"also save the final parameters as a wizard file")
	generateCmd.Flags().BoolVar(&noLicense, "no-license", false,
		"omit the license block")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputs, err := loadInputs(args)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		OutputDir:   cfg.OutputDir,
		License:     cfg.LicenseBlock && !noLicense,
		WriteWizard: cfg.WriteWizard || writeWizard,
		Logger:      logger,
	}
	if outputDir != "" {
		opts.OutputDir = outputDir
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, p := range inputs {
		res, err := pipeline.Run(p, opts)
		var drcErr *drc.Error
		switch {
		case errors.As(err, &drcErr):
			fmt.Fprint(out, report.Violations(&res.Parameters, drcErr.Violations))
			failed++
		case err != nil:
			return err
		default:
			fmt.Fprint(out, report.Success(res))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d footprint(s) failed the design rule check", failed, len(inputs))
	}
	return nil
}
