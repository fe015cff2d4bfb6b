package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/atomicfile"
	"github.com/OpenTraceLab/OpenTraceFPW/internal/report"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/pipeline"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/presets"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/wizard"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Create, inspect and convert wizard files",
	Long:  `Commands for wizard files, the one value per line dump of a footprint's parameters`,
}

var wizardNewCmd = &cobra.Command{
	Use:   "new <wizard-file>",
	Short: "Write a wizard file from a preset or from flags",
	Long: `Write a new wizard file. The parameters start from the defaults or, with
--name ?NAME, from a built-in preset, and are then adjusted with --set.

Examples:
  fpw wizard new --type SO --name ?SOIC127P600X175-8N so8.fpw
  fpw wizard new --type RESC --name R0603 --set package_body_length=1.6 r0603.fpw`,
	Args: cobra.ExactArgs(1),
	RunE: runWizardNew,
}

var wizardShowCmd = &cobra.Command{
	Use:   "show <wizard-file>",
	Short: "Print the fields set in a wizard file",
	Args:  cobra.ExactArgs(1),
	RunE:  runWizardShow,
}

var wizardConvertCmd = &cobra.Command{
	Use:   "convert <wizard-file> [footprint-file]",
	Short: "Convert a wizard file into a footprint",
	Long: `Convert a wizard file into a footprint. Without a footprint file, or with
-, the footprint is written to standard output.

Examples:
  fpw wizard convert so8.fpw
  fpw wizard convert so8.fpw so8.fp`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWizardConvert,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.AddCommand(wizardNewCmd)
	wizardCmd.AddCommand(wizardShowCmd)
	wizardCmd.AddCommand(wizardConvertCmd)

	addInputFlags(wizardNewCmd)
	wizardConvertCmd.Flags().BoolVar(&noLicense, "no-license", false,
		"omit the license block")
}

func runWizardNew(cmd *cobra.Command, args []string) error {
	inputs, err := loadInputs(nil)
	if err != nil {
		return err
	}
	p := inputs[0]
	if presets.IsQuery(p.FootprintName) {
		name := p.FootprintName
		if err := presets.Apply(&p, name); err != nil {
			return err
		}
	}
	if err := wizard.WriteFile(args[0], &p); err != nil {
		return err
	}
	logger.Info("wrote wizard file", "path", args[0])
	fmt.Fprint(cmd.OutOrStdout(), report.Parameters(&p))
	return nil
}

func runWizardShow(cmd *cobra.Command, args []string) error {
	p, err := wizard.ReadFile(args[0], logger)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Parameters(p))
	return nil
}

func runWizardConvert(cmd *cobra.Command, args []string) error {
	p, err := wizard.ReadFile(args[0], logger)
	if err != nil {
		return err
	}
	cfg.Stamp(p)

	data, err := pipeline.Render(*p, pipeline.Options{
		License: cfg.LicenseBlock && !noLicense,
		Logger:  logger,
	})
	var drcErr *drc.Error
	if errors.As(err, &drcErr) {
		fmt.Fprint(cmd.ErrOrStderr(), report.Violations(p, drcErr.Violations))
	}
	if err != nil {
		return err
	}

	if len(args) == 1 || args[1] == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	err = atomicfile.WriteFile(args[1], 0o644, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return err
	}
	logger.Info("wrote footprint", "path", args[1])
	return nil
}
