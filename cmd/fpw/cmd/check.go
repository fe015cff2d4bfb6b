package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/report"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check [wizard-file...]",
	Short: "Run the design rule check without writing files",
	Long: `Resolve presets, derive heel and toe dimensions and run the design rule
check on every parameter set. Inputs are given as for generate.

Examples:
  fpw check part.fpw
  fpw check --type SO --name ?SOIC127P600X175-8N --set pad_width=1.2
  fpw check --sheet parts.xlsx`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addInputFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputs, err := loadInputs(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, p := range inputs {
		res, err := pipeline.Check(p, pipeline.Options{Logger: logger})
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
		return fmt.Errorf("%d of %d parameter set(s) failed the design rule check", failed, len(inputs))
	}
	return nil
}
