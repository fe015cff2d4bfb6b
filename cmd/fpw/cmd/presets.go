package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/atomicfile"
	"github.com/OpenTraceLab/OpenTraceFPW/internal/export"
	"github.com/OpenTraceLab/OpenTraceFPW/internal/report"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Browse and export the built-in presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list [kind...]",
	Short: "List preset names",
	Long: `List the presets of the given package kinds, or of every kind.

Examples:
  fpw presets list
  fpw presets list SO QFP`,
	RunE: runPresetsList,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <kind> <name>",
	Short: "Print the parameters of one preset",
	Args:  cobra.ExactArgs(2),
	RunE:  runPresetsShow,
}

var presetsExportCmd = &cobra.Command{
	Use:   "export <file.xlsx> [kind...]",
	Short: "Export presets to an xlsx workbook",
	Long: `Export the presets of the given package kinds, or of every kind, to an xlsx
workbook with one sheet per kind. The workbook can be edited and fed back
with generate --sheet.

Examples:
  fpw presets export presets.xlsx
  fpw presets export chips.xlsx RESC CAPC INDC`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPresetsExport,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
	presetsCmd.AddCommand(presetsExportCmd)
}

func parseKinds(args []string) ([]catalog.PackageKind, error) {
	if len(args) == 0 {
		return nil, nil
	}
	kinds := make([]catalog.PackageKind, 0, len(args))
	for _, arg := range args {
		kind, err := catalog.ResolvePackageKind(strings.ToUpper(arg))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	kinds, err := parseKinds(args)
	if err != nil {
		return err
	}
	if kinds == nil {
		kinds = catalog.PackageKinds()
	}

	out := cmd.OutOrStdout()
	for _, kind := range kinds {
		for _, name := range presets.Names(kind) {
			fmt.Fprintf(out, "%-9s %s\n", kind, name)
		}
	}
	return nil
}

func runPresetsShow(cmd *cobra.Command, args []string) error {
	kind, err := catalog.ResolvePackageKind(strings.ToUpper(args[0]))
	if err != nil {
		return err
	}
	p, err := presets.Lookup(kind, args[1])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Parameters(&p))
	return nil
}

func runPresetsExport(cmd *cobra.Command, args []string) error {
	kinds, err := parseKinds(args[1:])
	if err != nil {
		return err
	}
	err = atomicfile.WriteFile(args[0], 0o644, func(w io.Writer) error {
		return export.WritePresets(w, kinds)
	})
	if err != nil {
		return err
	}
	logger.Info("exported presets", "path", args[0])
	return nil
}
