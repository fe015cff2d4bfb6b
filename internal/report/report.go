// Package report renders command results for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/packages"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/pipeline"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/presets"
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	ruleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	fieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
)

// Violations lists every rule a footprint broke.
func Violations(p *params.Parameters, v []drc.Violation) string {
	var sb strings.Builder

	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s %q failed the design rule check (%d)",
		p.Type, p.FootprintName, len(v))))
	sb.WriteString("\n\n")
	for _, viol := range v {
		sb.WriteString("  ")
		sb.WriteString(ruleStyle.Render(viol.Rule.String()))
		if viol.Field != "" {
			sb.WriteString(" ")
			sb.WriteString(fieldStyle.Render("[" + viol.Field + "]"))
		}
		sb.WriteString("\n    ")
		sb.WriteString(valueStyle.Render(viol.Message))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("No footprint was written."))
	sb.WriteString("\n")
	return sb.String()
}

// Success reports the files written by a run.
func Success(res *pipeline.Result) string {
	var sb strings.Builder
	p := &res.Parameters
	sb.WriteString(okStyle.Render(fmt.Sprintf("✓ %s %q", p.Type, p.FootprintName)))
	sb.WriteString("\n")
	if res.Model != nil {
		sb.WriteString(valueStyle.Render(fmt.Sprintf("  %d pins, %d pads, %d lines, %d arcs",
			len(res.Model.Pins), len(res.Model.Pads), len(res.Model.Lines), len(res.Model.Arcs))))
		sb.WriteString("\n")
	}
	for _, path := range []string{res.FootprintPath, res.WizardPath} {
		if path != "" {
			sb.WriteString("  ")
			sb.WriteString(fieldStyle.Render(path))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Kinds tabulates the registered package kinds.
func Kinds() string {
	name := lipgloss.NewStyle().Width(9)
	family := lipgloss.NewStyle().Width(16)
	count := lipgloss.NewStyle().Width(8).Align(lipgloss.Right)

	var sb strings.Builder
	sb.WriteString(ruleStyle.Render(name.Render("KIND") + family.Render("FAMILY") + count.Render("PRESETS") + "  DESCRIPTION"))
	sb.WriteString("\n")
	for _, kind := range packages.Kinds() {
		pkg, _ := packages.Get(kind)
		sb.WriteString(name.Render(kind.String()))
		sb.WriteString(valueStyle.Render(family.Render(string(pkg.Family))))
		sb.WriteString(count.Render(fmt.Sprint(len(presets.Names(kind)))))
		sb.WriteString("  ")
		sb.WriteString(pkg.Description)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Parameters lists the fields of p that differ from their zero value.
func Parameters(p *params.Parameters) string {
	var sb strings.Builder
	var zero params.Parameters
	label := lipgloss.NewStyle().Width(36)
	for _, f := range params.Fields() {
		v := f.Format(p)
		if v == f.Format(&zero) {
			continue
		}
		sb.WriteString(fieldStyle.Render(label.Render(f.Name)))
		sb.WriteString(v)
		sb.WriteString("\n")
	}
	return sb.String()
}
