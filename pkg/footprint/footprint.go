// Package footprint writes a computed geometry model as a gEDA/pcb Element
// in the file format's native 1/100 mil units.
package footprint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

// Options control the optional parts of the output.
type Options struct {
	// License prepends the GPL license text with the footprint exception.
	License bool
}

var licenseText = []string{
	"This footprint is free software; you may redistribute it and/or modify",
	"it under the terms of the GNU General Public License as published by the",
	"Free Software Foundation; either version 2 of the License, or (at your",
	"option) any later version.",
	"As a special exception, if you create a design which uses this",
	"footprint, and embed this footprint or unaltered portions of this",
	"footprint into the design, this footprint does not by itself cause",
	"the resulting design to be covered by the GNU General Public",
	"License. This exception does not however invalidate any other",
	"reasons why the design itself might be covered by the GNU General",
	"Public License. If you modify this footprint, you may extend this",
	"exception to your version of the footprint, but you are not",
	"obligated to do so. If you do not wish to do so, delete this",
	"exception statement from your version.",
}

// Write emits m, which must already be scaled to internal units, as an
// Element named after p. Coordinates are truncated toward zero.
func Write(w io.Writer, p *params.Parameters, m *geometry.Model, opts Options) error {
	bw := bufio.NewWriter(w)

	if opts.License {
		writeLicense(bw, p)
	}

	fmt.Fprintf(bw, "Element[\"\" %s %s %s 0 0 %s %s 0 100 \"\"]\n(\n",
		quote(p.FootprintName), quote(p.Refdes+"?"), quote(p.Value),
		coord(m.TextAnchor.X), coord(m.TextAnchor.Y))

	for _, pin := range m.Pins {
		fmt.Fprintf(bw, "\tPin[%s %s %s %s %s %s %s %s %s]\n",
			coord(pin.Center.X), coord(pin.Center.Y),
			coord(pin.Diameter), coord(pin.Clearance), coord(pin.Mask), coord(pin.Drill),
			quote(pin.Name), quote(pin.Number), quote(pin.Flags.String()))
	}
	for _, pad := range m.Pads {
		fmt.Fprintf(bw, "\tPad[%s %s %s %s %s %s %s %s %s %s]\n",
			coord(pad.Start.X), coord(pad.Start.Y), coord(pad.End.X), coord(pad.End.Y),
			coord(pad.Width), coord(pad.Clearance), coord(pad.Mask),
			quote(pad.Name), quote(pad.Number), quote(pad.Flags.String()))
	}
	for _, line := range m.Lines {
		fmt.Fprintf(bw, "\tElementLine[%s %s %s %s %s]\n",
			coord(line.Start.X), coord(line.Start.Y), coord(line.End.X), coord(line.End.Y),
			coord(line.Width))
	}
	for _, arc := range m.Arcs {
		fmt.Fprintf(bw, "\tElementArc[%s %s %s %s %s %s %s]\n",
			coord(arc.Center.X), coord(arc.Center.Y), coord(arc.RadiusX), coord(arc.RadiusY),
			coord(arc.StartAngle), coord(arc.Delta), coord(arc.Width))
	}
	for _, attr := range m.Attributes {
		fmt.Fprintf(bw, "\tAttribute(%s %s)\n", quote(attr.Name), quote(attr.Value))
	}
	bw.WriteString(")\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("footprint: write %q: %w", p.FootprintName, err)
	}
	return nil
}

func writeLicense(w *bufio.Writer, p *params.Parameters) {
	for _, line := range licenseText {
		fmt.Fprintf(w, "# %s\n", line)
	}
	meta := []struct{ key, value string }{
		{"Footprint", p.FootprintName},
		{"Author", p.Author},
		{"Dist-License", p.DistLicense},
		{"Use-License", p.UseLicense},
		{"Status", p.Status.String()},
	}
	for _, m := range meta {
		if m.value != "" {
			fmt.Fprintf(w, "# %s = %s\n", m.key, m.value)
		}
	}
}

// coord renders v as an integer, truncating toward zero.
func coord(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}

var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", " ")

func quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}
