// Package export moves parameter sets in and out of xlsx workbooks: one
// sheet per package kind, one column per wizard field and one row per
// footprint.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/presets"
)

// ErrMalformedSheet is returned for a workbook row that cannot be read
// back into parameters.
var ErrMalformedSheet = errors.New("export: malformed sheet")

const defaultSheet = "Sheet1"

// WritePresets writes the built-in presets of kinds to w. A nil kinds
// exports every kind that has presets.
func WritePresets(w io.Writer, kinds []catalog.PackageKind) error {
	if kinds == nil {
		kinds = catalog.PackageKinds()
	}
	sets := make(map[catalog.PackageKind][]params.Parameters)
	var order []catalog.PackageKind
	for _, kind := range kinds {
		for _, name := range presets.Names(kind) {
			p, err := presets.Lookup(kind, name)
			if err != nil {
				return err
			}
			sets[kind] = append(sets[kind], p)
		}
		if len(sets[kind]) > 0 {
			order = append(order, kind)
		}
	}
	return write(w, order, sets)
}

// WriteParameters writes arbitrary parameter sets, grouped by kind in
// catalog order.
func WriteParameters(w io.Writer, ps []params.Parameters) error {
	sets := make(map[catalog.PackageKind][]params.Parameters)
	for _, p := range ps {
		sets[p.Type] = append(sets[p.Type], p)
	}
	var order []catalog.PackageKind
	for _, kind := range append([]catalog.PackageKind{catalog.KindUnknown}, catalog.PackageKinds()...) {
		if len(sets[kind]) > 0 {
			order = append(order, kind)
		}
	}
	return write(w, order, sets)
}

func sheetName(kind catalog.PackageKind) string {
	if kind.Known() {
		return kind.String()
	}
	return "unknown"
}

func write(w io.Writer, order []catalog.PackageKind, sets map[catalog.PackageKind][]params.Parameters) error {
	f := excelize.NewFile()
	defer f.Close()

	fields := params.Fields()
	header := make([]interface{}, len(fields))
	for i, fd := range fields {
		header[i] = fd.Name
	}

	for _, kind := range order {
		sheet := sheetName(kind)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("export: sheet %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("export: sheet %s: %w", sheet, err)
		}
		for i, p := range sets[kind] {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			row := cells(&p, fields)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("export: sheet %s row %d: %w", sheet, i+2, err)
			}
		}
		if err := f.SetColWidth(sheet, "A", "B", 28); err != nil {
			return err
		}
	}
	if len(order) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

// cells converts p into typed cell values so numbers stay numbers in the
// spreadsheet.
func cells(p *params.Parameters, fields []params.Field) []interface{} {
	row := make([]interface{}, len(fields))
	for i, f := range fields {
		switch f.Kind {
		case params.FieldFloat:
			v, _ := f.Number(p)
			row[i] = v
		case params.FieldInt:
			v, _ := f.Number(p)
			row[i] = int(v)
		case params.FieldBool:
			row[i] = f.Format(p) == "1"
		default:
			row[i] = f.Format(p)
		}
	}
	return row
}

// ReadParameters reads every data row of every sheet in r. Columns are
// matched to fields by the header row; unknown columns are skipped with a
// warning and missing ones leave the field at its zero value.
func ReadParameters(r io.Reader, logger *log.Logger) ([]params.Parameters, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	warn := params.WarnFunc(logger.Warn)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSheet, err)
	}
	defer f.Close()

	var out []params.Parameters
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSheet, sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		columns := make([]*params.Field, len(rows[0]))
		for i, name := range rows[0] {
			fd, ok := params.FieldByName(strings.TrimSpace(name))
			if !ok {
				logger.Warn("ignoring unknown column", "sheet", sheet, "column", name)
				continue
			}
			columns[i] = &fd
		}

		for n, row := range rows[1:] {
			if isBlank(row) {
				continue
			}
			var p params.Parameters
			for i, text := range row {
				if i >= len(columns) || columns[i] == nil {
					continue
				}
				if err := columns[i].Parse(&p, text, warn); err != nil {
					return nil, fmt.Errorf("%w: %s row %d: %w", ErrMalformedSheet, sheet, n+2, err)
				}
			}
			out = append(out, p)
		}
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
