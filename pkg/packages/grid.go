package packages

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/drc"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/geometry"
)

func init() {
	register(Package{
		Kind:        catalog.KindBGA,
		Description: "ball grid array",
		Family:      FamilyGrid,
		Polarized:   true,
		copper:      func(l *layout) { gridCopper(l, false) },
		check:       func(c *drc.Checker) { gridCheck(c, false) },
	})
	register(Package{
		Kind:        catalog.KindPGA,
		Description: "pin grid array",
		Family:      FamilyGrid,
		Polarized:   true,
		copper:      func(l *layout) { gridCopper(l, true) },
		check:       func(c *drc.Checker) { gridCheck(c, true) },
	})
}

// rowAlphabet holds the JEDEC row letters; I, O, Q, S, X and Z are never
// used.
const rowAlphabet = "ABCDEFGHJKLMNPRTUVWY"

// gridName returns the JEDEC name of a grid position: A1, B1, ..., Y1, AA1
// and so on, rows counted from the top and columns from the left.
func gridName(row, col int) string {
	name := ""
	r := row
	for {
		name = string(rowAlphabet[r%len(rowAlphabet)]) + name
		r = r/len(rowAlphabet) - 1
		if r < 0 {
			break
		}
	}
	return name + strconv.Itoa(col+1)
}

// gridCopper fills number_of_rows by number_of_columns positions, pitch_x
// and pitch_y apart, with round pads or through-hole pins.
func gridCopper(l *layout, through bool) {
	p := l.p
	rows, cols := p.NumberOfRows, p.NumberOfColumns
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			c := geometry.Point{X: row(col, cols, p.PitchX), Y: row(r, rows, p.PitchY)}
			number := r*cols + col + 1
			name := gridName(r, col)
			if through {
				l.pin(c, number, name)
			} else {
				l.pad(c, p.PadDiameter, p.PadDiameter, number, name)
			}
		}
	}
}

// gridPositions counts the positions that are not listed as exceptions.
func gridPositions(rows, cols int, isException func(string) bool) int {
	n := 0
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			if !isException(gridName(r, col)) && !isException(strconv.Itoa(r*cols+col+1)) {
				n++
			}
		}
	}
	return n
}

func gridCheck(c *drc.Checker, through bool) {
	p := c.Params()
	if through {
		thtCheck(c)
	} else {
		c.PadShape(catalog.PadShapeCircular, catalog.PadShapeRectangular)
		if p.PadDiameter <= 0 {
			c.Addf(drc.RulePadSize, "pad_diameter", "pad_diameter must be greater than zero, got %g", p.PadDiameter)
		}
		c.NoThermal()
	}

	rowsOK := c.Count("number_of_rows", p.NumberOfRows)
	colsOK := c.Count("number_of_columns", p.NumberOfColumns)
	if rowsOK && colsOK {
		want := gridPositions(p.NumberOfRows, p.NumberOfColumns, p.IsException)
		c.PinCount(want, "grid positions less exceptions")
	}
	if p.NumberOfColumns > 1 && c.Pitch("pitch_x", p.PitchX) {
		c.CopperClearance(drc.RuleCopperClearanceX, "pitch_x", p.PitchX, p.PadDiameter)
	}
	if p.NumberOfRows > 1 && c.Pitch("pitch_y", p.PitchY) {
		c.CopperClearance(drc.RuleCopperClearanceY, "pitch_y", p.PitchY, p.PadDiameter)
	}
}
