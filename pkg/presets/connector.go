package presets

import "github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"

// In-line packages and pin headers. DIP outlines are in mil.

func init() {
	for _, d := range dipPresets {
		add(d.params(imperial(catalog.KindDIP, d.name)))
	}
	for _, d := range conDIPPresets {
		add(d.params(metric(catalog.KindConDIP, d.name)))
	}
	for _, d := range conDILPresets {
		add(d.params(metric(catalog.KindConDIL, d.name)))
	}
	for _, s := range conSILPresets {
		add(s.params(catalog.KindConSIL))
	}
	for _, s := range silPresets {
		add(s.params(catalog.KindSIL))
	}
}

// 300, 400 and 600 mil row spacing.
var dipPresets = []dual{
	{"DIP4", 4, 300, 100, 250, 175, 130, 60, 32},
	{"DIP6", 6, 300, 100, 250, 275, 130, 60, 32},
	{"DIP8", 8, 300, 100, 250, 375, 130, 60, 32},
	{"DIP10", 10, 300, 100, 250, 475, 130, 60, 32},
	{"DIP12", 12, 300, 100, 250, 575, 130, 60, 32},
	{"DIP14", 14, 300, 100, 250, 675, 130, 60, 32},
	{"DIP16", 16, 300, 100, 250, 775, 130, 60, 32},
	{"DIP18", 18, 300, 100, 250, 875, 130, 60, 32},
	{"DIP20", 20, 300, 100, 250, 975, 130, 60, 32},
	{"DIP22", 22, 300, 100, 250, 1075, 130, 60, 32},
	{"DIP24", 24, 300, 100, 250, 1175, 130, 60, 32},
	{"DIP26", 26, 300, 100, 250, 1275, 130, 60, 32},
	{"DIP28", 28, 300, 100, 250, 1375, 130, 60, 32},
	{"DIP22-400", 22, 400, 100, 350, 1075, 140, 60, 32},
	{"DIP24-400", 24, 400, 100, 350, 1175, 140, 60, 32},
	{"DIP28-400", 28, 400, 100, 350, 1375, 140, 60, 32},
	{"DIP32-400", 32, 400, 100, 350, 1575, 140, 60, 32},
	{"DIP40-400", 40, 400, 100, 350, 1975, 140, 60, 32},
	{"DIP24-600", 24, 600, 100, 550, 1175, 150, 65, 35},
	{"DIP28-600", 28, 600, 100, 550, 1375, 150, 65, 35},
	{"DIP32-600", 32, 600, 100, 550, 1575, 150, 65, 35},
	{"DIP36-600", 36, 600, 100, 550, 1775, 150, 65, 35},
	{"DIP40-600", 40, 600, 100, 550, 1975, 150, 65, 35},
	{"DIP42-600", 42, 600, 100, 550, 2075, 150, 65, 35},
	{"DIP48-600", 48, 600, 100, 550, 2375, 150, 65, 35},
	{"DIP52-600", 52, 600, 100, 550, 2575, 150, 65, 35},
	{"DIP64-600", 64, 600, 100, 550, 3175, 150, 65, 35},
}

// Box headers.
var conDIPPresets = []dual{
	{"CONDIP254P2X03", 6, 2.54, 2.54, 8.9, 15.22, 8.5, 1.7, 1},
	{"CONDIP254P2X04", 8, 2.54, 2.54, 8.9, 17.76, 8.5, 1.7, 1},
	{"CONDIP254P2X05", 10, 2.54, 2.54, 8.9, 20.3, 8.5, 1.7, 1},
	{"CONDIP254P2X06", 12, 2.54, 2.54, 8.9, 22.84, 8.5, 1.7, 1},
	{"CONDIP254P2X07", 14, 2.54, 2.54, 8.9, 25.38, 8.5, 1.7, 1},
	{"CONDIP254P2X08", 16, 2.54, 2.54, 8.9, 27.92, 8.5, 1.7, 1},
	{"CONDIP254P2X10", 20, 2.54, 2.54, 8.9, 33, 8.5, 1.7, 1},
	{"CONDIP254P2X12", 24, 2.54, 2.54, 8.9, 38.08, 8.5, 1.7, 1},
	{"CONDIP254P2X13", 26, 2.54, 2.54, 8.9, 40.62, 8.5, 1.7, 1},
	{"CONDIP254P2X15", 30, 2.54, 2.54, 8.9, 45.7, 8.5, 1.7, 1},
	{"CONDIP254P2X17", 34, 2.54, 2.54, 8.9, 50.78, 8.5, 1.7, 1},
	{"CONDIP254P2X20", 40, 2.54, 2.54, 8.9, 58.4, 8.5, 1.7, 1},
	{"CONDIP254P2X25", 50, 2.54, 2.54, 8.9, 71.1, 8.5, 1.7, 1},
	{"CONDIP254P2X30", 60, 2.54, 2.54, 8.9, 83.8, 8.5, 1.7, 1},
	{"CONDIP254P2X32", 64, 2.54, 2.54, 8.9, 88.88, 8.5, 1.7, 1},
	{"CONDIP200P2X03", 6, 2, 2, 7, 12, 6, 1.35, 0.8},
	{"CONDIP200P2X04", 8, 2, 2, 7, 14, 6, 1.35, 0.8},
	{"CONDIP200P2X05", 10, 2, 2, 7, 16, 6, 1.35, 0.8},
	{"CONDIP200P2X06", 12, 2, 2, 7, 18, 6, 1.35, 0.8},
	{"CONDIP200P2X07", 14, 2, 2, 7, 20, 6, 1.35, 0.8},
	{"CONDIP200P2X08", 16, 2, 2, 7, 22, 6, 1.35, 0.8},
	{"CONDIP200P2X10", 20, 2, 2, 7, 26, 6, 1.35, 0.8},
	{"CONDIP200P2X12", 24, 2, 2, 7, 30, 6, 1.35, 0.8},
	{"CONDIP200P2X15", 30, 2, 2, 7, 36, 6, 1.35, 0.8},
	{"CONDIP200P2X20", 40, 2, 2, 7, 46, 6, 1.35, 0.8},
	{"CONDIP200P2X25", 50, 2, 2, 7, 56, 6, 1.35, 0.8},
	{"CONDIP127P2X03", 6, 1.27, 1.27, 5.6, 8.81, 4.4, 0.9, 0.55},
	{"CONDIP127P2X04", 8, 1.27, 1.27, 5.6, 10.08, 4.4, 0.9, 0.55},
	{"CONDIP127P2X05", 10, 1.27, 1.27, 5.6, 11.35, 4.4, 0.9, 0.55},
	{"CONDIP127P2X06", 12, 1.27, 1.27, 5.6, 12.62, 4.4, 0.9, 0.55},
	{"CONDIP127P2X07", 14, 1.27, 1.27, 5.6, 13.89, 4.4, 0.9, 0.55},
	{"CONDIP127P2X08", 16, 1.27, 1.27, 5.6, 15.16, 4.4, 0.9, 0.55},
	{"CONDIP127P2X10", 20, 1.27, 1.27, 5.6, 17.7, 4.4, 0.9, 0.55},
	{"CONDIP127P2X12", 24, 1.27, 1.27, 5.6, 20.24, 4.4, 0.9, 0.55},
	{"CONDIP127P2X13", 26, 1.27, 1.27, 5.6, 21.51, 4.4, 0.9, 0.55},
	{"CONDIP127P2X15", 30, 1.27, 1.27, 5.6, 24.05, 4.4, 0.9, 0.55},
	{"CONDIP127P2X17", 34, 1.27, 1.27, 5.6, 26.59, 4.4, 0.9, 0.55},
	{"CONDIP127P2X20", 40, 1.27, 1.27, 5.6, 30.4, 4.4, 0.9, 0.55},
	{"CONDIP127P2X25", 50, 1.27, 1.27, 5.6, 36.75, 4.4, 0.9, 0.55},
	{"CONDIP127P2X30", 60, 1.27, 1.27, 5.6, 43.1, 4.4, 0.9, 0.55},
	{"CONDIP127P2X32", 64, 1.27, 1.27, 5.6, 45.64, 4.4, 0.9, 0.55},
}

// Dual row pin headers.
var conDILPresets = []dual{
	{"CONDIL254P2X01", 2, 2.54, 2.54, 2.54, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X02", 4, 2.54, 2.54, 5.08, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X03", 6, 2.54, 2.54, 7.62, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X04", 8, 2.54, 2.54, 10.16, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X05", 10, 2.54, 2.54, 12.7, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X06", 12, 2.54, 2.54, 15.24, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X07", 14, 2.54, 2.54, 17.78, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X08", 16, 2.54, 2.54, 20.32, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X09", 18, 2.54, 2.54, 22.86, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X10", 20, 2.54, 2.54, 25.4, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X11", 22, 2.54, 2.54, 27.94, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X12", 24, 2.54, 2.54, 30.48, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X13", 26, 2.54, 2.54, 33.02, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X14", 28, 2.54, 2.54, 35.56, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X15", 30, 2.54, 2.54, 38.1, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X16", 32, 2.54, 2.54, 40.64, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X17", 34, 2.54, 2.54, 43.18, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X18", 36, 2.54, 2.54, 45.72, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X19", 38, 2.54, 2.54, 48.26, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X20", 40, 2.54, 2.54, 50.8, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X22", 44, 2.54, 2.54, 55.88, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X25", 50, 2.54, 2.54, 63.5, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X30", 60, 2.54, 2.54, 76.2, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X32", 64, 2.54, 2.54, 81.28, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X36", 72, 2.54, 2.54, 91.44, 5.08, 8.5, 1.7, 1},
	{"CONDIL254P2X40", 80, 2.54, 2.54, 101.6, 5.08, 8.5, 1.7, 1},
	{"CONDIL200P2X02", 4, 2, 2, 4, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X03", 6, 2, 2, 6, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X04", 8, 2, 2, 8, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X05", 10, 2, 2, 10, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X06", 12, 2, 2, 12, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X07", 14, 2, 2, 14, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X08", 16, 2, 2, 16, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X09", 18, 2, 2, 18, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X10", 20, 2, 2, 20, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X11", 22, 2, 2, 22, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X12", 24, 2, 2, 24, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X13", 26, 2, 2, 26, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X14", 28, 2, 2, 28, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X15", 30, 2, 2, 30, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X16", 32, 2, 2, 32, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X17", 34, 2, 2, 34, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X18", 36, 2, 2, 36, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X19", 38, 2, 2, 38, 4, 6, 1.35, 0.8},
	{"CONDIL200P2X20", 40, 2, 2, 40, 4, 6, 1.35, 0.8},
	{"CONDIL127P2X02", 4, 1.27, 1.27, 2.54, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X03", 6, 1.27, 1.27, 3.81, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X04", 8, 1.27, 1.27, 5.08, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X05", 10, 1.27, 1.27, 6.35, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X06", 12, 1.27, 1.27, 7.62, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X07", 14, 1.27, 1.27, 8.89, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X08", 16, 1.27, 1.27, 10.16, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X09", 18, 1.27, 1.27, 11.43, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X10", 20, 1.27, 1.27, 12.7, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X11", 22, 1.27, 1.27, 13.97, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X12", 24, 1.27, 1.27, 15.24, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X13", 26, 1.27, 1.27, 16.51, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X14", 28, 1.27, 1.27, 17.78, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X15", 30, 1.27, 1.27, 19.05, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X16", 32, 1.27, 1.27, 20.32, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X17", 34, 1.27, 1.27, 21.59, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X18", 36, 1.27, 1.27, 22.86, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X19", 38, 1.27, 1.27, 24.13, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X20", 40, 1.27, 1.27, 25.4, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X25", 50, 1.27, 1.27, 31.75, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X30", 60, 1.27, 1.27, 38.1, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X32", 64, 1.27, 1.27, 40.64, 2.54, 4.4, 0.9, 0.55},
	{"CONDIL127P2X40", 80, 1.27, 1.27, 50.8, 2.54, 4.4, 0.9, 0.55},
}

// Single row pin headers.
var conSILPresets = []single{
	{"CONSIL254P1X01", 1, 2.54, 2.54, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X02", 2, 2.54, 5.08, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X03", 3, 2.54, 7.62, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X04", 4, 2.54, 10.16, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X05", 5, 2.54, 12.7, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X06", 6, 2.54, 15.24, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X07", 7, 2.54, 17.78, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X08", 8, 2.54, 20.32, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X09", 9, 2.54, 22.86, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X10", 10, 2.54, 25.4, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X11", 11, 2.54, 27.94, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X12", 12, 2.54, 30.48, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X13", 13, 2.54, 33.02, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X14", 14, 2.54, 35.56, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X15", 15, 2.54, 38.1, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X16", 16, 2.54, 40.64, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X17", 17, 2.54, 43.18, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X18", 18, 2.54, 45.72, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X19", 19, 2.54, 48.26, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X20", 20, 2.54, 50.8, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X21", 21, 2.54, 53.34, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X22", 22, 2.54, 55.88, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X23", 23, 2.54, 58.42, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X24", 24, 2.54, 60.96, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X25", 25, 2.54, 63.5, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X26", 26, 2.54, 66.04, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X27", 27, 2.54, 68.58, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X28", 28, 2.54, 71.12, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X29", 29, 2.54, 73.66, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X30", 30, 2.54, 76.2, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X31", 31, 2.54, 78.74, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X32", 32, 2.54, 81.28, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X33", 33, 2.54, 83.82, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X34", 34, 2.54, 86.36, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X35", 35, 2.54, 88.9, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X36", 36, 2.54, 91.44, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X37", 37, 2.54, 93.98, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X38", 38, 2.54, 96.52, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X39", 39, 2.54, 99.06, 2.54, 8.5, 1.7, 1},
	{"CONSIL254P1X40", 40, 2.54, 101.6, 2.54, 8.5, 1.7, 1},
	{"CONSIL200P1X02", 2, 2, 4, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X03", 3, 2, 6, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X04", 4, 2, 8, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X05", 5, 2, 10, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X06", 6, 2, 12, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X07", 7, 2, 14, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X08", 8, 2, 16, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X09", 9, 2, 18, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X10", 10, 2, 20, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X11", 11, 2, 22, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X12", 12, 2, 24, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X13", 13, 2, 26, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X14", 14, 2, 28, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X15", 15, 2, 30, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X16", 16, 2, 32, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X17", 17, 2, 34, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X18", 18, 2, 36, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X19", 19, 2, 38, 2, 6, 1.35, 0.8},
	{"CONSIL200P1X20", 20, 2, 40, 2, 6, 1.35, 0.8},
	{"CONSIL127P1X02", 2, 1.27, 2.54, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X03", 3, 1.27, 3.81, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X04", 4, 1.27, 5.08, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X05", 5, 1.27, 6.35, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X06", 6, 1.27, 7.62, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X07", 7, 1.27, 8.89, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X08", 8, 1.27, 10.16, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X09", 9, 1.27, 11.43, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X10", 10, 1.27, 12.7, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X11", 11, 1.27, 13.97, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X12", 12, 1.27, 15.24, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X13", 13, 1.27, 16.51, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X14", 14, 1.27, 17.78, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X15", 15, 1.27, 19.05, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X16", 16, 1.27, 20.32, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X17", 17, 1.27, 21.59, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X18", 18, 1.27, 22.86, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X19", 19, 1.27, 24.13, 1.27, 4.4, 1, 0.65},
	{"CONSIL127P1X20", 20, 1.27, 25.4, 1.27, 4.4, 1, 0.65},
}

var silPresets = []single{
	{"SIL3", 3, 2.54, 7.62, 2.5, 6, 1.5, 0.8},
	{"SIL4", 4, 2.54, 10.16, 2.5, 6, 1.5, 0.8},
	{"SIL5", 5, 2.54, 12.7, 2.5, 6, 1.5, 0.8},
	{"SIL6", 6, 2.54, 15.24, 2.5, 6, 1.5, 0.8},
	{"SIL7", 7, 2.54, 17.78, 2.5, 6, 1.5, 0.8},
	{"SIL8", 8, 2.54, 20.32, 2.5, 6, 1.5, 0.8},
	{"SIL9", 9, 2.54, 22.86, 2.5, 6, 1.5, 0.8},
	{"SIL10", 10, 2.54, 25.4, 2.5, 6, 1.5, 0.8},
	{"SIL11", 11, 2.54, 27.94, 2.5, 6, 1.5, 0.8},
	{"SIL12", 12, 2.54, 30.48, 2.5, 6, 1.5, 0.8},
	{"SIL13", 13, 2.54, 33.02, 2.5, 6, 1.5, 0.8},
	{"SIL14", 14, 2.54, 35.56, 2.5, 6, 1.5, 0.8},
	{"SIL3-200", 3, 2, 6, 2.5, 6, 1.3, 0.7},
	{"SIL4-200", 4, 2, 8, 2.5, 6, 1.3, 0.7},
	{"SIL5-200", 5, 2, 10, 2.5, 6, 1.3, 0.7},
	{"SIL6-200", 6, 2, 12, 2.5, 6, 1.3, 0.7},
	{"SIL7-200", 7, 2, 14, 2.5, 6, 1.3, 0.7},
	{"SIL8-200", 8, 2, 16, 2.5, 6, 1.3, 0.7},
	{"SIL9-200", 9, 2, 18, 2.5, 6, 1.3, 0.7},
	{"SIL10-200", 10, 2, 20, 2.5, 6, 1.3, 0.7},
	{"SIL11-200", 11, 2, 22, 2.5, 6, 1.3, 0.7},
	{"SIL12-200", 12, 2, 24, 2.5, 6, 1.3, 0.7},
}
