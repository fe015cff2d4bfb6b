package presets

import "github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"

// Leaded through-hole parts with two or three leads.

func init() {
	for _, c := range capaPresets {
		add(c.params(catalog.KindCAPA, false))
	}
	for _, c := range resPresets {
		add(c.params(catalog.KindRES, false))
	}
	for _, c := range capprPresets {
		add(c.params(catalog.KindCAPPR, true))
	}
	for _, t := range to92Presets {
		add(t.params())
	}
}

var capaPresets = []lead{
	{"CAPAD1016W60L500D250", 5, 2.5, 2.5, 10.16, 1.6, 0.8},
	{"CAPAD1270W60L500D250", 5, 2.5, 2.5, 12.7, 1.6, 0.8},
	{"CAPAD1524W60L500D250", 5, 2.5, 2.5, 15.24, 1.6, 0.8},
	{"CAPAD1016W60L600D300", 6, 3, 3, 10.16, 1.6, 0.8},
	{"CAPAD1270W60L600D300", 6, 3, 3, 12.7, 1.6, 0.8},
	{"CAPAD1524W60L600D300", 6, 3, 3, 15.24, 1.6, 0.8},
	{"CAPAD1270W60L800D450", 8, 4.5, 4.5, 12.7, 1.6, 0.8},
	{"CAPAD1524W60L800D450", 8, 4.5, 4.5, 15.24, 1.6, 0.8},
	{"CAPAD1778W60L800D450", 8, 4.5, 4.5, 17.78, 1.6, 0.8},
	{"CAPAD1524W60L1100D500", 11, 5, 5, 15.24, 1.6, 0.8},
	{"CAPAD1778W60L1100D500", 11, 5, 5, 17.78, 1.6, 0.8},
	{"CAPAD2032W60L1100D500", 11, 5, 5, 20.32, 1.6, 0.8},
	{"CAPAD1778W80L1200D630", 12, 6.3, 6.3, 17.78, 2, 1},
	{"CAPAD2032W80L1200D630", 12, 6.3, 6.3, 20.32, 2, 1},
	{"CAPAD2286W80L1200D630", 12, 6.3, 6.3, 22.86, 2, 1},
	{"CAPAD2032W80L1600D800", 16, 8, 8, 20.32, 2, 1},
	{"CAPAD2286W80L1600D800", 16, 8, 8, 22.86, 2, 1},
	{"CAPAD2540W80L1600D800", 16, 8, 8, 25.4, 2, 1},
	{"CAPAD2540W80L2000D1000", 20, 10, 10, 25.4, 2, 1},
	{"CAPAD2794W80L2000D1000", 20, 10, 10, 27.94, 2, 1},
	{"CAPAD3048W80L2000D1000", 20, 10, 10, 30.48, 2, 1},
	{"CAPAD3048W100L2500D1250", 25, 12.5, 12.5, 30.48, 2.5, 1.2},
	{"CAPAD3302W100L2500D1250", 25, 12.5, 12.5, 33.02, 2.5, 1.2},
	{"CAPAD3556W100L2500D1250", 25, 12.5, 12.5, 35.56, 2.5, 1.2},
	{"CAPAD3556W100L3000D1600", 30, 16, 16, 35.56, 2.5, 1.2},
	{"CAPAD3810W100L3000D1600", 30, 16, 16, 38.1, 2.5, 1.2},
	{"CAPAD4064W100L3000D1600", 30, 16, 16, 40.64, 2.5, 1.2},
}

// Axial resistors by DIN size, each at three lead spacings.
var resPresets = []lead{
	{"RESAD762W60L360D160", 3.6, 1.6, 1.6, 7.62, 1.6, 0.8},
	{"RESAD1016W60L360D160", 3.6, 1.6, 1.6, 10.16, 1.6, 0.8},
	{"RESAD1270W60L360D160", 3.6, 1.6, 1.6, 12.7, 1.6, 0.8},
	{"RESAD1016W60L630D250", 6.3, 2.5, 2.5, 10.16, 1.6, 0.8},
	{"RESAD1270W60L630D250", 6.3, 2.5, 2.5, 12.7, 1.6, 0.8},
	{"RESAD1524W60L630D250", 6.3, 2.5, 2.5, 15.24, 1.6, 0.8},
	{"RESAD1270W60L850D320", 8.5, 3.2, 3.2, 12.7, 1.6, 0.8},
	{"RESAD1524W60L850D320", 8.5, 3.2, 3.2, 15.24, 1.6, 0.8},
	{"RESAD1778W60L850D320", 8.5, 3.2, 3.2, 17.78, 1.6, 0.8},
	{"RESAD1270W60L990D360", 9.9, 3.6, 3.6, 12.7, 1.6, 0.8},
	{"RESAD1524W60L990D360", 9.9, 3.6, 3.6, 15.24, 1.6, 0.8},
	{"RESAD1778W60L990D360", 9.9, 3.6, 3.6, 17.78, 1.6, 0.8},
	{"RESAD1524W60L1190D450", 11.9, 4.5, 4.5, 15.24, 1.6, 0.8},
	{"RESAD1778W60L1190D450", 11.9, 4.5, 4.5, 17.78, 1.6, 0.8},
	{"RESAD2032W60L1190D450", 11.9, 4.5, 4.5, 20.32, 1.6, 0.8},
	{"RESAD2032W80L1700D600", 17, 6, 6, 20.32, 2, 1},
	{"RESAD2286W80L1700D600", 17, 6, 6, 22.86, 2, 1},
	{"RESAD2540W80L1700D600", 17, 6, 6, 25.4, 2, 1},
	{"RESAD2540W80L2200D950", 22, 9.5, 9.5, 25.4, 2, 1},
	{"RESAD2794W80L2200D950", 22, 9.5, 9.5, 27.94, 2, 1},
	{"RESAD3048W80L2200D950", 22, 9.5, 9.5, 30.48, 2, 1},
}

// Radial electrolytic cans.
var capprPresets = []lead{
	{"CAPPRD150W40D400H500", 4, 4, 5, 1.5, 1.2, 0.6},
	{"CAPPRD150W40D400H700", 4, 4, 7, 1.5, 1.2, 0.6},
	{"CAPPRD200W40D500H500", 5, 5, 5, 2, 1.2, 0.6},
	{"CAPPRD200W40D500H1100", 5, 5, 11, 2, 1.2, 0.6},
	{"CAPPRD250W60D630H500", 6.3, 6.3, 5, 2.5, 1.6, 0.8},
	{"CAPPRD250W60D630H700", 6.3, 6.3, 7, 2.5, 1.6, 0.8},
	{"CAPPRD250W60D630H1100", 6.3, 6.3, 11, 2.5, 1.6, 0.8},
	{"CAPPRD350W60D800H650", 8, 8, 6.5, 3.5, 1.6, 0.8},
	{"CAPPRD350W60D800H1150", 8, 8, 11.5, 3.5, 1.6, 0.8},
	{"CAPPRD350W60D800H1500", 8, 8, 15, 3.5, 1.6, 0.8},
	{"CAPPRD500W80D1000H1250", 10, 10, 12.5, 5, 2, 1},
	{"CAPPRD500W80D1000H1600", 10, 10, 16, 5, 2, 1},
	{"CAPPRD500W80D1000H2000", 10, 10, 20, 5, 2, 1},
	{"CAPPRD500W80D1250H2000", 12.5, 12.5, 20, 5, 2, 1},
	{"CAPPRD500W80D1250H2500", 12.5, 12.5, 25, 5, 2, 1},
	{"CAPPRD750W80D1600H2500", 16, 16, 25, 7.5, 2, 1},
	{"CAPPRD750W80D1600H3150", 16, 16, 31.5, 7.5, 2, 1},
	{"CAPPRD750W80D1800H3550", 18, 18, 35.5, 7.5, 2, 1},
	{"CAPPRD750W80D1800H4000", 18, 18, 40, 7.5, 2, 1},
}

var to92Presets = []to92{
	{"TO92", 4.8, 3.8, 4.8, 1.27, 1, 0.6},
	{"TO92-254", 4.8, 3.8, 4.8, 2.54, 1.5, 0.8},
	{"TO92S", 4, 3.2, 4, 1.27, 1, 0.6},
	{"TO92S-254", 4, 3.2, 4, 2.54, 1.5, 0.8},
	{"TO92L", 5, 4, 7.8, 1.27, 1.05, 0.65},
	{"TO92L-254", 5, 4, 7.8, 2.54, 1.6, 0.9},
	{"TO92W", 5.2, 4.2, 5.2, 2.54, 1.8, 1},
}
