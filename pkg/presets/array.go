package presets

import "github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"

// Grid arrays, small outline and quad flat packages.

func init() {
	for _, a := range bgaPresets {
		add(a.params(catalog.KindBGA))
	}
	for _, a := range pgaPresets {
		add(a.params(catalog.KindPGA))
	}
	for _, g := range soPresets {
		add(g.so())
	}
	for _, g := range qfpPresets {
		add(g.quad(catalog.KindQFP))
	}
	for _, g := range qfnPresets {
		add(g.quad(catalog.KindQFN))
	}
}

var bgaPresets = []array{
	{"BGA36C50P6X6_400X400X100", 6, 6, 0.5, 4, 4, 1, 0.25, 0},
	{"BGA64C50P8X8_500X500X100", 8, 8, 0.5, 5, 5, 1, 0.25, 0},
	{"BGA100C50P10X10_600X600X100", 10, 10, 0.5, 6, 6, 1, 0.25, 0},
	{"BGA144C50P12X12_700X700X100", 12, 12, 0.5, 7, 7, 1, 0.25, 0},
	{"BGA196C50P14X14_800X800X100", 14, 14, 0.5, 8, 8, 1, 0.25, 0},
	{"BGA64C65P8X8_600X600X110", 8, 8, 0.65, 6, 6, 1.1, 0.3, 0},
	{"BGA100C65P10X10_800X800X110", 10, 10, 0.65, 8, 8, 1.1, 0.3, 0},
	{"BGA144C65P12X12_900X900X110", 12, 12, 0.65, 9, 9, 1.1, 0.3, 0},
	{"BGA48C80P6X8_600X700X140", 6, 8, 0.8, 6, 7, 1.4, 0.4, 0},
	{"BGA64C80P8X8_700X700X140", 8, 8, 0.8, 7, 7, 1.4, 0.4, 0},
	{"BGA100C80P10X10_900X900X140", 10, 10, 0.8, 9, 9, 1.4, 0.4, 0},
	{"BGA144C80P12X12_1000X1000X140", 12, 12, 0.8, 10, 10, 1.4, 0.4, 0},
	{"BGA196C80P14X14_1200X1200X140", 14, 14, 0.8, 12, 12, 1.4, 0.4, 0},
	{"BGA256C80P16X16_1400X1400X140", 16, 16, 0.8, 14, 14, 1.4, 0.4, 0},
	{"BGA289C80P17X17_1400X1400X140", 17, 17, 0.8, 14, 14, 1.4, 0.4, 0},
	{"BGA100C100P10X10_1100X1100X160", 10, 10, 1, 11, 11, 1.6, 0.45, 0},
	{"BGA144C100P12X12_1300X1300X160", 12, 12, 1, 13, 13, 1.6, 0.45, 0},
	{"BGA196C100P14X14_1500X1500X160", 14, 14, 1, 15, 15, 1.6, 0.45, 0},
	{"BGA256C100P16X16_1700X1700X160", 16, 16, 1, 17, 17, 1.6, 0.45, 0},
	{"BGA324C100P18X18_1900X1900X160", 18, 18, 1, 19, 19, 1.6, 0.45, 0},
	{"BGA400C100P20X20_2100X2100X160", 20, 20, 1, 21, 21, 1.6, 0.45, 0},
	{"BGA484C100P22X22_2300X2300X160", 22, 22, 1, 23, 23, 1.6, 0.45, 0},
	{"BGA576C100P24X24_2500X2500X160", 24, 24, 1, 25, 25, 1.6, 0.45, 0},
	{"BGA676C100P26X26_2700X2700X160", 26, 26, 1, 27, 27, 1.6, 0.45, 0},
	{"BGA729C100P27X27_2800X2800X160", 27, 27, 1, 28, 28, 1.6, 0.45, 0},
	{"BGA784C100P28X28_2900X2900X160", 28, 28, 1, 29, 29, 1.6, 0.45, 0},
	{"BGA900C100P30X30_3100X3100X160", 30, 30, 1, 31, 31, 1.6, 0.45, 0},
	{"BGA1024C100P32X32_3300X3300X160", 32, 32, 1, 33, 33, 1.6, 0.45, 0},
	{"BGA1156C100P34X34_3500X3500X160", 34, 34, 1, 35, 35, 1.6, 0.45, 0},
	{"BGA225C127P15X15_1900X1900X230", 15, 15, 1.27, 19, 19, 2.3, 0.6, 0},
	{"BGA289C127P17X17_2200X2200X230", 17, 17, 1.27, 22, 22, 2.3, 0.6, 0},
	{"BGA361C127P19X19_2500X2500X230", 19, 19, 1.27, 25, 25, 2.3, 0.6, 0},
	{"BGA441C127P21X21_2700X2700X230", 21, 21, 1.27, 27, 27, 2.3, 0.6, 0},
	{"BGA529C127P23X23_3000X3000X230", 23, 23, 1.27, 30, 30, 2.3, 0.6, 0},
	{"BGA676C127P26X26_3300X3300X230", 26, 26, 1.27, 33, 33, 2.3, 0.6, 0},
}

var pgaPresets = []array{
	{"PGA100P254C10R10_2786X2786", 10, 10, 2.54, 27.86, 27.86, 2.5, 1.6, 0.9},
	{"PGA121P254C11R11_3040X3040", 11, 11, 2.54, 30.4, 30.4, 2.5, 1.6, 0.9},
	{"PGA144P254C12R12_3294X3294", 12, 12, 2.54, 32.94, 32.94, 2.5, 1.6, 0.9},
	{"PGA169P254C13R13_3548X3548", 13, 13, 2.54, 35.48, 35.48, 2.5, 1.6, 0.9},
	{"PGA196P254C14R14_3802X3802", 14, 14, 2.54, 38.02, 38.02, 2.5, 1.6, 0.9},
	{"PGA225P254C15R15_4056X4056", 15, 15, 2.54, 40.56, 40.56, 2.5, 1.6, 0.9},
	{"PGA289P254C17R17_4564X4564", 17, 17, 2.54, 45.64, 45.64, 2.5, 1.6, 0.9},
	{"PGA324P254C18R18_4818X4818", 18, 18, 2.54, 48.18, 48.18, 2.5, 1.6, 0.9},
	{"PGA361P254C19R19_5072X5072", 19, 19, 2.54, 50.72, 50.72, 2.5, 1.6, 0.9},
	{"PGA441P254C21R21_5580X5580", 21, 21, 2.54, 55.8, 55.8, 2.5, 1.6, 0.9},
}

// SOIC, TSSOP, MSOP and SSOP, some with an exposed pad.
var soPresets = []gullWing{
	{"SOIC127P600X175-8N", 0, 4, 1.27, 5.4, 0, 1.55, 0.6, 3.9, 4.9, 1.75, 0, 0},
	{"SOIC127P600X175-9N", 0, 4, 1.27, 5.4, 0, 1.55, 0.6, 3.9, 4.9, 1.75, 2.4, 3.1},
	{"SOIC127P600X175-14N", 0, 7, 1.27, 5.4, 0, 1.55, 0.6, 3.9, 8.65, 1.75, 0, 0},
	{"SOIC127P600X175-16N", 0, 8, 1.27, 5.4, 0, 1.55, 0.6, 3.9, 9.9, 1.75, 0, 0},
	{"SOIC127P1030X265-16N", 0, 8, 1.27, 9.3, 0, 2, 0.6, 7.5, 10.3, 2.65, 0, 0},
	{"SOIC127P1030X265-18N", 0, 9, 1.27, 9.3, 0, 2, 0.6, 7.5, 11.55, 2.65, 0, 0},
	{"SOIC127P1030X265-20N", 0, 10, 1.27, 9.3, 0, 2, 0.6, 7.5, 12.8, 2.65, 0, 0},
	{"SOIC127P1030X265-24N", 0, 12, 1.27, 9.3, 0, 2, 0.6, 7.5, 15.4, 2.65, 0, 0},
	{"SOIC127P1030X265-28N", 0, 14, 1.27, 9.3, 0, 2, 0.6, 7.5, 17.9, 2.65, 0, 0},
	{"TSSOP65P640X120-8N", 0, 4, 0.65, 5.8, 0, 1.5, 0.4, 4.4, 3, 1.2, 0, 0},
	{"TSSOP65P640X120-14N", 0, 7, 0.65, 5.8, 0, 1.5, 0.4, 4.4, 5, 1.2, 0, 0},
	{"TSSOP65P640X120-16N", 0, 8, 0.65, 5.8, 0, 1.5, 0.4, 4.4, 5, 1.2, 0, 0},
	{"TSSOP65P640X120-17N", 0, 8, 0.65, 5.8, 0, 1.5, 0.4, 4.4, 5, 1.2, 3, 3},
	{"TSSOP65P640X120-20N", 0, 10, 0.65, 5.8, 0, 1.5, 0.4, 4.4, 6.5, 1.2, 0, 0},
	{"TSSOP65P640X120-21N", 0, 10, 0.65, 5.8, 0, 1.5, 0.4, 4.4, 6.5, 1.2, 3, 4.2},
	{"TSSOP65P640X120-24N", 0, 12, 0.65, 5.8, 0, 1.5, 0.4, 4.4, 7.8, 1.2, 0, 0},
	{"TSSOP65P640X120-28N", 0, 14, 0.65, 5.8, 0, 1.5, 0.4, 4.4, 9.7, 1.2, 0, 0},
	{"TSSOP50P810X120-48N", 0, 24, 0.5, 7.5, 0, 1.5, 0.3, 6.1, 12.5, 1.2, 0, 0},
	{"TSSOP50P810X120-56N", 0, 28, 0.5, 7.5, 0, 1.5, 0.3, 6.1, 14, 1.2, 0, 0},
	{"MSOP65P490X110-8N", 0, 4, 0.65, 4.4, 0, 1.45, 0.4, 3, 3, 1.1, 0, 0},
	{"MSOP65P490X110-9N", 0, 4, 0.65, 4.4, 0, 1.45, 0.4, 3, 3, 1.1, 1.7, 1.8},
	{"MSOP50P490X110-10N", 0, 5, 0.5, 4.4, 0, 1.45, 0.3, 3, 3, 1.1, 0, 0},
	{"SSOP65P780X200-16N", 0, 8, 0.65, 7, 0, 1.75, 0.45, 5.3, 6.2, 2, 0, 0},
	{"SSOP65P780X200-20N", 0, 10, 0.65, 7, 0, 1.75, 0.45, 5.3, 7.2, 2, 0, 0},
	{"SSOP65P780X200-24N", 0, 12, 0.65, 7, 0, 1.75, 0.45, 5.3, 8.2, 2, 0, 0},
	{"SSOP65P780X200-28N", 0, 14, 0.65, 7, 0, 1.75, 0.45, 5.3, 10.2, 2, 0, 0},
}

var qfpPresets = []gullWing{
	{"QFP80P900X900X160-32N", 8, 8, 0.8, 8.4, 8.4, 1.5, 0.55, 7, 7, 1.6, 0, 0},
	{"QFP50P900X900X160-48N", 12, 12, 0.5, 8.4, 8.4, 1.5, 0.3, 7, 7, 1.6, 0, 0},
	{"QFP50P900X900X160-49N", 12, 12, 0.5, 8.4, 8.4, 1.5, 0.3, 7, 7, 1.6, 5, 5},
	{"QFP80P1200X1200X160-44N", 11, 11, 0.8, 11.4, 11.4, 1.5, 0.55, 10, 10, 1.6, 0, 0},
	{"QFP65P1200X1200X160-52N", 13, 13, 0.65, 11.4, 11.4, 1.5, 0.4, 10, 10, 1.6, 0, 0},
	{"QFP50P1200X1200X160-64N", 16, 16, 0.5, 11.4, 11.4, 1.5, 0.3, 10, 10, 1.6, 0, 0},
	{"QFP50P1200X1200X160-65N", 16, 16, 0.5, 11.4, 11.4, 1.5, 0.3, 10, 10, 1.6, 6, 6},
	{"QFP50P1400X1400X160-80N", 20, 20, 0.5, 13.4, 13.4, 1.5, 0.3, 12, 12, 1.6, 0, 0},
	{"QFP80P1600X1600X160-64N", 16, 16, 0.8, 15.4, 15.4, 1.5, 0.55, 14, 14, 1.6, 0, 0},
	{"QFP65P1600X1600X160-80N", 20, 20, 0.65, 15.4, 15.4, 1.5, 0.4, 14, 14, 1.6, 0, 0},
	{"QFP50P1600X1600X160-100N", 25, 25, 0.5, 15.4, 15.4, 1.5, 0.3, 14, 14, 1.6, 0, 0},
	{"QFP50P2200X2200X160-144N", 36, 36, 0.5, 21.4, 21.4, 1.5, 0.3, 20, 20, 1.6, 0, 0},
	{"QFP50P2600X2600X160-176N", 44, 44, 0.5, 25.4, 25.4, 1.5, 0.3, 24, 24, 1.6, 0, 0},
	{"QFP50P3000X3000X160-208N", 52, 52, 0.5, 29.4, 29.4, 1.5, 0.3, 28, 28, 1.6, 0, 0},
	{"QFP65P1600X2200X340-100N", 20, 30, 0.65, 15.4, 21.4, 1.5, 0.4, 14, 20, 3.4, 0, 0},
	{"QFP65P3000X3000X340-160N", 40, 40, 0.65, 29.4, 29.4, 1.5, 0.4, 28, 28, 3.4, 0, 0},
}

// Every QFN carries an exposed pad.
var qfnPresets = []gullWing{
	{"QFN50P200X200X90-9N", 2, 2, 0.5, 2, 2, 0.8, 0.3, 2, 2, 0.9, 0.7, 0.7},
	{"QFN50P300X300X90-17N", 4, 4, 0.5, 3, 3, 0.8, 0.3, 3, 3, 0.9, 1.7, 1.7},
	{"QFN65P300X300X90-13N", 3, 3, 0.65, 3, 3, 0.8, 0.35, 3, 3, 0.9, 1.7, 1.7},
	{"QFN50P400X400X90-25N", 6, 6, 0.5, 4, 4, 0.8, 0.3, 4, 4, 0.9, 2.7, 2.7},
	{"QFN65P400X400X90-17N", 4, 4, 0.65, 4, 4, 0.8, 0.35, 4, 4, 0.9, 2.7, 2.7},
	{"QFN50P400X500X90-29N", 6, 8, 0.5, 4, 5, 0.8, 0.3, 4, 5, 0.9, 2.7, 3.7},
	{"QFN50P500X500X90-33N", 8, 8, 0.5, 5, 5, 0.8, 0.3, 5, 5, 0.9, 3.7, 3.7},
	{"QFN65P500X500X90-25N", 6, 6, 0.65, 5, 5, 0.8, 0.35, 5, 5, 0.9, 3.7, 3.7},
	{"QFN50P600X600X90-41N", 10, 10, 0.5, 6, 6, 0.8, 0.3, 6, 6, 0.9, 4.7, 4.7},
	{"QFN65P600X600X90-33N", 8, 8, 0.65, 6, 6, 0.8, 0.35, 6, 6, 0.9, 4.7, 4.7},
	{"QFN50P700X700X90-49N", 12, 12, 0.5, 7, 7, 0.8, 0.3, 7, 7, 0.9, 5.7, 5.7},
	{"QFN50P800X800X90-57N", 14, 14, 0.5, 8, 8, 0.8, 0.3, 8, 8, 0.9, 6.7, 6.7},
	{"QFN50P900X900X90-65N", 16, 16, 0.5, 9, 9, 0.8, 0.3, 9, 9, 0.9, 7.7, 7.7},
}
