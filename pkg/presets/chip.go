package presets

import "github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"

// Two-terminal SMD parts. Names follow the IPC-7351 pattern of family,
// body length and width, height and density level.

func init() {
	for _, c := range rescPresets {
		add(c.params(catalog.KindRESC))
	}
	for _, c := range capcPresets {
		add(c.params(catalog.KindCAPC))
	}
	for _, c := range indcPresets {
		add(c.params(catalog.KindINDC))
	}
	for _, c := range capmPresets {
		add(c.params(catalog.KindCAPM))
	}
	for _, c := range capmpPresets {
		add(c.params(catalog.KindCAPMP))
	}
	for _, c := range resmPresets {
		add(c.params(catalog.KindRESM))
	}
	for _, c := range indmPresets {
		add(c.params(catalog.KindINDM))
	}
	for _, c := range diomPresets {
		add(c.params(catalog.KindDIOM))
	}
	for _, c := range diomelfPresets {
		add(c.params(catalog.KindDIOMELF))
	}
}

var rescPresets = []chip{
	{"RESC0603X26L", 0.6, 0.3, 0.26, 0.6, 0.3, 0.3},
	{"RESC0603X26N", 0.6, 0.3, 0.26, 0.7, 0.4, 0.4},
	{"RESC0603X26M", 0.6, 0.3, 0.26, 0.9, 0.6, 0.5},
	{"RESC1005X40L", 1, 0.5, 0.4, 0.85, 0.45, 0.5},
	{"RESC1005X40N", 1, 0.5, 0.4, 0.95, 0.55, 0.6},
	{"RESC1005X40M", 1, 0.5, 0.4, 1.15, 0.75, 0.7},
	{"RESC1608X55L", 1.6, 0.8, 0.55, 1.45, 0.7, 0.85},
	{"RESC1608X55N", 1.6, 0.8, 0.55, 1.55, 0.8, 0.95},
	{"RESC1608X55M", 1.6, 0.8, 0.55, 1.75, 1, 1.05},
	{"RESC2012X70L", 2, 1.25, 0.7, 1.8, 0.9, 1.35},
	{"RESC2012X70N", 2, 1.25, 0.7, 1.9, 1, 1.45},
	{"RESC2012X70M", 2, 1.25, 0.7, 2.1, 1.2, 1.55},
	{"RESC3216X70L", 3.2, 1.6, 0.7, 2.9, 1.05, 1.7},
	{"RESC3216X70N", 3.2, 1.6, 0.7, 3, 1.15, 1.8},
	{"RESC3216X70M", 3.2, 1.6, 0.7, 3.2, 1.35, 1.9},
	{"RESC3225X70L", 3.2, 2.5, 0.7, 2.9, 1.05, 2.6},
	{"RESC3225X70N", 3.2, 2.5, 0.7, 3, 1.15, 2.7},
	{"RESC3225X70M", 3.2, 2.5, 0.7, 3.2, 1.35, 2.8},
	{"RESC4532X70L", 4.5, 3.2, 0.7, 4.1, 1.25, 3.3},
	{"RESC4532X70N", 4.5, 3.2, 0.7, 4.2, 1.35, 3.4},
	{"RESC4532X70M", 4.5, 3.2, 0.7, 4.4, 1.55, 3.5},
	{"RESC5025X70L", 5, 2.5, 0.7, 4.5, 1.35, 2.6},
	{"RESC5025X70N", 5, 2.5, 0.7, 4.6, 1.45, 2.7},
	{"RESC5025X70M", 5, 2.5, 0.7, 4.8, 1.65, 2.8},
	{"RESC6332X70L", 6.3, 3.2, 0.7, 5.8, 1.4, 3.3},
	{"RESC6332X70N", 6.3, 3.2, 0.7, 5.9, 1.5, 3.4},
	{"RESC6332X70M", 6.3, 3.2, 0.7, 6.1, 1.7, 3.5},
}

var capcPresets = []chip{
	{"CAPC0603X33L", 0.6, 0.3, 0.33, 0.6, 0.3, 0.3},
	{"CAPC0603X33N", 0.6, 0.3, 0.33, 0.7, 0.4, 0.4},
	{"CAPC0603X33M", 0.6, 0.3, 0.33, 0.9, 0.6, 0.5},
	{"CAPC1005X55L", 1, 0.5, 0.55, 0.85, 0.45, 0.5},
	{"CAPC1005X55N", 1, 0.5, 0.55, 0.95, 0.55, 0.6},
	{"CAPC1005X55M", 1, 0.5, 0.55, 1.15, 0.75, 0.7},
	{"CAPC1608X90L", 1.6, 0.8, 0.9, 1.45, 0.7, 0.85},
	{"CAPC1608X90N", 1.6, 0.8, 0.9, 1.55, 0.8, 0.95},
	{"CAPC1608X90M", 1.6, 0.8, 0.9, 1.75, 1, 1.05},
	{"CAPC2012X85L", 2, 1.25, 0.85, 1.8, 0.9, 1.35},
	{"CAPC2012X85N", 2, 1.25, 0.85, 1.9, 1, 1.45},
	{"CAPC2012X85M", 2, 1.25, 0.85, 2.1, 1.2, 1.55},
	{"CAPC2012X127L", 2, 1.25, 1.27, 1.8, 0.9, 1.35},
	{"CAPC2012X127N", 2, 1.25, 1.27, 1.9, 1, 1.45},
	{"CAPC2012X127M", 2, 1.25, 1.27, 2.1, 1.2, 1.55},
	{"CAPC2012X145L", 2, 1.25, 1.45, 1.8, 0.9, 1.35},
	{"CAPC2012X145N", 2, 1.25, 1.45, 1.9, 1, 1.45},
	{"CAPC2012X145M", 2, 1.25, 1.45, 2.1, 1.2, 1.55},
	{"CAPC3216X100L", 3.2, 1.6, 1, 2.9, 1.05, 1.7},
	{"CAPC3216X100N", 3.2, 1.6, 1, 3, 1.15, 1.8},
	{"CAPC3216X100M", 3.2, 1.6, 1, 3.2, 1.35, 1.9},
	{"CAPC3216X180L", 3.2, 1.6, 1.8, 2.9, 1.05, 1.7},
	{"CAPC3216X180N", 3.2, 1.6, 1.8, 3, 1.15, 1.8},
	{"CAPC3216X180M", 3.2, 1.6, 1.8, 3.2, 1.35, 1.9},
	{"CAPC3225X200L", 3.2, 2.5, 2, 2.9, 1.05, 2.6},
	{"CAPC3225X200N", 3.2, 2.5, 2, 3, 1.15, 2.7},
	{"CAPC3225X200M", 3.2, 2.5, 2, 3.2, 1.35, 2.8},
	{"CAPC3225X270L", 3.2, 2.5, 2.7, 2.9, 1.05, 2.6},
	{"CAPC3225X270N", 3.2, 2.5, 2.7, 3, 1.15, 2.7},
	{"CAPC3225X270M", 3.2, 2.5, 2.7, 3.2, 1.35, 2.8},
	{"CAPC4532X200L", 4.5, 3.2, 2, 4.1, 1.25, 3.3},
	{"CAPC4532X200N", 4.5, 3.2, 2, 4.2, 1.35, 3.4},
	{"CAPC4532X200M", 4.5, 3.2, 2, 4.4, 1.55, 3.5},
	{"CAPC4532X300L", 4.5, 3.2, 3, 4.1, 1.25, 3.3},
	{"CAPC4532X300N", 4.5, 3.2, 3, 4.2, 1.35, 3.4},
	{"CAPC4532X300M", 4.5, 3.2, 3, 4.4, 1.55, 3.5},
	{"CAPC5750X200L", 5.7, 5, 2, 5.2, 1.5, 5.1},
	{"CAPC5750X200N", 5.7, 5, 2, 5.3, 1.6, 5.2},
	{"CAPC5750X200M", 5.7, 5, 2, 5.5, 1.8, 5.3},
	{"CAPC5750X300L", 5.7, 5, 3, 5.2, 1.5, 5.1},
	{"CAPC5750X300N", 5.7, 5, 3, 5.3, 1.6, 5.2},
	{"CAPC5750X300M", 5.7, 5, 3, 5.5, 1.8, 5.3},
}

var indcPresets = []chip{
	{"INDC1005X55L", 1, 0.5, 0.55, 0.85, 0.45, 0.5},
	{"INDC1005X55N", 1, 0.5, 0.55, 0.95, 0.55, 0.6},
	{"INDC1005X55M", 1, 0.5, 0.55, 1.15, 0.75, 0.7},
	{"INDC1608X95L", 1.6, 0.8, 0.95, 1.45, 0.7, 0.85},
	{"INDC1608X95N", 1.6, 0.8, 0.95, 1.55, 0.8, 0.95},
	{"INDC1608X95M", 1.6, 0.8, 0.95, 1.75, 1, 1.05},
	{"INDC2012X100L", 2, 1.25, 1, 1.8, 0.9, 1.35},
	{"INDC2012X100N", 2, 1.25, 1, 1.9, 1, 1.45},
	{"INDC2012X100M", 2, 1.25, 1, 2.1, 1.2, 1.55},
	{"INDC2012X125L", 2, 1.25, 1.25, 1.8, 0.9, 1.35},
	{"INDC2012X125N", 2, 1.25, 1.25, 1.9, 1, 1.45},
	{"INDC2012X125M", 2, 1.25, 1.25, 2.1, 1.2, 1.55},
	{"INDC3216X120L", 3.2, 1.6, 1.2, 2.9, 1.05, 1.7},
	{"INDC3216X120N", 3.2, 1.6, 1.2, 3, 1.15, 1.8},
	{"INDC3216X120M", 3.2, 1.6, 1.2, 3.2, 1.35, 1.9},
	{"INDC3225X220L", 3.2, 2.5, 2.2, 2.9, 1.05, 2.6},
	{"INDC3225X220N", 3.2, 2.5, 2.2, 3, 1.15, 2.7},
	{"INDC3225X220M", 3.2, 2.5, 2.2, 3.2, 1.35, 2.8},
	{"INDC4532X330L", 4.5, 3.2, 3.3, 4.1, 1.25, 3.3},
	{"INDC4532X330N", 4.5, 3.2, 3.3, 4.2, 1.35, 3.4},
	{"INDC4532X330M", 4.5, 3.2, 3.3, 4.4, 1.55, 3.5},
}

// Molded tantalum bodies, EIA case sizes.
var capmPresets = []chip{
	{"CAPM2012X120L", 2, 1.25, 1.2, 1.6, 0.9, 1},
	{"CAPM2012X120N", 2, 1.25, 1.2, 1.7, 1, 1.1},
	{"CAPM2012X120M", 2, 1.25, 1.2, 1.9, 1.2, 1.2},
	{"CAPM3216X120L", 3.2, 1.6, 1.2, 2.7, 1.5, 1.2},
	{"CAPM3216X120N", 3.2, 1.6, 1.2, 2.8, 1.6, 1.3},
	{"CAPM3216X120M", 3.2, 1.6, 1.2, 3, 1.8, 1.4},
	{"CAPM3216X180L", 3.2, 1.6, 1.8, 2.7, 1.5, 1.2},
	{"CAPM3216X180N", 3.2, 1.6, 1.8, 2.8, 1.6, 1.3},
	{"CAPM3216X180M", 3.2, 1.6, 1.8, 3, 1.8, 1.4},
	{"CAPM3528X120L", 3.5, 2.8, 1.2, 2.9, 1.6, 2.3},
	{"CAPM3528X120N", 3.5, 2.8, 1.2, 3, 1.7, 2.4},
	{"CAPM3528X120M", 3.5, 2.8, 1.2, 3.2, 1.9, 2.5},
	{"CAPM3528X210L", 3.5, 2.8, 2.1, 2.9, 1.6, 2.3},
	{"CAPM3528X210N", 3.5, 2.8, 2.1, 3, 1.7, 2.4},
	{"CAPM3528X210M", 3.5, 2.8, 2.1, 3.2, 1.9, 2.5},
	{"CAPM6032X150L", 6, 3.2, 1.5, 5.1, 2.3, 2.3},
	{"CAPM6032X150N", 6, 3.2, 1.5, 5.2, 2.4, 2.4},
	{"CAPM6032X150M", 6, 3.2, 1.5, 5.4, 2.6, 2.5},
	{"CAPM6032X280L", 6, 3.2, 2.8, 5.1, 2.3, 2.3},
	{"CAPM6032X280N", 6, 3.2, 2.8, 5.2, 2.4, 2.4},
	{"CAPM6032X280M", 6, 3.2, 2.8, 5.4, 2.6, 2.5},
	{"CAPM7343X200L", 7.3, 4.3, 2, 6.2, 2.5, 2.5},
	{"CAPM7343X200N", 7.3, 4.3, 2, 6.3, 2.6, 2.6},
	{"CAPM7343X200M", 7.3, 4.3, 2, 6.5, 2.8, 2.7},
	{"CAPM7343X310L", 7.3, 4.3, 3.1, 6.2, 2.5, 2.5},
	{"CAPM7343X310N", 7.3, 4.3, 3.1, 6.3, 2.6, 2.6},
	{"CAPM7343X310M", 7.3, 4.3, 3.1, 6.5, 2.8, 2.7},
	{"CAPM7343X430L", 7.3, 4.3, 4.3, 6.2, 2.5, 2.5},
	{"CAPM7343X430N", 7.3, 4.3, 4.3, 6.3, 2.6, 2.6},
	{"CAPM7343X430M", 7.3, 4.3, 4.3, 6.5, 2.8, 2.7},
	{"CAPM7360X380L", 7.3, 6, 3.8, 6.2, 2.5, 4},
	{"CAPM7360X380N", 7.3, 6, 3.8, 6.3, 2.6, 4.1},
	{"CAPM7360X380M", 7.3, 6, 3.8, 6.5, 2.8, 4.2},
}

var capmpPresets = []chip{
	{"CAPMP2012X120L", 2, 1.25, 1.2, 1.6, 0.9, 1},
	{"CAPMP2012X120N", 2, 1.25, 1.2, 1.7, 1, 1.1},
	{"CAPMP2012X120M", 2, 1.25, 1.2, 1.9, 1.2, 1.2},
	{"CAPMP3216X120L", 3.2, 1.6, 1.2, 2.7, 1.5, 1.2},
	{"CAPMP3216X120N", 3.2, 1.6, 1.2, 2.8, 1.6, 1.3},
	{"CAPMP3216X120M", 3.2, 1.6, 1.2, 3, 1.8, 1.4},
	{"CAPMP3216X180L", 3.2, 1.6, 1.8, 2.7, 1.5, 1.2},
	{"CAPMP3216X180N", 3.2, 1.6, 1.8, 2.8, 1.6, 1.3},
	{"CAPMP3216X180M", 3.2, 1.6, 1.8, 3, 1.8, 1.4},
	{"CAPMP3528X120L", 3.5, 2.8, 1.2, 2.9, 1.6, 2.3},
	{"CAPMP3528X120N", 3.5, 2.8, 1.2, 3, 1.7, 2.4},
	{"CAPMP3528X120M", 3.5, 2.8, 1.2, 3.2, 1.9, 2.5},
	{"CAPMP3528X210L", 3.5, 2.8, 2.1, 2.9, 1.6, 2.3},
	{"CAPMP3528X210N", 3.5, 2.8, 2.1, 3, 1.7, 2.4},
	{"CAPMP3528X210M", 3.5, 2.8, 2.1, 3.2, 1.9, 2.5},
	{"CAPMP6032X150L", 6, 3.2, 1.5, 5.1, 2.3, 2.3},
	{"CAPMP6032X150N", 6, 3.2, 1.5, 5.2, 2.4, 2.4},
	{"CAPMP6032X150M", 6, 3.2, 1.5, 5.4, 2.6, 2.5},
	{"CAPMP6032X280L", 6, 3.2, 2.8, 5.1, 2.3, 2.3},
	{"CAPMP6032X280N", 6, 3.2, 2.8, 5.2, 2.4, 2.4},
	{"CAPMP6032X280M", 6, 3.2, 2.8, 5.4, 2.6, 2.5},
	{"CAPMP7343X200L", 7.3, 4.3, 2, 6.2, 2.5, 2.5},
	{"CAPMP7343X200N", 7.3, 4.3, 2, 6.3, 2.6, 2.6},
	{"CAPMP7343X200M", 7.3, 4.3, 2, 6.5, 2.8, 2.7},
	{"CAPMP7343X310L", 7.3, 4.3, 3.1, 6.2, 2.5, 2.5},
	{"CAPMP7343X310N", 7.3, 4.3, 3.1, 6.3, 2.6, 2.6},
	{"CAPMP7343X310M", 7.3, 4.3, 3.1, 6.5, 2.8, 2.7},
	{"CAPMP7343X430L", 7.3, 4.3, 4.3, 6.2, 2.5, 2.5},
	{"CAPMP7343X430N", 7.3, 4.3, 4.3, 6.3, 2.6, 2.6},
	{"CAPMP7343X430M", 7.3, 4.3, 4.3, 6.5, 2.8, 2.7},
	{"CAPMP7360X380L", 7.3, 6, 3.8, 6.2, 2.5, 4},
	{"CAPMP7360X380N", 7.3, 6, 3.8, 6.3, 2.6, 4.1},
	{"CAPMP7360X380M", 7.3, 6, 3.8, 6.5, 2.8, 4.2},
}

var resmPresets = []chip{
	{"RESM2012X100L", 2, 1.25, 1, 1.6, 0.9, 1},
	{"RESM2012X100N", 2, 1.25, 1, 1.7, 1, 1.1},
	{"RESM2012X100M", 2, 1.25, 1, 1.9, 1.2, 1.2},
	{"RESM3216X120L", 3.2, 1.6, 1.2, 2.7, 1.5, 1.2},
	{"RESM3216X120N", 3.2, 1.6, 1.2, 2.8, 1.6, 1.3},
	{"RESM3216X120M", 3.2, 1.6, 1.2, 3, 1.8, 1.4},
	{"RESM3528X160L", 3.5, 2.8, 1.6, 2.9, 1.6, 2.3},
	{"RESM3528X160N", 3.5, 2.8, 1.6, 3, 1.7, 2.4},
	{"RESM3528X160M", 3.5, 2.8, 1.6, 3.2, 1.9, 2.5},
	{"RESM6032X250L", 6, 3.2, 2.5, 5.1, 2.3, 2.3},
	{"RESM6032X250N", 6, 3.2, 2.5, 5.2, 2.4, 2.4},
	{"RESM6032X250M", 6, 3.2, 2.5, 5.4, 2.6, 2.5},
	{"RESM7343X300L", 7.3, 4.3, 3, 6.2, 2.5, 2.5},
	{"RESM7343X300N", 7.3, 4.3, 3, 6.3, 2.6, 2.6},
	{"RESM7343X300M", 7.3, 4.3, 3, 6.5, 2.8, 2.7},
}

var indmPresets = []chip{
	{"INDM2012X100L", 2, 1.25, 1, 1.7, 0.8, 1.3},
	{"INDM2012X100N", 2, 1.25, 1, 1.8, 0.9, 1.4},
	{"INDM2012X100M", 2, 1.25, 1, 2, 1.1, 1.5},
	{"INDM3216X120L", 3.2, 1.6, 1.2, 2.7, 1.1, 1.7},
	{"INDM3216X120N", 3.2, 1.6, 1.2, 2.8, 1.2, 1.8},
	{"INDM3216X120M", 3.2, 1.6, 1.2, 3, 1.4, 1.9},
	{"INDM3225X220L", 3.2, 2.5, 2.2, 2.8, 1.1, 2.6},
	{"INDM3225X220N", 3.2, 2.5, 2.2, 2.9, 1.2, 2.7},
	{"INDM3225X220M", 3.2, 2.5, 2.2, 3.1, 1.4, 2.8},
	{"INDM4532X320L", 4.5, 3.2, 3.2, 3.9, 1.4, 3.3},
	{"INDM4532X320N", 4.5, 3.2, 3.2, 4, 1.5, 3.4},
	{"INDM4532X320M", 4.5, 3.2, 3.2, 4.2, 1.7, 3.5},
	{"INDM5650X400L", 5.6, 5, 4, 4.9, 1.7, 5.1},
	{"INDM5650X400N", 5.6, 5, 4, 5, 1.8, 5.2},
	{"INDM5650X400M", 5.6, 5, 4, 5.2, 2, 5.3},
	{"INDM6560X450L", 6.5, 6, 4.5, 5.7, 1.9, 6.1},
	{"INDM6560X450N", 6.5, 6, 4.5, 5.8, 2, 6.2},
	{"INDM6560X450M", 6.5, 6, 4.5, 6, 2.2, 6.3},
}

// SOD-123F, SMA, SMB and SMC style bodies.
var diomPresets = []chip{
	{"DIOM2513X100L", 2.5, 1.3, 1, 2.1, 0.7, 0.9},
	{"DIOM2513X100N", 2.5, 1.3, 1, 2.2, 0.8, 1},
	{"DIOM2513X100M", 2.5, 1.3, 1, 2.4, 1, 1.1},
	{"DIOM3516X110L", 3.5, 1.6, 1.1, 2.9, 1, 1.1},
	{"DIOM3516X110N", 3.5, 1.6, 1.1, 3, 1.1, 1.2},
	{"DIOM3516X110M", 3.5, 1.6, 1.1, 3.2, 1.3, 1.3},
	{"DIOM5226X210L", 5.2, 2.6, 2.1, 3.9, 1.9, 1.6},
	{"DIOM5226X210N", 5.2, 2.6, 2.1, 4, 2, 1.7},
	{"DIOM5226X210M", 5.2, 2.6, 2.1, 4.2, 2.2, 1.8},
	{"DIOM5226X240L", 5.2, 2.6, 2.4, 3.9, 1.9, 1.6},
	{"DIOM5226X240N", 5.2, 2.6, 2.4, 4, 2, 1.7},
	{"DIOM5226X240M", 5.2, 2.6, 2.4, 4.2, 2.2, 1.8},
	{"DIOM5436X210L", 5.4, 3.6, 2.1, 4.2, 2, 2.2},
	{"DIOM5436X210N", 5.4, 3.6, 2.1, 4.3, 2.1, 2.3},
	{"DIOM5436X210M", 5.4, 3.6, 2.1, 4.5, 2.3, 2.4},
	{"DIOM5436X240L", 5.4, 3.6, 2.4, 4.2, 2, 2.2},
	{"DIOM5436X240N", 5.4, 3.6, 2.4, 4.3, 2.1, 2.3},
	{"DIOM5436X240M", 5.4, 3.6, 2.4, 4.5, 2.3, 2.4},
	{"DIOM7959X240L", 7.9, 5.9, 2.4, 6.8, 2.3, 3.2},
	{"DIOM7959X240N", 7.9, 5.9, 2.4, 6.9, 2.4, 3.3},
	{"DIOM7959X240M", 7.9, 5.9, 2.4, 7.1, 2.6, 3.4},
}

// MicroMELF, MiniMELF and MELF.
var diomelfPresets = []chip{
	{"DIOMELF1911L", 1.9, 1.1, 1.1, 1.9, 0.55, 1.3},
	{"DIOMELF1911N", 1.9, 1.1, 1.1, 2, 0.65, 1.4},
	{"DIOMELF1911M", 1.9, 1.1, 1.1, 2.2, 0.85, 1.5},
	{"DIOMELF2013L", 2, 1.3, 1.3, 1.75, 0.7, 1.4},
	{"DIOMELF2013N", 2, 1.3, 1.3, 1.85, 0.8, 1.5},
	{"DIOMELF2013M", 2, 1.3, 1.3, 2.05, 1, 1.6},
	{"DIOMELF3515L", 3.5, 1.5, 1.5, 3.2, 1, 1.6},
	{"DIOMELF3515N", 3.5, 1.5, 1.5, 3.3, 1.1, 1.7},
	{"DIOMELF3515M", 3.5, 1.5, 1.5, 3.5, 1.3, 1.8},
	{"DIOMELF3616L", 3.6, 1.6, 1.6, 3.3, 1.05, 1.7},
	{"DIOMELF3616N", 3.6, 1.6, 1.6, 3.4, 1.15, 1.8},
	{"DIOMELF3616M", 3.6, 1.6, 1.6, 3.6, 1.35, 1.9},
	{"DIOMELF5225L", 5.2, 2.5, 2.5, 4.8, 1.3, 2.6},
	{"DIOMELF5225N", 5.2, 2.5, 2.5, 4.9, 1.4, 2.7},
	{"DIOMELF5225M", 5.2, 2.5, 2.5, 5.1, 1.6, 2.8},
	{"DIOMELF5924L", 5.9, 2.4, 2.4, 5.2, 1.5, 2.5},
	{"DIOMELF5924N", 5.9, 2.4, 2.4, 5.3, 1.6, 2.6},
	{"DIOMELF5924M", 5.9, 2.4, 2.4, 5.5, 1.8, 2.7},
}
