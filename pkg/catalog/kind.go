package catalog

// PackageKind identifies one of the supported footprint families.
type PackageKind int

const (
	KindUnknown PackageKind = iota
	KindBGA
	KindCAPA
	KindCAPC
	KindCAPM
	KindCAPMP
	KindCAPPR
	KindConDIL
	KindConDIP
	KindConSIL
	KindDIOM
	KindDIOMELF
	KindDIP
	KindINDC
	KindINDM
	KindPGA
	KindQFN
	KindQFP
	KindRES
	KindRESC
	KindRESM
	KindSIL
	KindSO
	KindTO92
)

var kindNames = []string{
	"",
	"BGA",
	"CAPA",
	"CAPC",
	"CAPM",
	"CAPMP",
	"CAPPR",
	"CON_DIL",
	"CON_DIP",
	"CON_SIL",
	"DIOM",
	"DIOMELF",
	"DIP",
	"INDC",
	"INDM",
	"PGA",
	"QFN",
	"QFP",
	"RES",
	"RESC",
	"RESM",
	"SIL",
	"SO",
	"TO92",
}

var kindTable = index[PackageKind](kindNames)

// ResolvePackageKind maps a package name such as "DIOMELF" to its kind.
func ResolvePackageKind(text string) (PackageKind, error) {
	return resolve(kindTable, text, ErrUnknownPackageKind)
}

func (k PackageKind) String() string { return name(kindNames, k) }

// Known reports whether k is a supported package kind.
func (k PackageKind) Known() bool { return k > KindUnknown && int(k) < len(kindNames) }

// PackageKinds lists every supported kind in catalog order.
func PackageKinds() []PackageKind {
	kinds := make([]PackageKind, 0, len(kindNames)-1)
	for i := 1; i < len(kindNames); i++ {
		kinds = append(kinds, PackageKind(i))
	}
	return kinds
}
