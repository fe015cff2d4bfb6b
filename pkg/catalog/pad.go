package catalog

// PadShape is the copper shape of pins and pads.
type PadShape int

const (
	PadShapeNone PadShape = iota
	PadShapeCircular
	PadShapeRectangular
	PadShapeOctagonal
	PadShapeRoundElongated
)

var padShapeNames = []string{
	"",
	"circular pad",
	"rectangular pad",
	"octagonal pad",
	"rounded pad, elongated",
}

var padShapeTable = index[PadShape](padShapeNames)

// ResolvePadShape maps a pad shape description to its PadShape value.
func ResolvePadShape(text string) (PadShape, error) {
	return resolve(padShapeTable, text, ErrUnknownPadShape)
}

func (s PadShape) String() string { return name(padShapeNames, s) }

// Pin1Location is where pin #1 sits relative to the package body.
type Pin1Location int

const (
	Pin1None Pin1Location = iota
	Pin1UpperLeft
	Pin1MiddleLeft
	Pin1LowerLeft
	Pin1MiddleTop
	Pin1Center
	Pin1MiddleBottom
	Pin1UpperRight
	Pin1MiddleRight
	Pin1LowerRight
	Pin1LeftTopside
	Pin1RightTopside
)

var pin1Names = []string{
	"",
	"Upper left",
	"Middle left",
	"Lower left",
	"Middle top",
	"Center",
	"Middle bottom",
	"Upper right",
	"Middle right",
	"Lower right",
	"Left topside",
	"Right topside",
}

var pin1Table = index[Pin1Location](pin1Names)

// ResolvePin1Location maps a location description to its Pin1Location value.
func ResolvePin1Location(text string) (Pin1Location, error) {
	return resolve(pin1Table, text, ErrUnknownPin1Location)
}

func (l Pin1Location) String() string { return name(pin1Names, l) }

// Status is the maturity level recorded in a footprint's metadata.
type Status int

const (
	StatusNone Status = iota
	StatusExperimental
	StatusPrivate
	StatusPublic
	StatusStable
)

var statusNames = []string{"", "Experimental", "Private", "Public", "Stable"}

var statusTable = index[Status](statusNames)

// ResolveStatus maps a status name to its Status value.
func ResolveStatus(text string) (Status, error) {
	return resolve(statusTable, text, ErrUnknownStatus)
}

func (s Status) String() string { return name(statusNames, s) }
