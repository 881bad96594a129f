package resolver

// Family is a colour space family
type Family int

const (
	FamilyUnknown Family = iota
	DeviceGray
	DeviceRGB
	DeviceCMYK
	CalGray
	CalRGB
	Lab
	ICCBased
	Indexed
	Separation
	DeviceN
	Pattern
)

var familyNames = map[string]Family{
	"DeviceGray": DeviceGray,
	"DeviceRGB":  DeviceRGB,
	"DeviceCMYK": DeviceCMYK,
	"CalGray":    CalGray,
	"CalRGB":     CalRGB,
	"Lab":        Lab,
	"ICCBased":   ICCBased,
	"Indexed":    Indexed,
	"Separation": Separation,
	"DeviceN":    DeviceN,
	"Pattern":    Pattern,

	// inline image abbreviations
	"G":    DeviceGray,
	"RGB":  DeviceRGB,
	"CMYK": DeviceCMYK,
	"I":    Indexed,
}

// DeviceFamily looks up a colour space family by its PDF name. Names that
// need no resource dictionary entry (the device spaces and Pattern) and the
// other family names used as the first element of a colour space array are
// recognised.
func DeviceFamily(name string) (Family, bool) {
	f, ok := familyNames[name]
	return f, ok
}

// String returns the PDF name of the family
func (f Family) String() string {
	switch f {
	case DeviceGray:
		return "DeviceGray"
	case DeviceRGB:
		return "DeviceRGB"
	case DeviceCMYK:
		return "DeviceCMYK"
	case CalGray:
		return "CalGray"
	case CalRGB:
		return "CalRGB"
	case Lab:
		return "Lab"
	case ICCBased:
		return "ICCBased"
	case Indexed:
		return "Indexed"
	case Separation:
		return "Separation"
	case DeviceN:
		return "DeviceN"
	case Pattern:
		return "Pattern"
	default:
		return "Unknown"
	}
}

// Components returns the number of colour components a family takes, or 0
// when it varies or is unknown.
func (f Family) Components() int {
	switch f {
	case DeviceGray, CalGray, Indexed, Separation:
		return 1
	case DeviceRGB, CalRGB, Lab:
		return 3
	case DeviceCMYK:
		return 4
	default:
		return 0
	}
}

// IsProcess reports whether colours in the family can be shown directly with
// the gray, RGB or CMYK rule, so selecting it resets the colour to black.
func (f Family) IsProcess() bool {
	switch f {
	case DeviceGray, DeviceRGB, DeviceCMYK, CalGray, CalRGB, Lab, ICCBased:
		return true
	default:
		return false
	}
}
