package contentstream

// Op identifies a content stream operator. The zero value is OpUnknown.
type Op int

const (
	OpUnknown Op = iota

	// graphics state
	OpSave       // q
	OpRestore    // Q
	OpConcat     // cm
	OpLineWidth  // w
	OpLineCap    // J
	OpLineJoin   // j
	OpMiterLimit // M
	OpDash       // d
	OpIntent     // ri
	OpFlatness   // i
	OpExtGState  // gs

	// path construction
	OpMoveTo    // m
	OpLineTo    // l
	OpCurveTo   // c
	OpCurveToV  // v
	OpCurveToY  // y
	OpClosePath // h
	OpRectangle // re

	// path painting
	OpStroke                 // S
	OpCloseStroke            // s
	OpFill                   // f, F
	OpFillEvenOdd            // f*
	OpFillStroke             // B
	OpFillStrokeEvenOdd      // B*
	OpCloseFillStroke        // b
	OpCloseFillStrokeEvenOdd // b*
	OpEndPath                // n

	// clipping
	OpClip        // W
	OpClipEvenOdd // W*

	// colour
	OpStrokeColorSpace // CS
	OpFillColorSpace   // cs
	OpStrokeColor      // SC
	OpStrokeColorN     // SCN
	OpFillColor        // sc
	OpFillColorN       // scn
	OpStrokeGray       // G
	OpFillGray         // g
	OpStrokeRGB        // RG
	OpFillRGB          // rg
	OpStrokeCMYK       // K
	OpFillCMYK         // k

	// text objects and state
	OpBeginText      // BT
	OpEndText        // ET
	OpCharSpacing    // Tc
	OpWordSpacing    // Tw
	OpHorizScaling   // Tz
	OpLeading        // TL
	OpFont           // Tf
	OpRenderMode     // Tr
	OpRise           // Ts
	OpMoveText       // Td
	OpMoveTextLead   // TD
	OpTextMatrix     // Tm
	OpNextLine       // T*
	OpShowText       // Tj
	OpShowTextArray  // TJ
	OpNextLineShow   // '
	OpNextLineSpaced // "

	// type 3 glyphs
	OpGlyphWidth // d0
	OpGlyphBBox  // d1

	// external objects
	OpShade      // sh
	OpXObject    // Do
	OpBeginImage // BI
	OpImageData  // ID
	OpEndImage   // EI

	// marked content and compatibility
	OpMarkPoint      // MP
	OpMarkPointProps // DP
	OpBeginMarked    // BMC
	OpBeginMarkedPr  // BDC
	OpEndMarked      // EMC
	OpBeginCompat    // BX
	OpEndCompat      // EX
)

var opNames = map[string]Op{
	"q": OpSave, "Q": OpRestore, "cm": OpConcat, "w": OpLineWidth,
	"J": OpLineCap, "j": OpLineJoin, "M": OpMiterLimit, "d": OpDash,
	"ri": OpIntent, "i": OpFlatness, "gs": OpExtGState,

	"m": OpMoveTo, "l": OpLineTo, "c": OpCurveTo, "v": OpCurveToV,
	"y": OpCurveToY, "h": OpClosePath, "re": OpRectangle,

	"S": OpStroke, "s": OpCloseStroke, "f": OpFill, "F": OpFill,
	"f*": OpFillEvenOdd, "B": OpFillStroke, "B*": OpFillStrokeEvenOdd,
	"b": OpCloseFillStroke, "b*": OpCloseFillStrokeEvenOdd, "n": OpEndPath,

	"W": OpClip, "W*": OpClipEvenOdd,

	"CS": OpStrokeColorSpace, "cs": OpFillColorSpace,
	"SC": OpStrokeColor, "SCN": OpStrokeColorN,
	"sc": OpFillColor, "scn": OpFillColorN,
	"G": OpStrokeGray, "g": OpFillGray,
	"RG": OpStrokeRGB, "rg": OpFillRGB,
	"K": OpStrokeCMYK, "k": OpFillCMYK,

	"BT": OpBeginText, "ET": OpEndText,
	"Tc": OpCharSpacing, "Tw": OpWordSpacing, "Tz": OpHorizScaling,
	"TL": OpLeading, "Tf": OpFont, "Tr": OpRenderMode, "Ts": OpRise,
	"Td": OpMoveText, "TD": OpMoveTextLead, "Tm": OpTextMatrix,
	"T*": OpNextLine, "Tj": OpShowText, "TJ": OpShowTextArray,
	"'": OpNextLineShow, "\"": OpNextLineSpaced,

	"d0": OpGlyphWidth, "d1": OpGlyphBBox,

	"sh": OpShade, "Do": OpXObject,
	"BI": OpBeginImage, "ID": OpImageData, "EI": OpEndImage,

	"MP": OpMarkPoint, "DP": OpMarkPointProps,
	"BMC": OpBeginMarked, "BDC": OpBeginMarkedPr, "EMC": OpEndMarked,
	"BX": OpBeginCompat, "EX": OpEndCompat,
}

var opKeywords = func() map[Op]string {
	m := make(map[Op]string, len(opNames))
	for name, op := range opNames {
		if name == "F" {
			continue
		}
		m[op] = name
	}
	return m
}()

// LookupOp maps an operator keyword to its code. Unrecognised keywords
// return OpUnknown.
func LookupOp(keyword string) Op {
	return opNames[keyword]
}

// String returns the canonical keyword of the operator
func (op Op) String() string {
	if name, ok := opKeywords[op]; ok {
		return name
	}
	return "unknown"
}

// IsPathPainting reports whether the operator ends a path
func (op Op) IsPathPainting() bool {
	return op >= OpStroke && op <= OpEndPath
}

// IsTextShowing reports whether the operator paints glyphs
func (op Op) IsTextShowing() bool {
	switch op {
	case OpShowText, OpShowTextArray, OpNextLineShow, OpNextLineSpaced:
		return true
	}
	return false
}
