package font

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

// DecodeString turns the raw bytes of a string operand into text. Strings
// with a UTF-16 byte order mark are decoded as UTF-16; everything else is
// treated as WinAnsiEncoding, the default for simple fonts. The result is
// NFC normalised.
func DecodeString(data []byte) string {
	if len(data) >= 2 {
		var dec *encoding.Decoder
		switch {
		case data[0] == 0xFE && data[1] == 0xFF:
			dec = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		case data[0] == 0xFF && data[1] == 0xFE:
			dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		}
		if dec != nil {
			if out, err := dec.Bytes(data); err == nil {
				return norm.NFC.String(string(out))
			}
		}
	}

	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil || !utf8.Valid(out) {
		return norm.NFC.String(string(data))
	}
	return norm.NFC.String(string(out))
}
