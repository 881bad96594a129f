package filters

import (
	"bytes"
	"fmt"
)

// Filter names as they appear in /Filter, plus their inline abbreviations
const (
	Flate     = "FlateDecode"
	ASCIIHex  = "ASCIIHexDecode"
	ASCII85   = "ASCII85Decode"
	flateAbbr = "Fl"
	hexAbbr   = "AHx"
	a85Abbr   = "A85"
)

// Decode applies filters to data in order. An empty chain returns data
// unchanged.
func Decode(data []byte, names ...string) ([]byte, error) {
	var err error
	for _, name := range names {
		switch name {
		case Flate, flateAbbr:
			data, err = FlateDecode(data)
		case ASCIIHex, hexAbbr:
			data, err = ASCIIHexDecode(data)
		case ASCII85, a85Abbr:
			data, err = ASCII85Decode(data)
		default:
			return nil, fmt.Errorf("unsupported filter: %s", name)
		}
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Detect guesses the filter chain of data from its leading bytes. Plain
// content yields an empty chain.
func Detect(data []byte) []string {
	trimmed := bytes.TrimLeft(data, " \t\r\n\f\x00")

	switch {
	case isZlibHeader(trimmed):
		return []string{Flate}
	case bytes.HasPrefix(trimmed, []byte("<~")):
		return []string{ASCII85}
	}
	return nil
}

// isZlibHeader reports whether b starts with a deflate zlib header without
// a preset dictionary
func isZlibHeader(b []byte) bool {
	if len(b) < 2 || b[0]&0x0f != 8 || b[1]&0x20 != 0 {
		return false
	}
	return (uint16(b[0])<<8|uint16(b[1]))%31 == 0
}
