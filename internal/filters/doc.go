// Package filters decodes the stream filters a page content stream may
// still carry when it is handed to the command line tool.
//
// # Supported Filters
//
// FlateDecode (zlib/deflate):
//
//	decoded, err := filters.FlateDecode(data)
//
// ASCIIHexDecode:
//
//	decoded, err := filters.ASCIIHexDecode(data)
//
// Whitespace is ignored and > ends the data.
//
// ASCII85Decode:
//
//	decoded, err := filters.ASCII85Decode(data)
//
// Filters can be chained in the order they appear in a /Filter array:
//
//	decoded, err := filters.Decode(data, "ASCII85Decode", "FlateDecode")
//
// Detect guesses the outermost filter from the leading bytes, for content
// saved without its stream dictionary.
package filters
