package filters

import (
	"bytes"
	"encoding/ascii85"
	"testing"
)

// encode85 wraps data the way PDF writers emit ASCII85 streams
func encode85(data []byte) []byte {
	out := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(out, data)
	return append(append([]byte("<~"), out[:n]...), "~>"...)
}

func TestASCIIHexDecode(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    []byte
	}{
		{"basic", "48656C6C6F>", []byte("Hello")},
		{"whitespace", "48 65\n6C 6c\t6F>", []byte("Hello")},
		{"odd digits", "48656C6C6>", []byte("Hell`")},
		{"no EOD", "48656C6C6F", []byte("Hello")},
		{"data after EOD", "4142>zz", []byte("AB")},
		{"empty", ">", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := ASCIIHexDecode([]byte(tt.encoded))
			if err != nil {
				t.Fatalf("ASCIIHexDecode failed: %v", err)
			}
			if !bytes.Equal(decoded, tt.want) {
				t.Errorf("decoded data doesn't match\ngot:  %q\nwant: %q", decoded, tt.want)
			}
		})
	}
}

func TestASCIIHexDecodeInvalidChar(t *testing.T) {
	if _, err := ASCIIHexDecode([]byte("4G>")); err == nil {
		t.Error("expected error for invalid hex digit")
	}
}

func TestASCII85Decode(t *testing.T) {
	original := []byte("BT /F1 12 Tf 72 712 Td (Hello) Tj ET")

	decoded, err := ASCII85Decode(encode85(original))
	if err != nil {
		t.Fatalf("ASCII85Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("decoded data doesn't match\ngot:  %s\nwant: %s", decoded, original)
	}
}

func TestASCII85DecodeZero(t *testing.T) {
	decoded, err := ASCII85Decode([]byte("z~>"))
	if err != nil {
		t.Fatalf("ASCII85Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, []byte{0, 0, 0, 0}) {
		t.Errorf("expected four zero bytes, got %v", decoded)
	}
}

func TestASCII85DecodeWhitespaceAndNoEOD(t *testing.T) {
	original := []byte("0 0 m 10 10 l S")
	encoded := encode85(original)
	encoded = encoded[2 : len(encoded)-2] // drop <~ and ~>

	var spaced []byte
	for i, c := range encoded {
		if i%3 == 0 {
			spaced = append(spaced, '\n')
		}
		spaced = append(spaced, c)
	}

	decoded, err := ASCII85Decode(spaced)
	if err != nil {
		t.Fatalf("ASCII85Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("decoded data doesn't match\ngot:  %s\nwant: %s", decoded, original)
	}
}

func TestASCII85DecodeInvalidChar(t *testing.T) {
	if _, err := ASCII85Decode([]byte("87\xFFcURD~>")); err == nil {
		t.Error("expected error for invalid ASCII85 character")
	}
}

func TestIsWhitespace(t *testing.T) {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', 0} {
		if !isWhitespace(c) {
			t.Errorf("isWhitespace(%d) should be true", c)
		}
	}
	for _, c := range []byte{'a', 'Z', '0', '!', '\x01'} {
		if isWhitespace(c) {
			t.Errorf("isWhitespace(%c) should be false", c)
		}
	}
}
