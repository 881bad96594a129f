package filters

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeChain(t *testing.T) {
	original := []byte("q 1 0 0 1 50 50 cm 0 0 m 10 0 l S Q")

	compressed := zlibCompress(original)
	hexed := []byte(hex.EncodeToString(compressed) + ">")
	a85 := encode85(compressed)

	tests := []struct {
		name  string
		data  []byte
		chain []string
	}{
		{"none", original, nil},
		{"flate", compressed, []string{Flate}},
		{"hex then flate", hexed, []string{ASCIIHex, Flate}},
		{"85 then flate abbreviated", a85, []string{"A85", "Fl"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(tt.data, tt.chain...)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(decoded, original) {
				t.Errorf("decoded data doesn't match\ngot:  %q\nwant: %q", decoded, original)
			}
		})
	}
}

func TestDecodeUnsupported(t *testing.T) {
	if _, err := Decode([]byte("x"), "LZWDecode"); err == nil {
		t.Error("expected error for unsupported filter")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{"plain", []byte("0 0 m 1 1 l S"), nil},
		{"flate", zlibCompress([]byte("BT ET")), []string{Flate}},
		{"ascii85", encode85([]byte("BT ET")), []string{ASCII85}},
		{"empty", nil, nil},
		{"digits like a dictionary header", []byte("80 0 0 80 50 50 cm 0 0 1 1 re f"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Detect(tt.data)); diff != "" {
				t.Errorf("Detect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
