package filters

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// maxDecoded caps the inflated size of a single content stream
const maxDecoded = 256 << 20

// FlateDecode decompresses zlib/deflate compressed data. Content streams
// never use predictors, so none are applied.
func FlateDecode(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("FlateDecode: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(reader, maxDecoded+1))
	if err != nil {
		// Truncated streams are common; keep what inflated cleanly
		if buf.Len() > 0 && (errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, zlib.ErrChecksum)) {
			return buf.Bytes(), nil
		}
		return nil, fmt.Errorf("FlateDecode: %w", err)
	}
	if n > maxDecoded {
		return nil, fmt.Errorf("FlateDecode: output exceeds %d bytes", maxDecoded)
	}

	return buf.Bytes(), nil
}
