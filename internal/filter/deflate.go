package filter

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
)

// Inflate decodes a raw RFC 1951 deflate stream. No repository anywhere
// in the retrieval pack pulls in a third-party inflate implementation for
// this; compress/flate is the idiomatic choice here, and is the one
// ambient leaf where the corpus itself stays on the standard library.
func Inflate(src []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(src))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	return out, nil
}
