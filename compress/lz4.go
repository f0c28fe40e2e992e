package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4 compresses objects with the LZ4 frame format. Fast, modest ratio;
// suited to hot collections where decode latency dominates.
type LZ4 struct{}

// NewLZ4 creates an LZ4 compressor.
func NewLZ4() LZ4 { return LZ4{} }

// Compress implements Compressor.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress implements Compressor.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// ContentType implements Compressor.
func (LZ4) ContentType() string { return "application/json+lz4" }
