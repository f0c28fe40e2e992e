// Package compress provides optional whole-object compression for stored
// records.
//
// Compression is opt-in: the default wire format is plain JSON. A client
// configured with a compressor writes and reads that format only; the content
// type recorded on Put identifies the encoding for external consumers.
package compress

// Compressor compresses encoded records before storage.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
	// ContentType is recorded on stored objects.
	ContentType() string
}

// ByName returns a built-in compressor by its stable name.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "none":
		return None{}, true
	case "lz4":
		return NewLZ4(), true
	case "zstd":
		return NewZstd(), true
	default:
		return nil, false
	}
}

// None is the identity compressor.
type None struct{}

// Compress returns data unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns "none".
func (None) Name() string { return "none" }

// ContentType returns the plain JSON content type.
func (None) ContentType() string { return "application/json" }
