package searchkey

// Index snapshot format:
// [version:1][flag:1][payload]
//
// Flag byte values:
//   0x00 = payload stored as is
//   0x01 = payload zstd compressed
//
// The payload is a gob-encoded map of document ID to word keys.

const (
	snapshotVersion byte = 0x01

	flagNoCompression byte = 0x00
	flagZstd          byte = 0x01

	snapshotHeaderSize = 2
)

// formatSnapshot assembles a snapshot from an encoded payload.
func formatSnapshot(payload []byte) []byte {
	body, flag := maybeCompress(payload)
	out := make([]byte, 0, snapshotHeaderSize+len(body))
	out = append(out, snapshotVersion, flag)
	return append(out, body...)
}

// parseSnapshot validates the header and returns the decompressed payload.
func parseSnapshot(data []byte) ([]byte, error) {
	if len(data) < snapshotHeaderSize+1 {
		return nil, ErrInvalidFormat
	}
	if data[0] != snapshotVersion {
		return nil, ErrUnsupportedVersion
	}
	return decompress(data[snapshotHeaderSize:], data[1])
}
