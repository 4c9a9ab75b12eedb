package searchkey

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

const (
	compressionThreshold  = 1024 // 1KB
	minCompressionSavings = 0.10

	// maxDecompressedSize bounds what a snapshot may expand to (64MB).
	maxDecompressedSize = 64 * 1024 * 1024
)

var (
	// zstd encoder and decoder are safe for concurrent EncodeAll/DecodeAll.
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdOnce    sync.Once
	zstdErr     error
)

func initZstd() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEncoder, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zstdErr != nil {
			return
		}
		zstdDecoder, zstdErr = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecompressedSize))
		if zstdErr != nil {
			zstdEncoder.Close()
			zstdEncoder = nil
		}
	})
	return zstdEncoder, zstdDecoder, zstdErr
}

// maybeCompress compresses data when it is at least compressionThreshold bytes
// and zstd saves at least 10%. It returns the payload and its flag byte.
func maybeCompress(data []byte) ([]byte, byte) {
	if len(data) < compressionThreshold {
		return data, flagNoCompression
	}
	enc, _, err := initZstd()
	if err != nil {
		return data, flagNoCompression
	}
	compressed := enc.EncodeAll(data, nil)
	savings := float64(len(data)-len(compressed)) / float64(len(data))
	if savings < minCompressionSavings {
		return data, flagNoCompression
	}
	return compressed, flagZstd
}

// decompress reverses maybeCompress according to flag.
func decompress(data []byte, flag byte) ([]byte, error) {
	switch flag {
	case flagNoCompression:
		return data, nil
	case flagZstd:
		_, dec, err := initZstd()
		if err != nil {
			return nil, err
		}
		out, err := dec.DecodeAll(data, nil)
		if err != nil || len(out) > maxDecompressedSize {
			return nil, ErrDecompressionFailed
		}
		return out, nil
	default:
		return nil, ErrInvalidFormat
	}
}
