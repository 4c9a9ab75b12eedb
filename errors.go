package searchkey

import "errors"

var (
	// ErrEmptyInput indicates an operation that needs text received an empty string.
	ErrEmptyInput = errors.New("searchkey: empty input")

	// ErrInvalidProfile indicates a normalization profile could not be parsed or validated.
	ErrInvalidProfile = errors.New("searchkey: invalid profile")

	// ErrInvalidSecretSize indicates a digest secret is not exactly 32 bytes.
	ErrInvalidSecretSize = errors.New("searchkey: secret must be 32 bytes")

	// ErrSecretNotFound indicates the requested secret ID is not registered.
	ErrSecretNotFound = errors.New("searchkey: secret not found")

	// ErrNoSecrets indicates no secrets were provided to the digester.
	ErrNoSecrets = errors.New("searchkey: no secrets provided")

	// ErrDefaultSecretNotFound indicates the default secret ID is not registered.
	ErrDefaultSecretNotFound = errors.New("searchkey: default secret not found")

	// ErrInvalidSecretID indicates a secret ID is empty or longer than 255 bytes.
	ErrInvalidSecretID = errors.New("searchkey: secret ID must be 1-255 bytes")

	// ErrDigesterClosed indicates the digester was used after Close() was called.
	ErrDigesterClosed = errors.New("searchkey: digester is closed")

	// ErrInvalidFormat indicates an index snapshot is malformed.
	ErrInvalidFormat = errors.New("searchkey: invalid snapshot format")

	// ErrUnsupportedVersion indicates an index snapshot was written by a newer format.
	ErrUnsupportedVersion = errors.New("searchkey: unsupported snapshot version")

	// ErrDecompressionFailed indicates zstd decompression of a snapshot failed.
	ErrDecompressionFailed = errors.New("searchkey: decompression failed")
)
