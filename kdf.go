package searchkey

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// infoDigest separates digest keys from any other use of the same secret.
const infoDigest = "searchkey-digest"

// deriveDigestKey derives the HMAC key for a 32-byte secret using HKDF-SHA256.
// No salt is used (nil salt means HKDF uses a zero-filled salt of HashLen bytes).
func deriveDigestKey(secret []byte) (*[32]byte, error) {
	if len(secret) != 32 {
		return nil, ErrInvalidSecretSize
	}
	var key [32]byte
	reader := hkdf.New(sha256.New, secret, nil, []byte(infoDigest))
	if _, err := io.ReadFull(reader, key[:]); err != nil {
		return nil, err
	}
	return &key, nil
}
