package searchkey

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Digest normalizes s and returns its HMAC-SHA256 under the default secret.
// Returns nil when the normalized key is empty, so blank values store as NULL.
//
// Digests are deterministic: same key + same secret = same digest.
func (d *Digester) Digest(s string) []byte {
	if d.closed.Load() {
		panic("searchkey: use of closed Digester")
	}
	return d.digest(d.defaultID, d.normalizer(s))
}

// DigestPtr is Digest for nullable columns. A nil pointer yields nil.
func (d *Digester) DigestPtr(s *string) []byte {
	if s == nil {
		return nil
	}
	return d.Digest(*s)
}

// DigestKey digests an already normalized key without running the normalizer again.
func (d *Digester) DigestKey(k Key) []byte {
	if d.closed.Load() {
		panic("searchkey: use of closed Digester")
	}
	return d.digest(d.defaultID, k.value)
}

// DigestWithSecret digests s using a specific secret.
func (d *Digester) DigestWithSecret(id, s string) ([]byte, error) {
	if d.closed.Load() {
		return nil, ErrDigesterClosed
	}
	if _, ok := d.keys[id]; !ok {
		return nil, ErrSecretNotFound
	}
	return d.digest(id, d.normalizer(s)), nil
}

// Digests computes the digest of s under every registered secret.
// Useful for lookups that must match rows written before a rotation.
// Returns nil when the normalized key is empty.
func (d *Digester) Digests(s string) map[string][]byte {
	if d.closed.Load() {
		panic("searchkey: use of closed Digester")
	}
	normalized := d.normalizer(s)
	if normalized == "" {
		return nil
	}
	out := make(map[string][]byte, len(d.keys))
	for id := range d.keys {
		out[id] = d.digest(id, normalized)
	}
	return out
}

func (d *Digester) digest(id, normalized string) []byte {
	if normalized == "" {
		return nil
	}
	return computeHMAC(d.keys[id], []byte(normalized))
}

func computeHMAC(key *[32]byte, data []byte) []byte {
	h := hmac.New(sha256.New, key[:])
	h.Write(data)
	return h.Sum(nil)
}
