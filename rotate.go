package searchkey

// StoredDigest is the pair of columns written for a searchable value.
type StoredDigest struct {
	Digest   []byte // {column}_digest
	SecretID string // secret_id
}

// Store digests s under the default secret and reports which secret was used.
// Digest is nil when the normalized key is empty.
func (d *Digester) Store(s string) *StoredDigest {
	return &StoredDigest{
		Digest:   d.Digest(s),
		SecretID: d.defaultID,
	}
}

// NeedsRotation reports whether a row digested with secretID should be recomputed.
// Empty IDs (NULL rows) never need rotation.
func (d *Digester) NeedsRotation(secretID string) bool {
	if secretID == "" {
		return false
	}
	return secretID != d.defaultID
}

// Rotate recomputes the stored digest of s with the default secret when needed.
// The second result is false when the row is already current.
func (d *Digester) Rotate(secretID, s string) (*StoredDigest, bool) {
	if !d.NeedsRotation(secretID) {
		return nil, false
	}
	return d.Store(s), true
}
