package searchkey

import (
	"sort"
	"sync/atomic"
)

// Digester turns search keys into keyed digests that can be stored in a database
// column and matched exactly, without storing the readable key.
// It is safe for concurrent use.
type Digester struct {
	keys       map[string]*[32]byte // secretID -> derived HMAC key (cached)
	defaultID  string
	normalizer Normalizer
	closed     atomic.Bool
}

// config holds digester configuration options.
type config struct {
	secrets         map[string][]byte // secretID -> secret (32 bytes)
	defaultSecretID string
	normalizer      Normalizer
}

func defaultConfig() *config {
	return &config{
		secrets:    make(map[string][]byte),
		normalizer: NormalizeSearch,
	}
}

// sortedMapKeys returns map keys sorted alphabetically.
func sortedMapKeys[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// New creates a Digester. At least one secret must be provided via WithSecret.
//
// Example:
//
//	d, err := searchkey.New(
//	    searchkey.WithSecret("v1", secret1),
//	    searchkey.WithSecret("v2", secret2),
//	    searchkey.WithDefaultSecretID("v2"),
//	)
func New(opts ...Option) (*Digester, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.secrets) == 0 {
		return nil, ErrNoSecrets
	}
	if _, ok := cfg.secrets[cfg.defaultSecretID]; !ok {
		return nil, ErrDefaultSecretNotFound
	}
	for id := range cfg.secrets {
		if len(id) == 0 || len(id) > 255 {
			return nil, ErrInvalidSecretID
		}
	}

	// Secrets are only needed for derivation.
	defer func() {
		for _, secret := range cfg.secrets {
			clear(secret)
		}
		cfg.secrets = nil
	}()

	keys := make(map[string]*[32]byte, len(cfg.secrets))
	for id, secret := range cfg.secrets {
		k, err := deriveDigestKey(secret)
		if err != nil {
			return nil, err
		}
		keys[id] = k
	}

	return &Digester{
		keys:       keys,
		defaultID:  cfg.defaultSecretID,
		normalizer: cfg.normalizer,
	}, nil
}

// Normalizer returns the normalizer applied before digesting.
func (d *Digester) Normalizer() Normalizer {
	return d.normalizer
}

// DefaultSecretID returns the secret ID used for new digests.
func (d *Digester) DefaultSecretID() string {
	return d.defaultID
}

// ActiveSecretIDs returns all registered secret IDs, sorted alphabetically.
func (d *Digester) ActiveSecretIDs() []string {
	return sortedMapKeys(d.keys)
}

// Close zeros out all key material. The Digester is unusable afterwards.
func (d *Digester) Close() {
	d.closed.Store(true)
	for _, k := range d.keys {
		clear(k[:])
	}
	d.keys = nil
}
