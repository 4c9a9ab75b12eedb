package searchkey

// Option is a functional option for configuring a Digester.
type Option func(*config)

// WithSecret registers a 32-byte secret under the given ID.
// Multiple secrets can be registered for rotation. The first one becomes the default.
// The secret is copied when WithSecret is called, so the caller may zero the original
// afterwards. Each application of the option hands New a fresh copy, so one option can
// build any number of Digesters.
func WithSecret(id string, secret []byte) Option {
	held := make([]byte, len(secret))
	copy(held, secret)
	return func(c *config) {
		if c.secrets == nil {
			c.secrets = make(map[string][]byte)
		}
		cp := make([]byte, len(held))
		copy(cp, held)
		c.secrets[id] = cp
		if c.defaultSecretID == "" {
			c.defaultSecretID = id
		}
	}
}

// WithDefaultSecretID sets the secret used for new digests.
// The secret must be registered via WithSecret.
func WithDefaultSecretID(id string) Option {
	return func(c *config) {
		c.defaultSecretID = id
	}
}

// WithNormalizer sets the normalizer applied before digesting.
// Default is NormalizeSearch. A nil normalizer is ignored.
func WithNormalizer(n Normalizer) Option {
	return func(c *config) {
		if n != nil {
			c.normalizer = n
		}
	}
}
