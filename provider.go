package searchkey

// SecretProvider supplies digest secrets from an external store such as
// HashiCorp Vault or a cloud secrets manager.
type SecretProvider interface {
	// GetSecret returns the 32-byte secret for id.
	GetSecret(id string) ([]byte, error)

	// DefaultSecretID returns the ID used for new digests.
	DefaultSecretID() string

	// ActiveSecretIDs returns every ID lookups should cover.
	// During rotation this includes both old and new secrets.
	ActiveSecretIDs() []string
}

// NewWithProvider creates a Digester from a SecretProvider.
// Secrets are fetched once and cached. Extra options (for example WithNormalizer) are applied after.
func NewWithProvider(provider SecretProvider, opts ...Option) (*Digester, error) {
	ids := provider.ActiveSecretIDs()
	if len(ids) == 0 {
		return nil, ErrNoSecrets
	}

	all := make([]Option, 0, len(ids)+1+len(opts))
	for _, id := range ids {
		secret, err := provider.GetSecret(id)
		if err != nil {
			return nil, err
		}
		all = append(all, WithSecret(id, secret))
		clear(secret)
	}

	defaultID := provider.DefaultSecretID()
	found := false
	for _, id := range ids {
		found = found || id == defaultID
	}
	if !found {
		return nil, ErrDefaultSecretNotFound
	}
	all = append(all, WithDefaultSecretID(defaultID))
	all = append(all, opts...)

	return New(all...)
}

// StaticSecretProvider is an in-memory SecretProvider for tests and simple deployments.
type StaticSecretProvider struct {
	secrets   map[string][]byte
	defaultID string
}

// NewStaticSecretProvider deep-copies secrets into a new provider.
func NewStaticSecretProvider(defaultID string, secrets map[string][]byte) *StaticSecretProvider {
	cp := make(map[string][]byte, len(secrets))
	for id, s := range secrets {
		cp[id] = append([]byte(nil), s...)
	}
	return &StaticSecretProvider{secrets: cp, defaultID: defaultID}
}

// GetSecret implements SecretProvider. It returns a copy.
func (p *StaticSecretProvider) GetSecret(id string) ([]byte, error) {
	s, ok := p.secrets[id]
	if !ok {
		return nil, ErrSecretNotFound
	}
	return append([]byte(nil), s...), nil
}

// DefaultSecretID implements SecretProvider.
func (p *StaticSecretProvider) DefaultSecretID() string {
	return p.defaultID
}

// ActiveSecretIDs implements SecretProvider.
func (p *StaticSecretProvider) ActiveSecretIDs() []string {
	return sortedMapKeys(p.secrets)
}

// Close zeros out all secrets. The provider should not be used afterwards.
func (p *StaticSecretProvider) Close() {
	for _, s := range p.secrets {
		clear(s)
	}
	p.secrets = nil
}
