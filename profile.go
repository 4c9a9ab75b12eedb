package searchkey

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Profile is a named normalization setup loaded from YAML.
//
//	mode: phrase      # search | phrase | accents | none
//	arabic: true
//	extra:
//	  "ڠ": "غ"
type Profile struct {
	Mode   string            `yaml:"mode"`
	Arabic bool              `yaml:"arabic"`
	Extra  map[string]string `yaml:"extra"`
}

// ParseProfile decodes and validates a profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadProfile reads a profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Validate checks the mode and that every extra key is a single rune.
// An empty mode is set to ModeSearch.
func (p *Profile) Validate() error {
	switch p.Mode {
	case "":
		p.Mode = ModeSearch
	case ModeSearch, ModePhrase, ModeAccents, ModeNone:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidProfile, p.Mode)
	}
	for k := range p.Extra {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("%w: extra key %q must be a single character", ErrInvalidProfile, k)
		}
	}
	return nil
}

// Normalizer builds the normalizer described by the profile.
// Arabic folding runs after the mode, extra replacements run last.
func (p *Profile) Normalizer() Normalizer {
	var base Normalizer
	switch {
	case p.Mode == ModePhrase && p.Arabic:
		base = NormalizePhraseArabic
	case p.Mode == ModePhrase:
		base = NormalizePhraseSearch
	case p.Mode == ModeAccents:
		base = NormalizeAccents
	case p.Mode == ModeNone:
		base = NormalizeNone
	case p.Arabic:
		base = NormalizeSearchArabic
	default:
		base = NormalizeSearch
	}

	steps := []Normalizer{base}
	switch {
	case p.Arabic && p.Mode == ModeAccents:
		steps = append(steps, foldArabicWords)
	case p.Arabic && p.Mode == ModeNone:
		steps = append(steps, foldArabicText)
	}
	if len(p.Extra) > 0 {
		steps = append(steps, extraReplacer(p.Extra))
	}
	return Chain(steps...)
}

func foldArabicWords(s string) string { return foldArabic(s, true) }

func foldArabicText(s string) string { return foldArabic(s, false) }

func extraReplacer(extra map[string]string) Normalizer {
	table := make(map[rune]string, len(extra))
	for k, v := range extra {
		r, _ := utf8.DecodeRuneInString(k)
		table[r] = v
	}
	return func(s string) string {
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if rep, ok := table[r]; ok {
				out = append(out, rep...)
				continue
			}
			out = utf8.AppendRune(out, r)
		}
		return string(out)
	}
}
