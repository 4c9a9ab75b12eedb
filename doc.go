// Package searchkey turns free text into canonical search keys and builds
// the indexing plumbing around them.
//
// A search key is what a value looks like once casing, accents, diacritics,
// punctuation, white space and digit scripts no longer matter. Two strings a
// user would consider "the same" for search purposes produce the same key, so
// the key can be stored next to the original value and compared exactly.
//
// # Normalization
//
// Normalize produces a compact key: it lowercases with language-neutral rules,
// decomposes to NFD, keeps only lower case letters, other letters and decimal
// digits, and converts every decimal digit to ASCII:
//
//	searchkey.Normalize("  Crème Brûlée ")   // "cremebrulee"
//	searchkey.Normalize("This ١٢٨")          // "this128"
//
// NormalizePhrase keeps single spaces between words:
//
//	searchkey.NormalizePhrase(" Crème   Brûlée ") // "creme brulee"
//
// Normalization is a pure function of the input. It never consults the process
// locale and is safe for concurrent use.
//
// # Arabic
//
// FoldArabic applies Arabic-specific folding to an already normalized key:
// Alef variants become bare Alef, Teh Marbuta becomes Heh, Alef Maksura becomes
// Yeh, presentation forms fold to their base letters and Tatweel is removed:
//
//	searchkey.FoldArabic(searchkey.Normalize("أحمد"))   // "احمد"
//	searchkey.FoldArabic(searchkey.Normalize("مدرسة"))  // "مدرسه"
//
// The Is* functions classify single Arabic runes (tashkeel, sun and moon
// letters, hamza carriers and so on).
//
// # Normalizers
//
// A Normalizer is a func(string) string. The package ships normalizers for the
// common modes and GetNormalizer selects one by name:
//
//   - NormalizeSearch: compact key (mode "search")
//   - NormalizeSearchArabic: compact key with Arabic folding ("search_ar")
//   - NormalizePhraseSearch: word-preserving key ("phrase")
//   - NormalizePhraseArabic: word-preserving key with Arabic folding ("phrase_ar")
//   - NormalizeAccents: accents removed, case kept ("accents")
//   - NormalizeNone: identity ("none")
//
// Profiles loaded from YAML describe a mode plus extra character replacements:
//
//	p, err := searchkey.LoadProfile("profiles/names.yaml")
//	n := p.Normalizer()
//
// IMPORTANT: Use the same normalizer on both write and search.
//
// # Keyed Digests
//
// When the key itself must not be stored, a Digester stores an HMAC-SHA256 of
// the key instead. Digest keys are derived from 32-byte secrets with HKDF-SHA256:
//
//	d, err := searchkey.New(
//	    searchkey.WithSecret("v1", secret), // 32-byte secret
//	    searchkey.WithNormalizer(searchkey.NormalizeSearchArabic),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer d.Close()
//
//	// INSERT
//	row := d.Store("مدرسة البنات")
//	// row.Digest goes to name_digest, row.SecretID to secret_id
//
//	// SELECT
//	cond := d.SearchCondition("name", "مدرسه البنات", 1)
//	rows, _ := db.Query("SELECT id FROM schools WHERE "+cond.SQL, cond.Args...)
//
// # Secret Rotation
//
// Several secrets may be active at once. New digests use the default one and
// SearchCondition matches rows written under any of them:
//
//	d, _ := searchkey.New(
//	    searchkey.WithSecret("v1", oldSecret),
//	    searchkey.WithSecret("v2", newSecret),
//	    searchkey.WithDefaultSecretID("v2"),
//	)
//
//	if row, ok := d.Rotate(storedSecretID, value); ok {
//	    // UPDATE ... SET name_digest = row.Digest, secret_id = row.SecretID
//	}
//
// # In-memory Index
//
// Index is a small inverted index keyed by normalized words. It answers
// all-words lookups and persists itself as a versioned, optionally zstd
// compressed snapshot through MarshalBinary and UnmarshalBinary.
//
// # Integrations
//
// Package blugekey plugs a Normalizer into bluge analyzers and query builders.
// Package sqlitekey registers the normalizers as deterministic SQLite functions
// so keys can live in generated columns:
//
//	name_key TEXT GENERATED ALWAYS AS (search_key_ar(name)) STORED
//	CREATE INDEX idx_schools_name_key ON schools (name_key);
package searchkey
