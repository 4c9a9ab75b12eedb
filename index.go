package searchkey

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Index is an in-memory inverted index from word keys to document IDs.
// It is safe for concurrent use.
type Index struct {
	mu         sync.RWMutex
	normalizer Normalizer
	docs       map[string][]string            // id -> word keys
	postings   map[string]map[string]struct{} // word key -> ids
}

// NewIndex creates an empty index. Every word is passed through n before it is
// stored or looked up; nil selects NormalizeSearch.
func NewIndex(n Normalizer) *Index {
	if n == nil {
		n = NormalizeSearch
	}
	return &Index{
		normalizer: n,
		docs:       make(map[string][]string),
		postings:   make(map[string]map[string]struct{}),
	}
}

// words splits text on anything that is not a letter, digit or mark
// and returns the distinct non-empty keys in first-seen order.
func (x *Index) words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsMark(r)
	})
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		k := x.normalizer(f)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Add indexes text under id, replacing whatever id held before.
func (x *Index) Add(id, text string) {
	words := x.words(text)

	x.mu.Lock()
	defer x.mu.Unlock()
	x.removeLocked(id)
	x.insertLocked(id, words)
}

func (x *Index) insertLocked(id string, words []string) {
	x.docs[id] = words
	for _, w := range words {
		ids := x.postings[w]
		if ids == nil {
			ids = make(map[string]struct{})
			x.postings[w] = ids
		}
		ids[id] = struct{}{}
	}
}

// Remove drops id from the index. It reports whether id was present.
func (x *Index) Remove(id string) bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.removeLocked(id)
}

func (x *Index) removeLocked(id string) bool {
	words, ok := x.docs[id]
	if !ok {
		return false
	}
	for _, w := range words {
		ids := x.postings[w]
		delete(ids, id)
		if len(ids) == 0 {
			delete(x.postings, w)
		}
	}
	delete(x.docs, id)
	return true
}

// Lookup returns the sorted IDs of documents containing every word of query.
// A query without words matches nothing.
func (x *Index) Lookup(query string) []string {
	words := x.words(query)
	if len(words) == 0 {
		return nil
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	// Intersect starting from the rarest word.
	sort.Slice(words, func(i, j int) bool {
		return len(x.postings[words[i]]) < len(x.postings[words[j]])
	})
	var out []string
	for id := range x.postings[words[0]] {
		match := true
		for _, w := range words[1:] {
			if _, ok := x.postings[w][id]; !ok {
				match = false
				break
			}
		}
		if match {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Len returns the number of indexed documents.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.docs)
}

// MarshalBinary implements encoding.BinaryMarshaler.
// Large snapshots are zstd compressed.
func (x *Index) MarshalBinary() ([]byte, error) {
	x.mu.RLock()
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(x.docs)
	x.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("encode index: %w", err)
	}
	return formatSnapshot(buf.Bytes()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The current contents are replaced. Stored keys are used as is, so the
// snapshot must come from an index with the same normalizer.
func (x *Index) UnmarshalBinary(data []byte) error {
	payload, err := parseSnapshot(data)
	if err != nil {
		return err
	}
	var docs map[string][]string
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&docs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if x.normalizer == nil {
		x.normalizer = NormalizeSearch
	}
	x.docs = make(map[string][]string, len(docs))
	x.postings = make(map[string]map[string]struct{})
	for id, words := range docs {
		x.insertLocked(id, words)
	}
	return nil
}
