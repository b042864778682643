package statgraph

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Index maps stat keys to attributes. Keys match exactly (case-sensitive, byte-wise).
// An Index never changes after Build.
type Index struct {
	entries map[string]Attribute
}

// Lookup returns the attribute recorded under key.
func (i *Index) Lookup(key string) (Attribute, bool) {
	if i == nil {
		return nil, false
	}
	a, ok := i.entries[key]
	return a, ok
}

// Len returns the number of indexed keys.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.entries)
}

// Keys returns the indexed keys in sorted order.
func (i *Index) Keys() []string {
	if i == nil {
		return nil
	}
	keys := make([]string, 0, len(i.entries))
	for k := range i.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Fingerprint hashes the sorted key set. Two indexes over the same keys share a fingerprint.
func (i *Index) Fingerprint() uint64 {
	d := xxhash.New()
	for _, k := range i.Keys() {
		_, _ = d.WriteString(k)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// IndexBuilder accumulates entries for a new Index.
type IndexBuilder struct {
	entries map[string]Attribute
}

// NewIndexBuilder returns an empty builder.
func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{entries: make(map[string]Attribute)}
}

// Put records a under key. A later Put for the same key wins; the return value reports an overwrite.
func (b *IndexBuilder) Put(key string, a Attribute) bool {
	_, exists := b.entries[key]
	b.entries[key] = a
	return exists
}

// Build freezes the builder into an Index. The builder must not be used afterwards.
func (b *IndexBuilder) Build() *Index {
	idx := &Index{entries: b.entries}
	b.entries = nil
	return idx
}
