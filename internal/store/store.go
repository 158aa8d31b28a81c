package store

import (
	"github.com/sahilm/fuzzy"

	"quicklaunch/internal/domain"
)

// Entry is one indexed, scorable application. Its text fields are fixed at
// construction; only the score fields are written afterwards, and only by
// the ranking engine.
type Entry struct {
	Name       string
	Exec       string
	Keywords   []string
	Categories []string
	Comment    string
	Path       string
	Terminal   bool

	// fields is the precomputed search-field table handed to the fuzzy
	// matcher: index 0 is the name, the rest are keywords. Built once from
	// the owned copies above and never exposed, so it cannot drift from
	// the text it was derived from.
	fields searchFields

	Score  int  // aggregate relevance from the last rank call
	Scored bool // false until ranked at least once with a match
}

// searchFields implements fuzzy.Source over an entry's name and keywords.
type searchFields []string

func (f searchFields) String(i int) string { return f[i] }
func (f searchFields) Len() int            { return len(f) }

// Source returns the matcher source for this entry.
func (e *Entry) Source() fuzzy.Source { return e.fields }

// FieldCount reports how many scorable fields the entry carries (name plus
// keywords).
func (e *Entry) FieldCount() int { return len(e.fields) }

// Store holds the fixed set of launchable entries for the session. A
// refresh builds a new store and swaps it in; an existing store is never
// mutated apart from per-entry scores.
type Store struct {
	entries []*Entry
}

// Build constructs a store from parsed descriptors. Non-application
// descriptors, descriptors without an executable and hidden descriptors
// cannot be launched and are silently dropped. Entry order follows input
// order; every entry owns independent copies of its text.
func Build(descs []domain.Descriptor) *Store {
	return BuildWithOptions(descs, Options{})
}

// Options adjusts store construction.
type Options struct {
	IncludeHidden bool // keep NoDisplay/Hidden descriptors (debugging)
}

// BuildWithOptions is Build with explicit options.
func BuildWithOptions(descs []domain.Descriptor, opts Options) *Store {
	entries := make([]*Entry, 0, len(descs))
	for _, d := range descs {
		if d.Kind != domain.KindApplication || d.Exec == "" {
			continue
		}
		if d.Hidden && !opts.IncludeHidden {
			continue
		}
		entries = append(entries, newEntry(d))
	}
	return &Store{entries: entries}
}

func newEntry(d domain.Descriptor) *Entry {
	e := &Entry{
		Name:       d.Name,
		Exec:       d.Exec,
		Keywords:   append([]string(nil), d.Keywords...),
		Categories: append([]string(nil), d.Categories...),
		Comment:    d.Comment,
		Path:       d.Path,
		Terminal:   d.Terminal,
	}

	fields := make(searchFields, 0, 1+len(e.Keywords))
	fields = append(fields, e.Name)
	fields = append(fields, e.Keywords...)
	e.fields = fields

	return e
}

// Len returns the number of entries in the store.
func (s *Store) Len() int { return len(s.entries) }

// Entries returns the entries in construction order. The slice is shared;
// callers must not reorder it.
func (s *Store) Entries() []*Entry { return s.entries }

// At returns the entry at index i in construction order.
func (s *Store) At(i int) *Entry { return s.entries[i] }
