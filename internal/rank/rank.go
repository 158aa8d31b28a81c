package rank

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"

	"quicklaunch/internal/store"
)

// EmptyQueryMode selects what an empty query returns.
type EmptyQueryMode int

const (
	// EmptyQueryAll returns every entry in store order.
	EmptyQueryAll EmptyQueryMode = iota
	// EmptyQueryNone returns no entries.
	EmptyQueryNone
)

// ParseEmptyQueryMode maps the config strings "all" and "none".
func ParseEmptyQueryMode(s string) (EmptyQueryMode, error) {
	switch s {
	case "", "all":
		return EmptyQueryAll, nil
	case "none":
		return EmptyQueryNone, nil
	default:
		return 0, fmt.Errorf("invalid empty_query mode %q (want \"all\" or \"none\")", s)
	}
}

// DefaultNameWeight is how much more a name match counts than a keyword
// match.
const DefaultNameWeight = 5

// Config configures a Ranker. The zero value is not valid; use
// DefaultConfig or fill every field.
type Config struct {
	// NameWeight multiplies the fuzzy score of a name match relative to
	// keyword matches. Must be at least 1.
	NameWeight int
	// EmptyQuery selects the result set for an empty query.
	EmptyQuery EmptyQueryMode
	// MinParallel is the store size at which scoring fans out across
	// worker goroutines. Zero keeps scoring serial.
	MinParallel int
}

// DefaultConfig returns the reference configuration: 5:1 name weighting,
// empty query shows everything, serial scoring.
func DefaultConfig() Config {
	return Config{NameWeight: DefaultNameWeight, EmptyQuery: EmptyQueryAll}
}

// Ranker scores a store against a query and returns a relevance-sorted
// result list. Per-query calls cannot fail; configuration problems are
// rejected here, at construction.
type Ranker struct {
	cfg Config
}

// New validates cfg and returns a Ranker.
func New(cfg Config) (*Ranker, error) {
	if cfg.NameWeight < 1 {
		return nil, fmt.Errorf("name weight must be at least 1, got %d", cfg.NameWeight)
	}
	if cfg.EmptyQuery != EmptyQueryAll && cfg.EmptyQuery != EmptyQueryNone {
		return nil, fmt.Errorf("invalid empty query mode %d", cfg.EmptyQuery)
	}
	if cfg.MinParallel < 0 {
		return nil, fmt.Errorf("min parallel must not be negative, got %d", cfg.MinParallel)
	}
	return &Ranker{cfg: cfg}, nil
}

// Rank scores every entry against query and returns the matches ordered by
// descending aggregate score, ties kept in store order. Entries that match
// neither name nor any keyword are omitted entirely. The returned slice is
// freshly allocated; an empty store or a query with no matches yield an
// empty slice, never an error.
func (r *Ranker) Rank(s *store.Store, query string) []*store.Entry {
	entries := s.Entries()

	if query == "" {
		for _, e := range entries {
			e.Score = 0
			e.Scored = false
		}
		if r.cfg.EmptyQuery == EmptyQueryNone {
			return []*store.Entry{}
		}
		return append([]*store.Entry(nil), entries...)
	}

	if r.cfg.MinParallel > 0 && len(entries) >= r.cfg.MinParallel {
		r.scoreParallel(entries, query)
	} else {
		for _, e := range entries {
			r.score(e, query)
		}
	}

	results := make([]*store.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Scored {
			results = append(results, e)
		}
	}

	// Stable sort keeps equal scores in store order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// score computes the aggregate relevance of one entry: the fuzzy score of
// the name weighted by NameWeight plus the unweighted fuzzy score of every
// matching keyword. No matching field leaves the entry unscored.
func (r *Ranker) score(e *store.Entry, query string) {
	matches := fuzzy.FindFromNoSort(query, e.Source())
	if len(matches) == 0 {
		e.Score = 0
		e.Scored = false
		return
	}

	total := 0
	for _, m := range matches {
		if m.Index == 0 {
			total += r.cfg.NameWeight * m.Score
		} else {
			total += m.Score
		}
	}

	e.Score = total
	e.Scored = true
}

// scoreParallel fans scoring out over worker goroutines. Entries share no
// state, so chunked workers need no synchronization beyond the final wait;
// the outcome is identical to the serial path.
func (r *Ranker) scoreParallel(entries []*store.Entry, query string) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(entries) {
		workers = len(entries)
	}
	chunk := (len(entries) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(entries); start += chunk {
		end := start + chunk
		if end > len(entries) {
			end = len(entries)
		}
		part := entries[start:end]
		g.Go(func() error {
			for _, e := range part {
				r.score(e, query)
			}
			return nil
		})
	}
	// Workers never return errors; Wait only joins them
	_ = g.Wait()
}
