package playlist

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
	"github.com/NelCSC/grupo-playlist-app/internal/search"
	"github.com/NelCSC/grupo-playlist-app/internal/shared"
	"github.com/charmbracelet/log"
)

// Searcher is the provider boundary the generator fans out against.
// Implemented by [search.Client].
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
}

// Generator aggregates provider results for a group of participants.
type Generator struct {
	searcher Searcher
	builder  QueryBuilder
	logger   *log.Logger

	// shuffle must produce an unbiased permutation. Replaceable in tests.
	shuffle func(n int, swap func(i, j int))
}

// GeneratorOption configures a [Generator].
type GeneratorOption func(*Generator)

// WithQueryBuilder replaces the default query builder.
func WithQueryBuilder(b QueryBuilder) GeneratorOption {
	return func(g *Generator) { g.builder = b }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a Generator backed by the given searcher.
func NewGenerator(s Searcher, opts ...GeneratorOption) *Generator {
	g := &Generator{
		searcher: s,
		builder:  NewQueryBuilder(0, ""),
		logger:   shared.NewLogger(nil),
		shuffle:  rand.Shuffle,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate expands participants into the derived query set, issues every
// query concurrently, and returns the deduplicated, shuffled video IDs.
//
// Input is validated before any network call: the participant list must be
// non-empty and every participant needs at least one genre. Individual query
// failures are logged and dropped, so an empty slice with a nil error means
// no candidate matched (or every query failed) and is a valid soft result.
func (g *Generator) Generate(ctx context.Context, participants []models.Participant) ([]string, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", shared.ErrInvalidInput)
	}
	for _, p := range participants {
		if len(p.Genres) == 0 {
			return nil, fmt.Errorf("%w: participant has no genres selected", shared.ErrInvalidInput)
		}
	}

	queries := g.builder.BuildAll(participants)
	g.logger.Info("generating playlist", "participants", len(participants), "queries", len(queries))

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[string]struct{})
	)

	// Join-all fan-out: every query runs regardless of sibling failures and
	// the call returns only once all of them have settled.
	for _, query := range queries {
		wg.Add(1)
		go func(query string) {
			defer wg.Done()

			results, err := g.searcher.Search(ctx, query)
			if err != nil {
				g.logger.Warn("search query failed", "query", query, "err", err)
				return
			}

			mu.Lock()
			for _, r := range results {
				if r.VideoID != "" {
					seen[r.VideoID] = struct{}{}
				}
			}
			mu.Unlock()
		}(query)
	}
	wg.Wait()

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	g.shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	g.logger.Info("playlist generated", "candidates", len(ids))
	return ids, nil
}
