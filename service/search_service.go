package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"wine-explorer/api/opener"
	"wine-explorer/metrics"
	"wine-explorer/models"
	"wine-explorer/search"
)

const (
	SearchModeLocal  = "local"
	SearchModeRemote = "remote"
)

// SearchResult is one delivered remote search.
type SearchResult struct {
	Query      string
	Generation uint64
	Page       *models.WinePage
	Err        error
}

// SearchService runs local fuzzy search and debounced remote search. Every
// Submit bumps a generation counter; a remote response is delivered only if
// its generation is still the latest when it arrives.
type SearchService struct {
	api      opener.WinesAPI
	matcher  *search.Matcher
	debounce time.Duration

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	latest     *SearchResult
	discarded  uint64
	onResult   func(SearchResult)

	// deliverMu keeps the generation check and the callback together so a
	// superseded result can never be delivered after its successor.
	deliverMu sync.Mutex
}

func NewSearchService(api opener.WinesAPI, matcher *search.Matcher, debounce time.Duration) *SearchService {
	if matcher == nil {
		matcher = search.NewMatcher(search.DefaultThreshold)
	}
	return &SearchService{
		api:      api,
		matcher:  matcher,
		debounce: debounce,
	}
}

// OnResult registers the delivery callback. It runs on a timer goroutine and
// must not call Submit synchronously.
func (s *SearchService) OnResult(fn func(SearchResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResult = fn
}

// Local matches query against an in-memory catalog.
func (s *SearchService) Local(wines []models.Wine, query string) []models.Wine {
	metrics.IncSearchRequest(SearchModeLocal)
	return s.matcher.FilterWines(wines, query)
}

// Remote runs one /wines/search call immediately, without debouncing.
func (s *SearchService) Remote(ctx context.Context, query string, page int) (*models.WinePage, error) {
	metrics.IncSearchRequest(SearchModeRemote)
	return s.api.SearchWines(ctx, query, page)
}

// Submit schedules a remote search for query after the debounce delay,
// cancelling any search that has not fired yet. A blank query resolves to an
// empty page without a network call. The returned generation identifies the
// eventual result.
func (s *SearchService) Submit(ctx context.Context, query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	gen := s.generation
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(ctx, gen, query)
	})
	return gen
}

func (s *SearchService) run(ctx context.Context, gen uint64, query string) {
	if strings.TrimSpace(query) == "" {
		s.publish(SearchResult{
			Query:      query,
			Generation: gen,
			Page:       &models.WinePage{Total: 0, Page: 1, Wines: []models.Wine{}},
		})
		return
	}

	page, err := s.Remote(ctx, query, 1)
	if err != nil {
		log.Printf("[SearchService] Search %q failed: %v", query, err)
	}
	s.publish(SearchResult{Query: query, Generation: gen, Page: page, Err: err})
}

func (s *SearchService) publish(res SearchResult) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	if res.Generation != s.generation {
		s.discarded++
		current := s.generation
		s.mu.Unlock()
		metrics.IncSearchDiscarded()
		log.Printf("[SearchService] Discarding stale result for %q (generation %d, current %d)", res.Query, res.Generation, current)
		return
	}
	s.latest = &res
	cb := s.onResult
	s.mu.Unlock()

	if cb != nil {
		cb(res)
	}
}

// Latest returns the most recently delivered result, or nil.
func (s *SearchService) Latest() *SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return nil
	}
	res := *s.latest
	return &res
}

// Generation is the id of the most recent Submit.
func (s *SearchService) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Discarded counts results dropped because a newer query superseded them.
func (s *SearchService) Discarded() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discarded
}

// Stop cancels a pending search that has not fired yet.
func (s *SearchService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
}
