package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/time/rate"

	"wine-explorer/metrics"
	"wine-explorer/models"
)

const (
	// DefaultPageConcurrency bounds in-flight page requests.
	DefaultPageConcurrency = 5

	// DefaultPageInterval paces page request starts.
	DefaultPageInterval = 10 * time.Millisecond
)

// PageFunc fetches one page of some paginated wines endpoint.
type PageFunc func(ctx context.Context, page int) (*models.WinePage, error)

// ProgressFunc is told how many of the total pages have settled.
type ProgressFunc func(done, total int)

// PageAggregator rebuilds a logical collection from a backend that serves a
// fixed page size regardless of what the caller asks for.
type PageAggregator struct {
	concurrency int
	interval    time.Duration
	progress    ProgressFunc
}

// AggregatorOption configures a PageAggregator.
type AggregatorOption func(*PageAggregator) error

// WithConcurrency sets the worker pool width. Values below 1 become 1.
func WithConcurrency(n int) AggregatorOption {
	return func(a *PageAggregator) error {
		if n < 1 {
			n = 1
		}
		a.concurrency = n
		return nil
	}
}

// WithPageInterval sets the minimum spacing between page request starts once
// the initial burst of one request per worker is spent. Zero disables pacing.
func WithPageInterval(d time.Duration) AggregatorOption {
	return func(a *PageAggregator) error {
		if d < 0 {
			return fmt.Errorf("page interval must not be negative: %v", d)
		}
		a.interval = d
		return nil
	}
}

// WithProgress registers a callback invoked after every settled page,
// page 1 included. Calls are serialized.
func WithProgress(fn ProgressFunc) AggregatorOption {
	return func(a *PageAggregator) error {
		a.progress = fn
		return nil
	}
}

func NewPageAggregator(opts ...AggregatorOption) (*PageAggregator, error) {
	a := &PageAggregator{
		concurrency: DefaultPageConcurrency,
		interval:    DefaultPageInterval,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// FetchUpTo collects at most limit wines from fetch. Page 1 must succeed and
// supplies the grand total and the page size; later pages are fetched
// through a bounded pool, and a failed page contributes nothing. Wines keep
// ascending page order. Total is always the server-reported grand total.
func (a *PageAggregator) FetchUpTo(ctx context.Context, limit int, fetch PageFunc) (*models.WineCollection, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	start := time.Now()

	first, err := fetch(ctx, 1)
	if err != nil {
		metrics.IncPageFetched(metrics.PageFailed)
		return nil, fmt.Errorf("fetch page 1: %w", err)
	}
	metrics.IncPageFetched(metrics.PageOK)

	pageSize := len(first.Wines)
	if pageSize == 0 || limit <= pageSize || first.Total <= pageSize {
		a.report(1, 1)
		return a.finish(start, first.Total, truncate(first.Wines, limit)), nil
	}

	targetCount := min(limit, first.Total)
	totalPages := (targetCount + pageSize - 1) / pageSize
	log.Printf("[PageAggregator] Total items: %d, limit: %d, pages to fetch: %d", first.Total, limit, totalPages)

	pages := make([][]models.Wine, totalPages+1)
	pages[1] = first.Wines

	tracker := &progressTracker{total: totalPages, fn: a.progress}
	tracker.settle()

	if err := a.fetchRemaining(ctx, fetch, pages, tracker); err != nil {
		return nil, err
	}

	wines := make([]models.Wine, 0, targetCount)
	for _, p := range pages[1:] {
		wines = append(wines, p...)
	}
	wines = truncate(wines, limit)

	log.Printf("[PageAggregator] Total reported by server: %d, total fetched: %d", first.Total, len(wines))
	return a.finish(start, first.Total, wines), nil
}

// fetchRemaining fills pages[2:] through a pool of a.concurrency workers.
// Each worker writes only its own slot.
func (a *PageAggregator) fetchRemaining(ctx context.Context, fetch PageFunc, pages [][]models.Wine, tracker *progressTracker) error {
	pool, err := ants.NewPool(a.concurrency)
	if err != nil {
		return fmt.Errorf("create page pool: %w", err)
	}
	defer pool.Release()

	limiter := rate.NewLimiter(rate.Inf, a.concurrency)
	if a.interval > 0 {
		limiter = rate.NewLimiter(rate.Every(a.interval), a.concurrency)
	}

	var wg sync.WaitGroup
	var waitErr error
	for page := 2; page < len(pages); page++ {
		if err := limiter.Wait(ctx); err != nil {
			waitErr = err
			break
		}
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			pages[page] = a.fetchPage(ctx, fetch, page)
			tracker.settle()
		})
		if submitErr != nil {
			wg.Done()
			log.Printf("[PageAggregator] Could not schedule page %d: %v", page, submitErr)
			metrics.IncPageFetched(metrics.PageFailed)
			tracker.settle()
		}
	}
	wg.Wait()

	if waitErr != nil {
		return fmt.Errorf("aggregation interrupted: %w", waitErr)
	}
	return nil
}

func (a *PageAggregator) fetchPage(ctx context.Context, fetch PageFunc, page int) []models.Wine {
	res, err := fetch(ctx, page)
	if err != nil {
		log.Printf("[PageAggregator] Failed to fetch page %d: %v", page, err)
		metrics.IncPageFetched(metrics.PageFailed)
		return nil
	}
	metrics.IncPageFetched(metrics.PageOK)
	return res.Wines
}

func (a *PageAggregator) report(done, total int) {
	if a.progress != nil {
		a.progress(done, total)
	}
}

func (a *PageAggregator) finish(start time.Time, total int, wines []models.Wine) *models.WineCollection {
	metrics.ObserveAggregation(time.Since(start), len(wines))
	return &models.WineCollection{Total: total, Wines: wines}
}

type progressTracker struct {
	mu    sync.Mutex
	done  int
	total int
	fn    ProgressFunc
}

func (t *progressTracker) settle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	if t.fn != nil {
		t.fn(t.done, t.total)
	}
}

func truncate(wines []models.Wine, limit int) []models.Wine {
	if len(wines) > limit {
		return wines[:limit]
	}
	return wines
}
