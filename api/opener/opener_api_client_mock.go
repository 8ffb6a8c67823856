package opener

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"sync"

	"wine-explorer/filter"
	"wine-explorer/models"
	"wine-explorer/search"
	"wine-explorer/util"
)

// MockPageSize mirrors the backend's fixed page size.
const MockPageSize = 100

// ErrMockPage is a ready-made failure for FailPage.
var ErrMockPage = errors.New("mock page failure")

// WinesApiClientMock serves an in-memory catalog with the backend's paging
// behaviour. Individual pages can be made to fail.
type WinesApiClientMock struct {
	wines    []models.Wine
	pageSize int

	mu        sync.Mutex
	failPages map[int]error
	calls     map[string]int
}

func NewWinesApiClientMock(wines []models.Wine) *WinesApiClientMock {
	return NewWinesApiClientMockWithPageSize(wines, MockPageSize)
}

func NewWinesApiClientMockWithPageSize(wines []models.Wine, pageSize int) *WinesApiClientMock {
	if pageSize <= 0 {
		pageSize = MockPageSize
	}
	return &WinesApiClientMock{
		wines:     wines,
		pageSize:  pageSize,
		failPages: make(map[int]error),
		calls:     make(map[string]int),
	}
}

// NewWinesApiClientMockFromFile loads the catalog from a JSON fixture.
func NewWinesApiClientMockFromFile(path string) (*WinesApiClientMock, error) {
	wines, err := util.ReadWinesFromJSON(path)
	if err != nil {
		log.Printf("[WinesApiClientMock] Could not read wines fixture %s: %v", path, err)
		return nil, err
	}
	log.Printf("[WinesApiClientMock] Loaded %d wines from %s", len(wines), path)
	return NewWinesApiClientMock(wines), nil
}

// FailPage makes every later request for page fail with err.
func (c *WinesApiClientMock) FailPage(page int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failPages[page] = err
}

// Calls returns how many times the named method was invoked.
func (c *WinesApiClientMock) Calls(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

func (c *WinesApiClientMock) record(method string, page int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[method]++
	return c.failPages[page]
}

func (c *WinesApiClientMock) GetWines(ctx context.Context, page int) (*models.WinePage, error) {
	if err := c.record("GetWines", page); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.paginate(c.wines, page), nil
}

func (c *WinesApiClientMock) SearchWines(ctx context.Context, keyword string, page int) (*models.WinePage, error) {
	if search.Normalize(keyword) == "" {
		return emptyPage(page), nil
	}
	if err := c.record("SearchWines", page); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := search.Normalize(keyword)
	hits := make([]models.Wine, 0)
	for _, w := range c.wines {
		if containsAny(needle, w.WineName, w.Country, w.Subregion, w.GrapeOrStyle, w.WineType) {
			hits = append(hits, w)
		}
	}
	return c.paginate(hits, page), nil
}

func (c *WinesApiClientMock) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	if err := c.record("GetFilterOptions", 0); err != nil {
		return nil, err
	}
	opts := filter.AvailableOptionsFrom(c.wines)
	return &models.FilterOptions{
		WineType:     opts.WineTypes,
		Country:      opts.Countries,
		Vintage:      opts.Vintages,
		GrapeOrStyle: opts.GrapeVarieties,
	}, nil
}

// FilterWines applies only the dimensions the backend understands; the
// request carries no subregion or aroma.
func (c *WinesApiClientMock) FilterWines(ctx context.Context, req models.FilterRequest) (*models.WinePage, error) {
	if err := c.record("FilterWines", req.Page); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hits := filter.Apply(c.wines, filter.FromRequest(req))
	return c.paginate(hits, req.Page), nil
}

func (c *WinesApiClientMock) CompareWines(ctx context.Context, ids []string) (*models.WinePage, error) {
	if err := c.record("CompareWines", 1); err != nil {
		return nil, err
	}
	hits := make([]models.Wine, 0, len(ids))
	for _, w := range c.wines {
		if slices.Contains(ids, w.ID) {
			hits = append(hits, w)
		}
	}
	return &models.WinePage{Total: len(hits), Page: 1, Wines: hits}, nil
}

func (c *WinesApiClientMock) paginate(wines []models.Wine, page int) *models.WinePage {
	if page < 1 {
		page = 1
	}
	start := min((page-1)*c.pageSize, len(wines))
	end := min(start+c.pageSize, len(wines))
	return &models.WinePage{
		Total: len(wines),
		Page:  page,
		Wines: slices.Clone(wines[start:end]),
	}
}

func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(search.Normalize(f), needle) {
			return true
		}
	}
	return false
}
