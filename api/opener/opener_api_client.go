package opener

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"wine-explorer/api"
	"wine-explorer/models"
)

// RequestedPageSize is sent as per_page. The backend ignores it and always
// serves its own fixed page size.
const RequestedPageSize = 100

// WinesApiClient embeds the common HTTPClient.
type WinesApiClient struct {
	*api.HTTPClient
}

func NewWinesApiClient(httpClient *api.HTTPClient) *WinesApiClient {
	return &WinesApiClient{
		HTTPClient: httpClient,
	}
}

// GetWines retrieves one catalog page.
func (c *WinesApiClient) GetWines(ctx context.Context, page int) (*models.WinePage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(RequestedPageSize))
	return c.requestPage(ctx, http.MethodGet, "/wines", query, nil)
}

// SearchWines runs a server-side keyword search. A blank keyword returns an
// empty page without touching the network.
func (c *WinesApiClient) SearchWines(ctx context.Context, keyword string, page int) (*models.WinePage, error) {
	if strings.TrimSpace(keyword) == "" {
		return emptyPage(page), nil
	}
	query := url.Values{}
	query.Set("keyword", keyword)
	query.Set("page", strconv.Itoa(page))
	return c.requestPage(ctx, http.MethodGet, "/wines/search", query, nil)
}

// GetFilterOptions retrieves the categorical values present in the dataset.
func (c *WinesApiClient) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var response models.FilterOptions
	if err := c.Request(ctx, http.MethodGet, "/wines/filter-options", nil, nil, &response); err != nil {
		return nil, err
	}
	if err := models.ValidateFilterOptions(&response); err != nil {
		return nil, err
	}
	return &response, nil
}

// FilterWines posts a sparse filter request for req.Page.
func (c *WinesApiClient) FilterWines(ctx context.Context, req models.FilterRequest) (*models.WinePage, error) {
	return c.requestPage(ctx, http.MethodPost, "/wines/filter", nil, req)
}

// CompareWines retrieves the wines with the given ids.
func (c *WinesApiClient) CompareWines(ctx context.Context, ids []string) (*models.WinePage, error) {
	return c.requestPage(ctx, http.MethodPost, "/wines/compare", nil, models.CompareRequest{IDs: ids})
}

func (c *WinesApiClient) requestPage(ctx context.Context, method, endpoint string, query url.Values, body any) (*models.WinePage, error) {
	var response models.WinePage
	if err := c.Request(ctx, method, endpoint, query, body, &response); err != nil {
		return nil, err
	}
	if err := models.ValidateWinePage(&response); err != nil {
		return nil, err
	}
	return &response, nil
}

func emptyPage(page int) *models.WinePage {
	return &models.WinePage{Total: 0, Page: page, Wines: []models.Wine{}}
}
