package opener

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wine-explorer/api"
	"wine-explorer/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *WinesApiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWinesApiClient(api.NewHTTPClient(srv.URL))
}

func TestGetWines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wines", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":250,"page":3,"wines":[{"id":"x1","wine_name":"Margaux","vintage":2015,"tannin":4.5,"price_krw":null}]}`))
	})

	page, err := client.GetWines(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 250, page.Total)
	assert.Equal(t, 3, page.Page)
	require.Len(t, page.Wines, 1)
	assert.Equal(t, "Margaux", page.Wines[0].WineName)
	assert.Equal(t, 4.5, *page.Wines[0].Tannin)
	assert.Nil(t, page.Wines[0].PriceKRW)
}

func TestGetWines_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.GetWines(context.Background(), 1)

	var statusErr *api.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestGetWines_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative total", `{"total":-1,"page":1,"wines":[]}`},
		{"page zero", `{"total":1,"page":0,"wines":[]}`},
		{"negative price", `{"total":1,"page":1,"wines":[{"wine_name":"A","price_krw":-5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			_, err := client.GetWines(context.Background(), 1)
			assert.ErrorIs(t, err, models.ErrMalformedResponse)
		})
	}
}

func TestGetWines_NamelessRowKept(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":3,"page":1,"wines":[{"wine_name":"A"},{"wine_name":""},{"wine_name":"C"}]}`))
	})

	page, err := client.GetWines(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, page.Wines, 3)
	assert.Equal(t, "", page.Wines[1].WineName)
}

func TestSearchWines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wines/search", r.URL.Path)
		assert.Equal(t, "까베르네", r.URL.Query().Get("keyword"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(`{"total":1,"page":1,"wines":[{"wine_name":"까베르네 소비뇽"}]}`))
	})

	page, err := client.SearchWines(context.Background(), "까베르네", 1)
	require.NoError(t, err)
	assert.Len(t, page.Wines, 1)
}

func TestSearchWines_BlankKeywordSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	page, err := client.SearchWines(context.Background(), "  \t", 2)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.NotNil(t, page.Wines)
	assert.Empty(t, page.Wines)
	assert.Zero(t, hits.Load())
}

func TestGetFilterOptions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wines/filter-options", r.URL.Path)
		w.Write([]byte(`{"wine_type":["Red","White"],"country":["France"],"vintage":[2015,2016],"grape_or_style":["Merlot"]}`))
	})

	opts, err := client.GetFilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "White"}, opts.WineType)
	assert.Equal(t, []int{2015, 2016}, opts.Vintage)
}

func TestGetFilterOptions_Malformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vintage":[-1]}`))
	})

	_, err := client.GetFilterOptions(context.Background())
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
}

func TestFilterWines_PostsSparseBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wines/filter", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"page":2,"country":["Italy"],"body_min":3,"body_max":5}`, string(b))
		w.Write([]byte(`{"total":0,"page":2,"wines":[]}`))
	})

	lo, hi := 3.0, 5.0
	_, err := client.FilterWines(context.Background(), models.FilterRequest{
		Page:    2,
		Country: []string{"Italy"},
		BodyMin: &lo,
		BodyMax: &hi,
	})
	require.NoError(t, err)
}

func TestCompareWines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wines/compare", r.URL.Path)
		var req models.CompareRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a", "b"}, req.IDs)
		w.Write([]byte(`{"total":2,"page":1,"wines":[{"id":"a","wine_name":"A"},{"id":"b","wine_name":"B"}]}`))
	})

	page, err := client.CompareWines(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, page.Wines, 2)
}
