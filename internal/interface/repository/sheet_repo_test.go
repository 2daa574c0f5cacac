package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"boardingpass-service/internal/infrastructure/cache"
	"boardingpass-service/internal/infrastructure/ratelimit"
	"boardingpass-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	values map[string][][]string
}

func (c *memoryCache) Get(ctx context.Context, key string) ([][]string, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *memoryCache) Set(ctx context.Context, key string, values [][]string) error {
	c.values[key] = values
	return nil
}

func (c *memoryCache) Close() error { return nil }

func newCSVServer(t *testing.T, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path != "/spreadsheets/d/sheet-1/export" || r.URL.Query().Get("format") != "csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleSheetRepository_CSVFallback(t *testing.T) {
	var hits int32
	srv := newCSVServer(t, "Passenger Name,Comment\nSMITH/JOHN,\"window, please\"\n\nDOE/JANE,\"said \"\"hi\"\"\"\n", &hits)

	repo := NewGoogleSheetRepository(nil, srv.Client(), nil, ratelimit.NewLimiterWithDefaults(), logger.NewNopLogger(), SheetConfig{
		SheetID:    "sheet-1",
		SheetName:  "Flights",
		CSVBaseURL: srv.URL,
	})

	values, err := repo.FetchValues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Passenger Name", "Comment"},
		{"SMITH/JOHN", "window, please"},
		{"DOE/JANE", `said "hi"`},
	}, values)
	assert.Equal(t, int32(1), hits)
}

func TestGoogleSheetRepository_UsesCache(t *testing.T) {
	var hits int32
	srv := newCSVServer(t, "a,b\n1,2\n", &hits)
	c := &memoryCache{values: map[string][][]string{}}

	repo := NewGoogleSheetRepository(nil, srv.Client(), c, nil, logger.NewNopLogger(), SheetConfig{
		SheetID:    "sheet-1",
		SheetName:  "Flights",
		CSVBaseURL: srv.URL,
	})

	for i := 0; i < 3; i++ {
		values, err := repo.FetchValues(context.Background())
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, values)
	}
	assert.Equal(t, int32(1), hits)
	assert.Len(t, c.values, 1)
	for key := range c.values {
		assert.Equal(t, cache.Key("sheet", "sheet-1", "Flights!A:Z", "0"), key)
	}
}

func TestGoogleSheetRepository_Errors(t *testing.T) {
	var hits int32
	srv := newCSVServer(t, "", &hits)

	repo := NewGoogleSheetRepository(nil, srv.Client(), nil, nil, logger.NewNopLogger(), SheetConfig{SheetName: "Flights", CSVBaseURL: srv.URL})
	_, err := repo.FetchValues(context.Background())
	assert.Error(t, err)

	repo = NewGoogleSheetRepository(nil, srv.Client(), nil, nil, logger.NewNopLogger(), SheetConfig{SheetID: "other", SheetName: "Flights", CSVBaseURL: srv.URL})
	_, err = repo.FetchValues(context.Background())
	assert.ErrorContains(t, err, "status 404")
}
