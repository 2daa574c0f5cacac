package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/internal/infrastructure/cache"
	"boardingpass-service/internal/infrastructure/ratelimit"
	"boardingpass-service/pkg/logger"

	"google.golang.org/api/sheets/v4"
)

const defaultCSVBaseURL = "https://docs.google.com"

// SheetConfig locates the previous-flights spreadsheet
type SheetConfig struct {
	SheetID    string
	SheetName  string
	GID        string
	CSVBaseURL string
}

// Range returns the A1 range read through the Sheets API
func (c SheetConfig) Range() string {
	return c.SheetName + "!A:Z"
}

// GoogleSheetRepository reads the spreadsheet through the Sheets API when a
// service is configured and through the public CSV export otherwise
type GoogleSheetRepository struct {
	service    *sheets.Service
	httpClient *http.Client
	cache      cache.Cache
	limiter    *ratelimit.Limiter
	logger     logger.Logger
	cfg        SheetConfig
}

// NewGoogleSheetRepository creates a sheet repository. service may be nil.
func NewGoogleSheetRepository(
	service *sheets.Service,
	httpClient *http.Client,
	c cache.Cache,
	limiter *ratelimit.Limiter,
	logger logger.Logger,
	cfg SheetConfig,
) repository.SheetRepository {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c == nil {
		c = cache.NewNoOpCache()
	}
	if cfg.CSVBaseURL == "" {
		cfg.CSVBaseURL = defaultCSVBaseURL
	}
	if cfg.GID == "" {
		cfg.GID = "0"
	}

	return &GoogleSheetRepository{
		service:    service,
		httpClient: httpClient,
		cache:      c,
		limiter:    limiter,
		logger:     logger,
		cfg:        cfg,
	}
}

// FetchValues returns the sheet grid, header row first
func (r *GoogleSheetRepository) FetchValues(ctx context.Context) ([][]string, error) {
	if r.cfg.SheetID == "" {
		return nil, fmt.Errorf("sheet id not configured")
	}

	key := cache.Key("sheet", r.cfg.SheetID, r.cfg.Range(), r.cfg.GID)
	if values, found := r.cache.Get(ctx, key); found {
		r.logger.Debug("Sheet cache hit", "sheetId", r.cfg.SheetID)
		return values, nil
	}

	if err := r.limiter.Wait(ctx, ratelimit.UpstreamSheets); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var (
		values [][]string
		err    error
	)
	if r.service != nil {
		values, err = r.fetchFromAPI(ctx)
	} else {
		values, err = r.fetchFromCSV(ctx)
	}
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, values); err != nil {
		r.logger.Warn("Failed to cache sheet values", "error", err)
	}

	return values, nil
}

func (r *GoogleSheetRepository) fetchFromAPI(ctx context.Context) ([][]string, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.cfg.SheetID, r.cfg.Range()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet values: %w", err)
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		values = append(values, cells)
	}
	return values, nil
}

func (r *GoogleSheetRepository) fetchFromCSV(ctx context.Context) ([][]string, error) {
	url := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s",
		strings.TrimRight(r.cfg.CSVBaseURL, "/"), r.cfg.SheetID, r.cfg.GID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet csv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet csv export returned status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	values, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet csv: %w", err)
	}
	return values, nil
}
