package repository

import (
	"context"
)

// SheetRepository reads the previous-flights spreadsheet as a header-first grid
type SheetRepository interface {
	FetchValues(ctx context.Context) ([][]string, error)
}
