package opener

import (
	"context"

	"wine-explorer/models"
)

// WinesAPI is the consumed surface of the wines backend. Every page-shaped
// response has already passed shape validation when returned.
type WinesAPI interface {
	GetWines(ctx context.Context, page int) (*models.WinePage, error)
	SearchWines(ctx context.Context, keyword string, page int) (*models.WinePage, error)
	GetFilterOptions(ctx context.Context) (*models.FilterOptions, error)
	FilterWines(ctx context.Context, req models.FilterRequest) (*models.WinePage, error)
	CompareWines(ctx context.Context, ids []string) (*models.WinePage, error)
}
