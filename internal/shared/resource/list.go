package resource

import (
	"context"
	"fmt"

	"github.com/binagroup/complex-api-server/internal/shared/response"
	"gorm.io/gorm"
)

// List runs the shared paginated list flow: count, validate the page bound,
// fetch the page and map each row to its response shape.
func List[T any, D any](
	ctx context.Context,
	db *gorm.DB,
	repo *Repository[T],
	page, limit int,
	mapFn func(*T) D,
) ([]D, response.Pagination, error) {
	total, err := repo.Count(ctx, db)
	if err != nil {
		return nil, response.Pagination{}, fmt.Errorf("count rows: %w", err)
	}

	pg, err := Paginate(page, limit, total)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	rows, err := repo.ListPage(ctx, db, page, limit)
	if err != nil {
		return nil, response.Pagination{}, fmt.Errorf("list page: %w", err)
	}

	details := make([]D, 0, len(rows))
	for i := range rows {
		details = append(details, mapFn(&rows[i]))
	}
	return details, pg, nil
}
