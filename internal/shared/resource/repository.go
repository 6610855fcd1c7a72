// Package resource implements the paginated soft-delete resource pattern
// shared by every catalog table: one generic repository, one pagination
// contract, one list flow, and changed-field tracking for partial updates.
package resource

import (
	"context"

	"gorm.io/gorm"
)

// Repository provides the data access shared by every resource table.
// T is the gorm model type.
type Repository[T any] struct {
	activeOnly bool
}

// NewRepository creates a repository that lists every row, for tables
// without a soft-delete flag.
func NewRepository[T any]() *Repository[T] {
	return &Repository[T]{}
}

// NewActiveRepository creates a repository whose count and list queries are
// restricted to rows with is_active = true.
func NewActiveRepository[T any]() *Repository[T] {
	return &Repository[T]{activeOnly: true}
}

func (r *Repository[T]) scope(db *gorm.DB) *gorm.DB {
	if r.activeOnly {
		return db.Where("is_active = ?", true)
	}
	return db
}

// Count returns the number of rows matching the repository's active filter.
func (r *Repository[T]) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := r.scope(db.WithContext(ctx).Model(new(T))).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListPage fetches one page of rows ordered by id descending.
func (r *Repository[T]) ListPage(ctx context.Context, db *gorm.DB, page, limit int) ([]T, error) {
	var rows []T
	err := r.scope(db.WithContext(ctx).Model(new(T))).
		Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID loads a row by primary key. The active filter is deliberately not
// applied: soft-deleted rows stay reachable by direct id lookup.
func (r *Repository[T]) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new row.
func (r *Repository[T]) Create(ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Create(row).Error
}

// Save persists every field of an already-loaded row.
func (r *Repository[T]) Save(ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Save(row).Error
}
