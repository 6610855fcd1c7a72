package complex

import (
	"context"

	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"gorm.io/gorm"
)

type ComplexRepository struct {
	*resource.Repository[model.Complex]
}

func NewComplexRepository() *ComplexRepository {
	return &ComplexRepository{Repository: resource.NewActiveRepository[model.Complex]()}
}

// FindActiveByID loads a complex that has not been soft-deleted. Used by the
// member domain to verify the referenced complex.
func (r *ComplexRepository) FindActiveByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Complex, error) {
	var row model.Complex
	err := db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
