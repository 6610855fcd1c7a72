package member

import (
	"context"

	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"gorm.io/gorm"
)

type MemberRepository struct {
	// Members have no soft-delete flag, so listing is unfiltered
	*resource.Repository[model.Member]
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{Repository: resource.NewRepository[model.Member]()}
}

// UsernameExists reports whether the exact username is taken. The comparison
// is case-sensitive: Admin and admin are different usernames.
func (r *MemberRepository) UsernameExists(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("username = ?", username).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
