package merchant

import (
	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
)

type MerchantRepository struct {
	*resource.Repository[model.Merchant]
}

func NewMerchantRepository() *MerchantRepository {
	return &MerchantRepository{Repository: resource.NewActiveRepository[model.Merchant]()}
}
