package news

import (
	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
)

type NewsRepository struct {
	*resource.Repository[model.LatestNews]
}

func NewNewsRepository() *NewsRepository {
	return &NewsRepository{Repository: resource.NewActiveRepository[model.LatestNews]()}
}
