package comment

import (
	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
)

type CommentRepository struct {
	*resource.Repository[model.Comment]
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{Repository: resource.NewActiveRepository[model.Comment]()}
}
