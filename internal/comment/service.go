package comment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/apierror"
	"github.com/binagroup/complex-api-server/internal/shared/logger"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"gorm.io/gorm"
)

const resourceName = "comment"

// DefaultPageSize is the page size applied when the list query omits a limit.
const DefaultPageSize = 3

type CommentService struct {
	db                *gorm.DB
	commentRepository *CommentRepository
}

func NewCommentService(db *gorm.DB, commentRepository *CommentRepository) *CommentService {
	return &CommentService{
		db:                db,
		commentRepository: commentRepository,
	}
}

func (s *CommentService) Create(ctx context.Context, request *CreateCommentRequest) (*CommentResponse, error) {
	log := logger.FromContext(ctx)

	cm := &model.Comment{
		Name:        request.Name,
		Phone:       request.Phone,
		Email:       request.Email,
		Description: request.Description,
		CreatedDate: time.Now().UTC(),
		IsActive:    true,
	}

	if err := s.commentRepository.Create(ctx, s.db, cm); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	log.Info("comment created", "id", cm.ID, "phone", logger.MaskPhone(cm.Phone))

	resp := newCommentResponse(cm)
	return &resp, nil
}

func (s *CommentService) List(ctx context.Context, page, limit int) ([]CommentResponse, response.Pagination, error) {
	return resource.List(ctx, s.db, s.commentRepository.Repository, page, limit, newCommentResponse)
}

// Delete soft-deletes a comment. Comment has no updated_date column, so only
// the active flag moves.
func (s *CommentService) Delete(ctx context.Context, id uint32) error {
	log := logger.FromContext(ctx)

	cm, err := s.commentRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound(resourceName, id)
		}
		return fmt.Errorf("load comment: %w", err)
	}

	cm.Deactivate()
	if err := s.commentRepository.Save(ctx, s.db, cm); err != nil {
		return fmt.Errorf("deactivate comment: %w", err)
	}

	log.Info("comment deactivated", "id", id)
	return nil
}
