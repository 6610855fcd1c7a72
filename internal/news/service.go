package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/apierror"
	"github.com/binagroup/complex-api-server/internal/shared/datefmt"
	"github.com/binagroup/complex-api-server/internal/shared/logger"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"gorm.io/gorm"
)

const resourceName = "latestNews"

// DefaultPageSize is the page size applied when the list query omits a limit.
const DefaultPageSize = 5

type NewsService struct {
	db             *gorm.DB
	newsRepository *NewsRepository
}

func NewNewsService(db *gorm.DB, newsRepository *NewsRepository) *NewsService {
	return &NewsService{
		db:             db,
		newsRepository: newsRepository,
	}
}

func (s *NewsService) Create(ctx context.Context, request *CreateNewsRequest) (*NewsResponse, error) {
	log := logger.FromContext(ctx)

	newsTime, err := datefmt.ParseDate(request.NewsTime)
	if err != nil {
		return nil, fmt.Errorf("parse newsTime: %w", err)
	}

	n := &model.LatestNews{
		Title:       request.Title,
		Description: request.Description,
		NewsTime:    &newsTime,
		Image:       request.Image,
	}
	n.Init(time.Now().UTC())

	if err := s.newsRepository.Create(ctx, s.db, n); err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}

	log.Info("news created", "id", n.ID)

	resp := newNewsResponse(n)
	return &resp, nil
}

func (s *NewsService) List(ctx context.Context, page, limit int) ([]NewsResponse, response.Pagination, error) {
	return resource.List(ctx, s.db, s.newsRepository.Repository, page, limit, newNewsResponse)
}

func (s *NewsService) Update(ctx context.Context, id uint32, request *UpdateNewsRequest) (*NewsResponse, error) {
	log := logger.FromContext(ctx)

	n, err := s.newsRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound(resourceName, id)
		}
		return nil, fmt.Errorf("load news: %w", err)
	}

	var diff resource.FieldDiff
	diff.String("title", &n.Title, request.Title)
	diff.String("description", &n.Description, request.Description)
	diff.String("image", &n.Image, request.Image)
	if request.NewsTime != "" {
		newsTime, err := datefmt.ParseDate(request.NewsTime)
		if err != nil {
			return nil, fmt.Errorf("parse newsTime: %w", err)
		}
		diff.Date("newsTime", &n.NewsTime, &newsTime)
	}

	if diff.Empty() {
		return nil, fmt.Errorf("news %d unchanged: %w", id, resource.ErrNoUpdate)
	}

	n.Touch(time.Now().UTC())
	if err := s.newsRepository.Save(ctx, s.db, n); err != nil {
		return nil, fmt.Errorf("save news: %w", err)
	}

	log.Info("news updated", "id", id, "fields", diff.Changed())

	resp := newNewsResponse(n)
	return &resp, nil
}

func (s *NewsService) Delete(ctx context.Context, id uint32) error {
	log := logger.FromContext(ctx)

	n, err := s.newsRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound(resourceName, id)
		}
		return fmt.Errorf("load news: %w", err)
	}

	n.Deactivate(time.Now().UTC())
	if err := s.newsRepository.Save(ctx, s.db, n); err != nil {
		return fmt.Errorf("deactivate news: %w", err)
	}

	log.Info("news deactivated", "id", id)
	return nil
}
