package complex

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

const resourceName = "complex"

// DefaultPageSize is the page size applied when the list query omits a limit.
const DefaultPageSize = 8

type ComplexService struct {
	db                *gorm.DB
	complexRepository *ComplexRepository
}

func NewComplexService(db *gorm.DB, complexRepository *ComplexRepository) *ComplexService {
	return &ComplexService{
		db:                db,
		complexRepository: complexRepository,
	}
}

func (s *ComplexService) Create(ctx context.Context, request *CreateComplexRequest) (*ComplexResponse, error) {
	log := logger.FromContext(ctx)

	cx := &model.Complex{
		Title:       request.Title,
		Address:     request.Address,
		Phone:       request.Phone,
		Email:       request.Email,
		Web:         request.Web,
		Description: request.Description,
		Image:       request.Image,
	}
	if request.OpenYear != "" {
		openYear, err := datefmt.ParseDate(request.OpenYear)
		if err != nil {
			return nil, fmt.Errorf("parse openYear: %w", err)
		}
		cx.OpenYear = &openYear
	}
	cx.Init(time.Now().UTC())

	if err := s.complexRepository.Create(ctx, s.db, cx); err != nil {
		return nil, fmt.Errorf("create complex: %w", err)
	}

	log.Info("complex created", "id", cx.ID)

	resp := newComplexResponse(cx)
	return &resp, nil
}

func (s *ComplexService) List(ctx context.Context, page, limit int) ([]ComplexResponse, response.Pagination, error) {
	return resource.List(ctx, s.db, s.complexRepository.Repository, page, limit, newComplexResponse)
}

func (s *ComplexService) Update(ctx context.Context, id uint32, request *UpdateComplexRequest) (*ComplexResponse, error) {
	log := logger.FromContext(ctx)

	cx, err := s.complexRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound(resourceName, id)
		}
		return nil, fmt.Errorf("load complex: %w", err)
	}

	var diff resource.FieldDiff
	diff.String("title", &cx.Title, request.Title)
	diff.String("address", &cx.Address, request.Address)
	diff.String("phone", &cx.Phone, request.Phone)
	diff.String("email", &cx.Email, request.Email)
	diff.String("web", &cx.Web, request.Web)
	diff.String("description", &cx.Description, request.Description)
	diff.String("image", &cx.Image, request.Image)
	if request.OpenYear != "" {
		openYear, err := datefmt.ParseDate(request.OpenYear)
		if err != nil {
			return nil, fmt.Errorf("parse openYear: %w", err)
		}
		diff.Date("openYear", &cx.OpenYear, &openYear)
	}

	if diff.Empty() {
		return nil, fmt.Errorf("complex %d unchanged: %w", id, resource.ErrNoUpdate)
	}

	cx.Touch(time.Now().UTC())
	if err := s.complexRepository.Save(ctx, s.db, cx); err != nil {
		return nil, fmt.Errorf("save complex: %w", err)
	}

	log.Info("complex updated", "id", id, "fields", diff.Changed())

	resp := newComplexResponse(cx)
	return &resp, nil
}

func (s *ComplexService) Delete(ctx context.Context, id uint32) error {
	log := logger.FromContext(ctx)

	cx, err := s.complexRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound(resourceName, id)
		}
		return fmt.Errorf("load complex: %w", err)
	}

	cx.Deactivate(time.Now().UTC())
	if err := s.complexRepository.Save(ctx, s.db, cx); err != nil {
		return fmt.Errorf("deactivate complex: %w", err)
	}

	log.Info("complex deactivated", "id", id)
	return nil
}
