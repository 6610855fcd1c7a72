package merchant

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

const resourceName = "merchant"

// DefaultPageSize is the page size applied when the list query omits a limit.
const DefaultPageSize = 6

type MerchantService struct {
	db                 *gorm.DB
	merchantRepository *MerchantRepository
}

func NewMerchantService(db *gorm.DB, merchantRepository *MerchantRepository) *MerchantService {
	return &MerchantService{
		db:                 db,
		merchantRepository: merchantRepository,
	}
}

func (s *MerchantService) Create(ctx context.Context, request *CreateMerchantRequest) (*MerchantResponse, error) {
	log := logger.FromContext(ctx)

	m := &model.Merchant{
		Title:       request.Title,
		Address:     request.Address,
		Phone:       request.Phone,
		Email:       request.Email,
		Web:         request.Web,
		Description: request.Description,
		Image:       request.Image,
	}
	m.Init(time.Now().UTC())

	if err := s.merchantRepository.Create(ctx, s.db, m); err != nil {
		return nil, fmt.Errorf("create merchant: %w", err)
	}

	log.Info("merchant created", "id", m.ID)

	resp := newMerchantResponse(m)
	return &resp, nil
}

func (s *MerchantService) List(ctx context.Context, page, limit int) ([]MerchantResponse, response.Pagination, error) {
	return resource.List(ctx, s.db, s.merchantRepository.Repository, page, limit, newMerchantResponse)
}

func (s *MerchantService) Update(ctx context.Context, id uint32, request *UpdateMerchantRequest) (*MerchantResponse, error) {
	log := logger.FromContext(ctx)

	m, err := s.merchantRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NewNotFound(resourceName, id)
		}
		return nil, fmt.Errorf("load merchant: %w", err)
	}

	var diff resource.FieldDiff
	diff.String("title", &m.Title, request.Title)
	diff.String("address", &m.Address, request.Address)
	diff.String("phone", &m.Phone, request.Phone)
	diff.String("email", &m.Email, request.Email)
	diff.String("web", &m.Web, request.Web)
	diff.String("description", &m.Description, request.Description)
	diff.String("image", &m.Image, request.Image)

	if diff.Empty() {
		return nil, fmt.Errorf("merchant %d unchanged: %w", id, resource.ErrNoUpdate)
	}

	m.Touch(time.Now().UTC())
	if err := s.merchantRepository.Save(ctx, s.db, m); err != nil {
		return nil, fmt.Errorf("save merchant: %w", err)
	}

	log.Info("merchant updated", "id", id, "fields", diff.Changed())

	resp := newMerchantResponse(m)
	return &resp, nil
}

func (s *MerchantService) Delete(ctx context.Context, id uint32) error {
	log := logger.FromContext(ctx)

	m, err := s.merchantRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NewNotFound(resourceName, id)
		}
		return fmt.Errorf("load merchant: %w", err)
	}

	m.Deactivate(time.Now().UTC())
	if err := s.merchantRepository.Save(ctx, s.db, m); err != nil {
		return fmt.Errorf("deactivate merchant: %w", err)
	}

	log.Info("merchant deactivated", "id", id)
	return nil
}
