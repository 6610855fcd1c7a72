package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/binagroup/complex-api-server/internal/complex"
	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/database"
	"github.com/binagroup/complex-api-server/internal/shared/logger"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPageSize is the page size applied when the list query omits a limit.
const DefaultPageSize = 4

type MemberService struct {
	db                *gorm.DB
	memberRepository  *MemberRepository
	complexRepository *complex.ComplexRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository, complexRepository *complex.ComplexRepository) *MemberService {
	return &MemberService{
		db:                db,
		memberRepository:  memberRepository,
		complexRepository: complexRepository,
	}
}

// Create registers a board member. The referenced complex must exist and be
// active, the device id must be a non-empty UUID, the username must be free,
// and only the bcrypt hash of the password is stored.
func (s *MemberService) Create(ctx context.Context, request *CreateMemberRequest, deviceID string) (*MemberResponse, error) {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(deviceID); deviceID == "" || err != nil {
		log.Warn("member create rejected - missing or malformed device id")
		return nil, fmt.Errorf("device id %q: %w", deviceID, ErrDeviceIDRequired)
	}

	var resp *MemberResponse

	// The uniqueness check and the insert share a transaction, mirroring the
	// unique index on username
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := s.complexRepository.FindActiveByID(ctx, tx, request.ComplexesID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("member create rejected - complex missing or inactive", "complexesId", request.ComplexesID)
				return fmt.Errorf("complex %d: %w", request.ComplexesID, ErrComplexNotFound)
			}
			return fmt.Errorf("load complex: %w", err)
		}

		taken, err := s.memberRepository.UsernameExists(ctx, tx, request.Username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			log.Warn("member create rejected - username taken", "username", request.Username)
			return fmt.Errorf("username %s: %w", request.Username, ErrUsernameTaken)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		m := &model.Member{
			ComplexesID: request.ComplexesID,
			Name:        request.Name,
			Surname:     request.Surname,
			Phone:       request.Phone,
			Email:       request.Email,
			Address:     request.Address,
			IsMan:       request.IsMan,
			Username:    request.Username,
			Password:    string(hashedPassword),
			DeviceID:    deviceID,
			CreatedDate: time.Now().UTC(),
		}
		if err := s.memberRepository.Create(ctx, tx, m); err != nil {
			return fmt.Errorf("create member: %w", err)
		}

		log.Info("member created", "id", m.ID, "email", logger.MaskEmail(m.Email))

		r := newMemberResponse(m)
		resp = &r
		return nil
	})

	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *MemberService) List(ctx context.Context, page, limit int) ([]MemberResponse, response.Pagination, error) {
	return resource.List(ctx, s.db, s.memberRepository.Repository, page, limit, newMemberResponse)
}
