package member

import (
	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/datefmt"
)

// CreateMemberRequest is bound from form/multipart fields. The Device-Id
// header is read separately by the handler.
type CreateMemberRequest struct {
	ComplexesID uint32 `form:"complexesId" json:"complexesId" binding:"required"`
	Name        string `form:"name" json:"name" binding:"required,min=2,max=50"`
	Surname     string `form:"surname" json:"surname" binding:"required,min=2,max=50"`
	Phone       string `form:"phone" json:"phone" binding:"required,phone"`
	Email       string `form:"email" json:"email" binding:"omitempty,email,max=100"`
	Address     string `form:"address" json:"address" binding:"omitempty,max=255"`
	IsMan       bool   `form:"isMan" json:"isMan"`
	Username    string `form:"username" json:"username" binding:"required,min=3,max=50"`
	Password    string `form:"password" json:"password" binding:"required,min=8,max=50"`
}

// MemberResponse never carries the password hash.
type MemberResponse struct {
	ID          uint32  `json:"id"`
	ComplexesID uint32  `json:"complexesId"`
	Name        string  `json:"name"`
	Surname     string  `json:"surname"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email,omitempty"`
	Address     string  `json:"address,omitempty"`
	IsMan       bool    `json:"isMan"`
	Username    string  `json:"username"`
	DeviceID    string  `json:"deviceId"`
	CreatedDate string  `json:"createdDate"`
	UpdatedDate *string `json:"updatedDate"`
}

func newMemberResponse(m *model.Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		ComplexesID: m.ComplexesID,
		Name:        m.Name,
		Surname:     m.Surname,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		IsMan:       m.IsMan,
		Username:    m.Username,
		DeviceID:    m.DeviceID,
		CreatedDate: datefmt.DateTime(m.CreatedDate),
		UpdatedDate: datefmt.DateTimePtr(m.UpdatedDate),
	}
}
