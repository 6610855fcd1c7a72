package complex

import (
	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/datefmt"
)

// CreateComplexRequest is bound from form/multipart fields
type CreateComplexRequest struct {
	Title       string `form:"title" json:"title" binding:"required,min=2,max=100"`
	Address     string `form:"address" json:"address" binding:"omitempty,max=255"`
	Phone       string `form:"phone" json:"phone" binding:"required,phone"`
	Email       string `form:"email" json:"email" binding:"omitempty,email,max=100"`
	Web         string `form:"web" json:"web" binding:"omitempty,web,max=100"`
	Description string `form:"description" json:"description" binding:"omitempty,max=2000"`
	OpenYear    string `form:"openYear" json:"openYear" binding:"omitempty,datetime=2006-01-02"`
	Image       string `form:"image" json:"image" binding:"omitempty,url,max=500"`
}

// UpdateComplexRequest carries optional replacement values; blank fields are
// left untouched
type UpdateComplexRequest struct {
	Title       string `json:"title" binding:"omitempty,min=2,max=100"`
	Address     string `json:"address" binding:"omitempty,max=255"`
	Phone       string `json:"phone" binding:"omitempty,phone"`
	Email       string `json:"email" binding:"omitempty,email,max=100"`
	Web         string `json:"web" binding:"omitempty,web,max=100"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	OpenYear    string `json:"openYear" binding:"omitempty,datetime=2006-01-02"`
	Image       string `json:"image" binding:"omitempty,url,max=500"`
}

type ComplexResponse struct {
	ID          uint32  `json:"id"`
	Title       string  `json:"title"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email,omitempty"`
	Web         string  `json:"web,omitempty"`
	Description string  `json:"description,omitempty"`
	OpenYear    string  `json:"openYear,omitempty"`
	Image       string  `json:"image,omitempty"`
	CreatedDate string  `json:"createdDate"`
	UpdatedDate *string `json:"updatedDate"`
	IsActive    bool    `json:"isActive"`
}

func newComplexResponse(m *model.Complex) ComplexResponse {
	return ComplexResponse{
		ID:          m.ID,
		Title:       m.Title,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		Web:         m.Web,
		Description: m.Description,
		OpenYear:    datefmt.DatePtr(m.OpenYear),
		Image:       m.Image,
		CreatedDate: datefmt.DateTime(m.CreatedDate),
		UpdatedDate: datefmt.DateTimePtr(m.UpdatedDate),
		IsActive:    m.IsActive,
	}
}
