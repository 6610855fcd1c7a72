package comment

import (
	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/datefmt"
)

// CreateCommentRequest is bound from form/multipart fields
type CreateCommentRequest struct {
	Name        string `form:"name" json:"name" binding:"required,min=2,max=100"`
	Phone       string `form:"phone" json:"phone" binding:"required,phone"`
	Email       string `form:"email" json:"email" binding:"omitempty,email,max=100"`
	Description string `form:"description" json:"description" binding:"omitempty,max=2000"`
}

type CommentResponse struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedDate string `json:"createdDate"`
	IsActive    bool   `json:"isActive"`
}

func newCommentResponse(m *model.Comment) CommentResponse {
	return CommentResponse{
		ID:          m.ID,
		Name:        m.Name,
		Phone:       m.Phone,
		Email:       m.Email,
		Description: m.Description,
		CreatedDate: datefmt.DateTime(m.CreatedDate),
		IsActive:    m.IsActive,
	}
}
