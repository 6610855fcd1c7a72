package news

import (
	"github.com/binagroup/complex-api-server/internal/model"
	"github.com/binagroup/complex-api-server/internal/shared/datefmt"
)

// CreateNewsRequest is bound from form/multipart fields
type CreateNewsRequest struct {
	Title       string `form:"title" json:"title" binding:"required,min=2,max=100"`
	Description string `form:"description" json:"description" binding:"required,min=2,max=2000"`
	NewsTime    string `form:"newsTime" json:"newsTime" binding:"required,datetime=2006-01-02"`
	Image       string `form:"image" json:"image" binding:"omitempty,url,max=500"`
}

type UpdateNewsRequest struct {
	Title       string `json:"title" binding:"omitempty,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,min=2,max=2000"`
	NewsTime    string `json:"newsTime" binding:"omitempty,datetime=2006-01-02"`
	Image       string `json:"image" binding:"omitempty,url,max=500"`
}

type NewsResponse struct {
	ID          uint32  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	NewsTime    string  `json:"newsTime,omitempty"`
	Image       string  `json:"image,omitempty"`
	CreatedDate string  `json:"createdDate"`
	UpdatedDate *string `json:"updatedDate"`
	IsActive    bool    `json:"isActive"`
}

func newNewsResponse(m *model.LatestNews) NewsResponse {
	return NewsResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		NewsTime:    datefmt.DatePtr(m.NewsTime),
		Image:       m.Image,
		CreatedDate: datefmt.DateTime(m.CreatedDate),
		UpdatedDate: datefmt.DateTimePtr(m.UpdatedDate),
		IsActive:    m.IsActive,
	}
}
