package comment

import (
	"github.com/binagroup/complex-api-server/internal/shared/handler"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *CommentService
}

func NewCommentHandler(commentService *CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var request CreateCommentRequest
	if !handler.Bind(c, &request) {
		return
	}

	resp, err := h.commentService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *CommentHandler) List(c *gin.Context) {
	var query resource.PageQuery
	if !handler.BindQuery(c, &query) {
		return
	}
	query.Normalize(DefaultPageSize)

	details, pg, err := h.commentService.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKPage(c, details, pg)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := handler.ID(c, resourceName)
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKMessage(c, "comment deleted successfully")
}
