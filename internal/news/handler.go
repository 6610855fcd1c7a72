package news

import (
	"github.com/binagroup/complex-api-server/internal/shared/handler"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsService *NewsService
}

func NewNewsHandler(newsService *NewsService) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

func (h *NewsHandler) Create(c *gin.Context) {
	var request CreateNewsRequest
	if !handler.Bind(c, &request) {
		return
	}

	resp, err := h.newsService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *NewsHandler) List(c *gin.Context) {
	var query resource.PageQuery
	if !handler.BindQuery(c, &query) {
		return
	}
	query.Normalize(DefaultPageSize)

	details, pg, err := h.newsService.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKPage(c, details, pg)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := handler.ID(c, resourceName)
	if !ok {
		return
	}

	var request UpdateNewsRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	resp, err := h.newsService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := handler.ID(c, resourceName)
	if !ok {
		return
	}

	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKMessage(c, "news deleted successfully")
}
