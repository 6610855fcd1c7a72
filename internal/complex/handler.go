package complex

import (
	"github.com/binagroup/complex-api-server/internal/shared/handler"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type ComplexHandler struct {
	complexService *ComplexService
}

func NewComplexHandler(complexService *ComplexService) *ComplexHandler {
	return &ComplexHandler{
		complexService: complexService,
	}
}

func (h *ComplexHandler) Create(c *gin.Context) {
	var request CreateComplexRequest
	if !handler.Bind(c, &request) {
		return
	}

	resp, err := h.complexService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *ComplexHandler) List(c *gin.Context) {
	var query resource.PageQuery
	if !handler.BindQuery(c, &query) {
		return
	}
	query.Normalize(DefaultPageSize)

	details, pg, err := h.complexService.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKPage(c, details, pg)
}

func (h *ComplexHandler) Update(c *gin.Context) {
	id, ok := handler.ID(c, resourceName)
	if !ok {
		return
	}

	var request UpdateComplexRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	resp, err := h.complexService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *ComplexHandler) Delete(c *gin.Context) {
	id, ok := handler.ID(c, resourceName)
	if !ok {
		return
	}

	if err := h.complexService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKMessage(c, "complex deleted successfully")
}
