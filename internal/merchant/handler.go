package merchant

import (
	"github.com/binagroup/complex-api-server/internal/shared/handler"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"github.com/gin-gonic/gin"
)

type MerchantHandler struct {
	merchantService *MerchantService
}

func NewMerchantHandler(merchantService *MerchantService) *MerchantHandler {
	return &MerchantHandler{
		merchantService: merchantService,
	}
}

func (h *MerchantHandler) Create(c *gin.Context) {
	var request CreateMerchantRequest
	if !handler.Bind(c, &request) {
		return
	}

	resp, err := h.merchantService.Create(c.Request.Context(), &request)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *MerchantHandler) List(c *gin.Context) {
	var query resource.PageQuery
	if !handler.BindQuery(c, &query) {
		return
	}
	query.Normalize(DefaultPageSize)

	details, pg, err := h.merchantService.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKPage(c, details, pg)
}

func (h *MerchantHandler) Update(c *gin.Context) {
	id, ok := handler.ID(c, resourceName)
	if !ok {
		return
	}

	var request UpdateMerchantRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	resp, err := h.merchantService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *MerchantHandler) Delete(c *gin.Context) {
	id, ok := handler.ID(c, resourceName)
	if !ok {
		return
	}

	if err := h.merchantService.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKMessage(c, "merchant deleted successfully")
}
