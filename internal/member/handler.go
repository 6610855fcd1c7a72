package member

import (
	"github.com/binagroup/complex-api-server/internal/shared/handler"
	"github.com/binagroup/complex-api-server/internal/shared/resource"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"github.com/gin-gonic/gin"
)

// DeviceIDHeader identifies the device a board member registers from.
const DeviceIDHeader = "Device-Id"

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) Create(c *gin.Context) {
	var request CreateMemberRequest
	if !handler.Bind(c, &request) {
		return
	}

	resp, err := h.memberService.Create(c.Request.Context(), &request, c.GetHeader(DeviceIDHeader))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OK(c, resp)
}

func (h *MemberHandler) List(c *gin.Context) {
	var query resource.PageQuery
	if !handler.BindQuery(c, &query) {
		return
	}
	query.Normalize(DefaultPageSize)

	details, pg, err := h.memberService.List(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	response.OKPage(c, details, pg)
}
