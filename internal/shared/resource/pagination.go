package resource

import (
	"fmt"
	"net/http"

	"github.com/binagroup/complex-api-server/internal/shared/apierror"
	"github.com/binagroup/complex-api-server/internal/shared/response"
)

// PageQuery holds the paging query parameters bound from the URL.
type PageQuery struct {
	Limit int `form:"limit"`
	Page  int `form:"page,default=1"`
}

// Normalize applies the resource's default page size when the client omitted one.
func (q *PageQuery) Normalize(defaultLimit int) {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
}

// Paginate validates the requested page against the total row count and
// computes the paging block. Pages below 1 and pages beyond
// ceil(total/limit) are rejected. When the table is empty the maximum is 0,
// so every page is out of range; that matches the stored behavior of the
// endpoints and callers are expected to handle it.
func Paginate(page, limit int, total int64) (response.Pagination, error) {
	if page < 1 {
		return response.Pagination{}, apierror.NewBusiness(
			http.StatusBadRequest, "INVALID_PAGE", "page must be 1 or greater")
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	if page > totalPages {
		return response.Pagination{}, apierror.NewBusiness(
			http.StatusBadRequest, "INVALID_PAGE",
			fmt.Sprintf("page %d exceeds the maximum of %d", page, totalPages))
	}

	return response.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
	}, nil
}
