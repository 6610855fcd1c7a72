package response

import (
	"net/http"

	"github.com/binagroup/complex-api-server/internal/shared/apierror"
	"github.com/gin-gonic/gin"
)

// Pagination is the paging block attached to list responses.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
}

// Envelope is the uniform wrapper returned by every endpoint.
type Envelope struct {
	Messages   []apierror.Message `json:"messages"`
	Details    any                `json:"details,omitempty"`
	Pagination *Pagination        `json:"pagination,omitempty"`
}

func successMessage(text string) apierror.Message {
	return apierror.Message{Status: http.StatusOK, Code: "SUCCESS", Message: text}
}

// OK sends a 200 envelope carrying the given details.
func OK(c *gin.Context, details any) {
	c.JSON(http.StatusOK, Envelope{
		Messages: []apierror.Message{successMessage("operation completed successfully")},
		Details:  details,
	})
}

// OKPage sends a 200 envelope carrying a page of details plus the paging block.
func OKPage(c *gin.Context, details any, pg Pagination) {
	c.JSON(http.StatusOK, Envelope{
		Messages:   []apierror.Message{successMessage("operation completed successfully")},
		Details:    details,
		Pagination: &pg,
	})
}

// OKMessage sends a 200 envelope with no details, used by the delete endpoints.
func OKMessage(c *gin.Context, text string) {
	c.JSON(http.StatusOK, Envelope{
		Messages: []apierror.Message{successMessage(text)},
	})
}

// BadRequest sends a 400 envelope listing every provided message.
func BadRequest(c *gin.Context, msgs ...apierror.Message) {
	c.JSON(http.StatusBadRequest, Envelope{Messages: msgs})
}
