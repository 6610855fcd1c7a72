package handler

import (
	"net/http"
	"strconv"

	"github.com/binagroup/complex-api-server/internal/shared/apierror"
	"github.com/binagroup/complex-api-server/internal/shared/response"
	"github.com/binagroup/complex-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// Bind parses and validates the request body, picking the binder from the
// content type (JSON, form or multipart). Returns true if binding succeeded,
// false if a 400 response was already sent carrying one message per failed
// field.
//
// Usage:
//
//	var req CreateComplexRequest
//	if !handler.Bind(c, &req) {
//	    return
//	}
func Bind(c *gin.Context, obj any) bool {
	return respondBindError(c, c.ShouldBind(obj))
}

// BindJSON parses and validates a JSON request body.
func BindJSON(c *gin.Context, obj any) bool {
	return respondBindError(c, c.ShouldBindJSON(obj))
}

// BindQuery parses and validates the query string.
func BindQuery(c *gin.Context, obj any) bool {
	return respondBindError(c, c.ShouldBindQuery(obj))
}

func respondBindError(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	// Add error to context for middleware logging
	_ = c.Error(err)

	if msgs, ok := validator.ToMessages(err); ok {
		response.BadRequest(c, msgs...)
	} else {
		// JSON/form parsing error or other binding errors
		response.BadRequest(c, apierror.InvalidRequest)
	}
	return false
}

// ID parses the id path parameter. On failure it sends the structured 404
// body echoing the rejected value and returns false.
func ID(c *gin.Context, resource string) (uint32, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		_ = c.Error(err)
		notFound := apierror.NewNotFound(resource, raw)
		c.JSON(http.StatusNotFound, notFound)
		return 0, false
	}
	return uint32(id), true
}

// RespondError maps a service error to its wire shape.
func RespondError(c *gin.Context, err error) {
	response.Error(c, err)
}
