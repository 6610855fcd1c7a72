package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/binagroup/complex-api-server/internal/shared/apierror"
	"github.com/binagroup/complex-api-server/internal/shared/logger"
	"github.com/binagroup/complex-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServerError is the fixed envelope returned for uncaught failures. Nothing
// about the underlying error reaches the caller, only a correlation id for
// operator-side log lookup.
type ServerError struct {
	ErrorObjectType string      `json:"errorObjectType"`
	ErrorCode       string      `json:"errorCode"`
	Message         string      `json:"message"`
	Status          int         `json:"status"`
	ErrorData       []ErrorData `json:"errorData"`
	Timestamp       string      `json:"timestamp"`
}

// ErrorData carries the correlation id of a failed request.
type ErrorData struct {
	RequestID string `json:"requestId"`
}

// Error maps any error coming out of a service into its wire shape. This is
// the single conversion point: handlers never build error bodies themselves.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var notFound *apierror.NotFound
	if errors.As(err, &notFound) {
		c.JSON(notFound.Status, notFound)
		return
	}

	var business *apierror.BusinessError
	if errors.As(err, &business) {
		c.JSON(business.Response.Status, Envelope{Messages: []apierror.Message{business.Response}})
		return
	}

	if msg, ok := apierror.ResolveDomainError(err); ok {
		c.JSON(msg.Status, Envelope{Messages: []apierror.Message{msg}})
		return
	}

	Internal(c, err)
}

// Internal sends the fixed 500 envelope with a generated correlation id.
func Internal(c *gin.Context, err error) {
	requestID := middleware.GetRequestID(c)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	logger.FromContext(c.Request.Context()).Error("unhandled request error",
		"error", err,
		"request_id", requestID,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusInternalServerError, ServerError{
		ErrorObjectType: "SERVER",
		ErrorCode:       "INTERNAL_SERVER_ERROR",
		Message:         "an unexpected error occurred while processing the request",
		Status:          http.StatusInternalServerError,
		ErrorData:       []ErrorData{{RequestID: requestID}},
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}
