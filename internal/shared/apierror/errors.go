package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Message is one entry of the messages array carried by every envelope.
// The HTTP status is embedded in the body as well as sent on the wire.
type Message struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DomainError is a sentinel error that maps to a registered wire message.
type DomainError interface {
	error
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string {
	return e.errInfo
}

func (e *domainSentinel) Info() string {
	return e.errInfo
}

var domainErrorResponses = map[string]Message{}

// NewDomainError creates a sentinel error that can participate in error chains.
func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// RegisterDomainErrorResponse registers the wire message returned for a domain error.
func RegisterDomainErrorResponse(errInfo string, msg Message) {
	domainErrorResponses[errInfo] = msg
}

// ResolveDomainError converts a domain error into its registered wire message.
func ResolveDomainError(err error) (Message, bool) {
	if err == nil {
		return Message{}, false
	}

	var domainErr DomainError
	if errors.As(err, &domainErr) {
		if msg, ok := domainErrorResponses[domainErr.Info()]; ok {
			return msg, true
		}
	}
	return Message{}, false
}

// BusinessError is a business-rule violation whose message depends on the
// request, so it cannot go through the static registry.
type BusinessError struct {
	Response Message
}

// NewBusiness creates a business-rule error with a request-specific message.
func NewBusiness(status int, code, message string) *BusinessError {
	return &BusinessError{Response: Message{Status: status, Code: code, Message: message}}
}

func (e *BusinessError) Error() string {
	return e.Response.Code + ": " + e.Response.Message
}

// NotFound is the messages-free structured body returned for unknown ids.
// The rejected value is echoed back to the caller.
type NotFound struct {
	ErrorObjectType string `json:"errorObjectType"`
	ErrorCode       string `json:"errorCode"`
	Message         string `json:"message"`
	Status          int    `json:"status"`
	RejectedValue   any    `json:"rejectedValue"`
}

// NewNotFound creates the 404 body for a missing resource row.
func NewNotFound(resource string, rejected any) *NotFound {
	return &NotFound{
		ErrorObjectType: "RESOURCE",
		ErrorCode:       "RESOURCE_NOT_FOUND",
		Message:         fmt.Sprintf("%s not found with id %v", resource, rejected),
		Status:          http.StatusNotFound,
		RejectedValue:   rejected,
	}
}

func (e *NotFound) Error() string {
	return e.Message
}

// Common messages returned outside the domain registries.
var (
	// InvalidRequest indicates the request body could not be parsed at all.
	InvalidRequest = Message{
		Status:  http.StatusBadRequest,
		Code:    "INVALID_REQUEST",
		Message: "request body is malformed",
	}
)
