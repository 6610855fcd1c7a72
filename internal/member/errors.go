package member

import (
	"net/http"

	"github.com/binagroup/complex-api-server/internal/shared/apierror"
)

const (
	usernameTaken    = "USERNAME_TAKEN"     // errInfo
	complexNotFound  = "COMPLEX_NOT_FOUND"  // errInfo
	deviceIDRequired = "DEVICE_ID_REQUIRED" // errInfo
)

var (
	ErrUsernameTaken    = apierror.NewDomainError(usernameTaken)
	ErrComplexNotFound  = apierror.NewDomainError(complexNotFound)
	ErrDeviceIDRequired = apierror.NewDomainError(deviceIDRequired)
)

func init() {
	apierror.RegisterDomainErrorResponse(usernameTaken, apierror.Message{
		Status:  http.StatusBadRequest,
		Code:    "USERNAME_TAKEN",
		Message: "username is already taken",
	})

	apierror.RegisterDomainErrorResponse(complexNotFound, apierror.Message{
		Status:  http.StatusBadRequest,
		Code:    "COMPLEX_NOT_FOUND",
		Message: "referenced complex does not exist or is not active",
	})

	apierror.RegisterDomainErrorResponse(deviceIDRequired, apierror.Message{
		Status:  http.StatusBadRequest,
		Code:    "DEVICE_ID_REQUIRED",
		Message: "Device-Id header must be a non-empty UUID",
	})
}
