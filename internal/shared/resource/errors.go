package resource

import (
	"net/http"

	"github.com/binagroup/complex-api-server/internal/shared/apierror"
)

const noUpdate = "NO_UPDATE" // errInfo

// ErrNoUpdate is returned when a partial update changed nothing.
var ErrNoUpdate = apierror.NewDomainError(noUpdate)

func init() {
	apierror.RegisterDomainErrorResponse(noUpdate, apierror.Message{
		Status:  http.StatusBadRequest,
		Code:    "NO_UPDATE",
		Message: "no submitted field differs from the stored record",
	})
}
