package status

import (
	"fmt"
	"net/http"
)

var (
	WarnNotNumericID = fmt.Errorf("id should be a number")
	WarnInvalidQuery = fmt.Errorf("invalid query parameters")
)

func WarningStatusBadRequest(err error) Toast {
	return Toast{
		Err:        err,
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
	}
}
