package status

import (
	"errors"
	"net/http"
)

// Toast is an error that knows which HTTP status it should be reported with.
type Toast struct {
	Err        error
	Message    string
	StatusCode int
}

func (t Toast) Error() string {
	return t.Message
}

func (t Toast) Unwrap() error {
	return t.Err
}

// StatusCodeOf returns the status a handler error should be answered with.
func StatusCodeOf(err error) int {
	var toast Toast
	if errors.As(err, &toast) {
		return toast.StatusCode
	}
	return http.StatusInternalServerError
}
