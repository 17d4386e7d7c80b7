package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/rench/blog/logger"
	"github.com/rench/blog/middleware"
	"github.com/rench/blog/o11y"
	"github.com/rench/blog/status"
)

// HandlerFunc is an http handler that reports failures instead of writing them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// MakeTemplHandler adapts fn, answering returned errors with the status code
// carried by a status.Toast or 500 otherwise.
func MakeTemplHandler(log logger.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		code := status.StatusCodeOf(err)
		requestID := middleware.RequestIDFromContext(r.Context())
		if code >= http.StatusInternalServerError {
			log.Error("[%s] %s %s failed: %v", requestID, r.Method, r.URL.Path, err)
			http.Error(w, http.StatusText(code), code)
			return
		}

		log.Warn("[%s] %s %s rejected: %v", requestID, r.Method, r.URL.Path, err)
		http.Error(w, err.Error(), code)
	}
}

func Render(w http.ResponseWriter, r *http.Request, c templ.Component) error {
	return RenderWithStatus(w, r, http.StatusOK, c)
}

// RenderWithStatus renders c into a buffer first so a failing component never
// leaves a half-written page behind.
func RenderWithStatus(w http.ResponseWriter, r *http.Request, code int, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		o11y.RenderFailuresTotal.WithLabelValues(middleware.RoutePattern(r)).Inc()
		return status.ErrorInternalServerError(fmt.Errorf("%w: %v", status.ErrRender, err))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, err := buf.WriteTo(w)
	return err
}

func WriteJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}
