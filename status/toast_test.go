package status

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", WarningStatusBadRequest(WarnInvalidQuery), http.StatusBadRequest},
		{"not found", ErrorNotFound(ErrArticleNotFound), http.StatusNotFound},
		{"wrapped toast", fmt.Errorf("listing: %w", ErrorNotFound(ErrArticleNotFound)), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCodeOf(tt.err))
		})
	}
}

func TestToast_ErrorMessage(t *testing.T) {
	assert.Equal(t, "id should be a number", WarningStatusBadRequest(WarnNotNumericID).Error())
}

func TestToast_Unwraps(t *testing.T) {
	assert.ErrorIs(t, ErrorInternalServerError(ErrRender), ErrRender)
}
