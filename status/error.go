package status

import (
	"fmt"
	"net/http"
)

var (
	ErrDatabaseNotReady = fmt.Errorf("database not initialized")
	ErrDB               = fmt.Errorf("unexpected database error")
	ErrArticleNotFound  = fmt.Errorf("article not found")
	ErrRender           = fmt.Errorf("failed to render a view")
	ErrSiteMetadata     = fmt.Errorf("invalid site metadata")
)

func ErrorNotFound(err error) Toast {
	return Toast{
		Err:        err,
		Message:    err.Error(),
		StatusCode: http.StatusNotFound,
	}
}

func ErrorInternalServerError(err error) Toast {
	return Toast{
		Err:        err,
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}
