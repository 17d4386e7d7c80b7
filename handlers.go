package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rench/blog/articles"
	"github.com/rench/blog/status"
	"github.com/rench/blog/utils"
	"github.com/rench/blog/views"
)

type ArticlesQuery struct {
	Page int `form:"page" validate:"omitempty,gte=1,lte=10000"`
}

func (hnd *Handler) HomeView(w http.ResponseWriter, r *http.Request) error {
	page, err := hnd.articleStore().List(r.Context(), 1, articles.DefaultPageSize)
	if err != nil {
		hnd.log.Warn("unable to load posts for the home page: %v", err)
	}

	return utils.Render(w, r, views.HomePage(hnd.meta, page.Items, hnd.prims))
}

func (hnd *Handler) ArticlesView(w http.ResponseWriter, r *http.Request) error {
	query, err := hnd.decodeArticlesQuery(r)
	if err != nil {
		return err
	}

	page, err := hnd.articleStore().List(r.Context(), query.Page, articles.DefaultPageSize)
	if err != nil {
		return err
	}

	return utils.Render(w, r, views.Articles(hnd.meta, hnd.prims, page))
}

func (hnd *Handler) ArticleDetailsView(w http.ResponseWriter, r *http.Request) error {
	idStr := chi.URLParam(r, "id")

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return utils.RenderWithStatus(w, r, http.StatusNotFound, views.ArticleNotFound(hnd.meta, hnd.prims))
	}

	article, err := hnd.articleStore().Get(r.Context(), id)
	if errors.Is(err, status.ErrArticleNotFound) {
		return utils.RenderWithStatus(w, r, http.StatusNotFound, views.ArticleNotFound(hnd.meta, hnd.prims))
	}
	if err != nil {
		return err
	}

	return utils.Render(w, r, views.ArticleDetails(hnd.meta, hnd.prims, article))
}

func (hnd *Handler) GetArticles(w http.ResponseWriter, r *http.Request) error {
	query, err := hnd.decodeArticlesQuery(r)
	if err != nil {
		return err
	}

	page, err := hnd.articleStore().List(r.Context(), query.Page, articles.DefaultPageSize)
	if err != nil {
		return err
	}

	return utils.WriteJSON(w, http.StatusOK, page)
}

func (hnd *Handler) GetArticle(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return status.WarningStatusBadRequest(status.WarnNotNumericID)
	}

	article, err := hnd.articleStore().Get(r.Context(), id)
	if errors.Is(err, status.ErrArticleNotFound) {
		return status.ErrorNotFound(err)
	}
	if err != nil {
		return err
	}

	return utils.WriteJSON(w, http.StatusOK, article)
}

func (hnd *Handler) NotFoundView(w http.ResponseWriter, r *http.Request) error {
	return utils.RenderWithStatus(w, r, http.StatusNotFound, views.NotFound(hnd.meta, hnd.prims))
}

func (hnd *Handler) decodeArticlesQuery(r *http.Request) (ArticlesQuery, error) {
	var query ArticlesQuery
	if err := hnd.formDecoder.Decode(&query, r.URL.Query()); err != nil {
		hnd.log.Debug("failed to decode articles query: %v", err)
		return query, status.WarningStatusBadRequest(status.WarnInvalidQuery)
	}
	if err := hnd.formValidator.Struct(query); err != nil {
		hnd.log.Debug("failed to validate articles query: %v", err)
		return query, status.WarningStatusBadRequest(status.WarnInvalidQuery)
	}
	return query, nil
}
