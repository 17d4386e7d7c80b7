package main

import (
	"embed"
	"net/http"
	"os"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"

	"github.com/rench/blog/articles"
	"github.com/rench/blog/components"
	"github.com/rench/blog/config"
	"github.com/rench/blog/logger"
	"github.com/rench/blog/o11y"
	"github.com/rench/blog/sitemeta"
	"github.com/rench/blog/views"
)

//go:embed static
var staticFS embed.FS

type Handler struct {
	config        *config.Config
	formDecoder   *form.Decoder
	formValidator *validator.Validate
	log           logger.Logger

	meta    sitemeta.Metadata
	prims   views.Primitives
	catalog *articles.Catalog
	db      DBWrapper
}

func NewHandler(
	cfg *config.Config,
	log logger.Logger,
	meta sitemeta.Metadata,
	db DBWrapper,
) *Handler {
	hnd := &Handler{
		config:        cfg,
		formDecoder:   form.NewDecoder(),
		formValidator: validator.New(validator.WithRequiredStructEnabled()),
		log:           log,
		meta:          meta,
		catalog:       articles.Default(),
		db:            db,
	}
	hnd.prims = views.KitPrimitives(components.NewKit(hnd.assets()))
	return hnd
}

func (hnd *Handler) StaticFiles() http.Handler {
	if hnd.config.App.Env == config.Local {
		hnd.log.Info("serving static files from local directory")
		return http.StripPrefix("/static", http.FileServer(http.Dir("static")))
	}

	hnd.log.Info("serving static files from embedded FS")
	return http.StripPrefix("/", http.FileServer(http.FS(staticFS)))
}

// assets resolves the same files StaticFiles serves.
func (hnd *Handler) assets() components.AssetResolver {
	if hnd.config.App.Env == config.Local {
		return components.FSResolver{FS: os.DirFS("static"), Prefix: "/static/"}
	}
	return components.FSResolver{FS: staticFS, Prefix: "/"}
}

// articleStore prefers the database and falls back to the built-in catalog
// while it is unavailable.
func (hnd *Handler) articleStore() articles.Store {
	db, err := hnd.db.DB()
	if err != nil {
		if hnd.config.Database.Enabled() {
			hnd.log.Warn("serving built-in articles: %v", err)
			o11y.ArticleStoreFallbacksTotal.Inc()
		}
		return hnd.catalog
	}
	return articles.NewPostgres(db)
}

func (hnd *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (hnd *Handler) HomeRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, views.HomePath, http.StatusFound)
}
