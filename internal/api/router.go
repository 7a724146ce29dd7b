package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/gnosislabs/metadata-service/internal/api/handlers"
	"github.com/gnosislabs/metadata-service/internal/api/middleware"
	"github.com/gnosislabs/metadata-service/internal/auth"
	"github.com/gnosislabs/metadata-service/internal/cache"
	"github.com/gnosislabs/metadata-service/internal/config"
	"github.com/gnosislabs/metadata-service/internal/content"
	"github.com/gnosislabs/metadata-service/internal/llm"
	"github.com/gnosislabs/metadata-service/internal/metadata"
)

type Router struct {
	mux      *chi.Mux
	db       *pgxpool.Pool
	redis    *redis.Client
	cfg      *config.Config
	apikey   *auth.APIKeyMiddleware
	provider llm.Provider
}

func NewRouter(db *pgxpool.Pool, rdb *redis.Client, provider llm.Provider, cfg *config.Config) *Router {
	return &Router{
		mux:      chi.NewRouter(),
		db:       db,
		redis:    rdb,
		cfg:      cfg,
		apikey:   auth.NewAPIKeyMiddleware(cfg.Auth.APIKeyHeader, cfg.Auth.APIKey),
		provider: provider,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(rt.cfg.Server.RateLimitRPS, rt.cfg.Server.RateLimitBurst)
	r.Use(rl.Limit)

	// Health endpoints (no auth)
	health := handlers.NewHealthHandler(rt.db, rt.redis, rt.provider.Name())
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// API docs (no auth)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Services
	var contentCache *cache.Cache
	if rt.redis != nil {
		contentCache = cache.NewCache(rt.redis)
	}
	store := content.NewStore(rt.db, contentCache, slog.Default())
	extractor := metadata.NewExtractor(rt.provider, rt.cfg.LLM, slog.Default())

	metaH := handlers.NewMetadataHandler(extractor, store)
	r.Route("/api", func(r chi.Router) {
		r.Use(rt.apikey.Authenticate)

		r.Post("/metadata/extract", metaH.Extract)
		r.Get("/content/{id}/metadata", metaH.GetContentMetadata)
	})

	return r
}
