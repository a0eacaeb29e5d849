package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/washyaderner/vibe-n-thrive/internal/adapters/cms"
	"github.com/washyaderner/vibe-n-thrive/internal/adapters/fallback"
	server "github.com/washyaderner/vibe-n-thrive/internal/adapters/http_server"
	"github.com/washyaderner/vibe-n-thrive/internal/adapters/observability"
	"github.com/washyaderner/vibe-n-thrive/internal/adapters/places"
	redisad "github.com/washyaderner/vibe-n-thrive/internal/adapters/redis"
	"github.com/washyaderner/vibe-n-thrive/internal/app"
	"github.com/washyaderner/vibe-n-thrive/internal/domain"
	"github.com/washyaderner/vibe-n-thrive/internal/render"
	"github.com/washyaderner/vibe-n-thrive/internal/shared"
	mysqlrepo "github.com/washyaderner/vibe-n-thrive/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	copyData, err := shared.LoadCopy()
	if err != nil {
		log.Fatal().Err(err).Msg("site copy failed to load")
	}

	engine, err := render.NewEngine()
	if err != nil {
		log.Fatal().Err(err).Msg("template parse failed")
	}

	// fetch log is optional; page assembly never depends on it
	var fetchLog domain.FetchLog
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("fetch log database connection ok")
		fetchLog = mysqlrepo.New(db)
	}

	fb := fallback.New()

	// live sources only when credentials are present; otherwise the
	// fallback provider serves that feed outright
	var posts domain.PostSource
	if cfg.CMSLive() {
		c, err := cms.New(cfg.CMSBase, cfg.CMSSpace, cfg.CMSKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize CMS client")
		}
		posts = c
	}
	var reviews domain.ReviewSource
	if cfg.ReviewsLive() {
		c, err := places.New(cfg.PlacesBase, cfg.PlacesKey, cfg.PlaceID, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize places client")
		}
		reviews = c
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	content := app.NewContentService(app.ContentOpts{
		Posts:       posts,
		Reviews:     reviews,
		Fallback:    fb,
		Cache:       cache,
		FetchLog:    fetchLog,
		PostLimit:   cfg.PostLimit,
		CacheTTL:    cfg.CacheTTL,
		PostsLive:   cfg.CMSLive(),
		ReviewsLive: cfg.ReviewsLive(),
	})

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Content: content, Engine: engine, Copy: copyData})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("site listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
