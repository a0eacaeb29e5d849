// Command render performs one render pass and writes the assembled page
// to disk, for static hosting. It shares the whole content pipeline with
// the server: live feeds when credentials are present, deterministic
// fallback otherwise.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/washyaderner/vibe-n-thrive/internal/adapters/cms"
	"github.com/washyaderner/vibe-n-thrive/internal/adapters/fallback"
	"github.com/washyaderner/vibe-n-thrive/internal/adapters/observability"
	"github.com/washyaderner/vibe-n-thrive/internal/adapters/places"
	"github.com/washyaderner/vibe-n-thrive/internal/app"
	"github.com/washyaderner/vibe-n-thrive/internal/domain"
	"github.com/washyaderner/vibe-n-thrive/internal/render"
	"github.com/washyaderner/vibe-n-thrive/internal/shared"
)

func main() {
	out := flag.String("out", "public/index.html", "output path for the assembled page")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	copyData, err := shared.LoadCopy()
	if err != nil {
		log.Fatal().Err(err).Msg("site copy failed to load")
	}
	engine, err := render.NewEngine()
	if err != nil {
		log.Fatal().Err(err).Msg("template parse failed")
	}

	fb := fallback.New()
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

	// no cache for a one-shot build; every run refetches
	content := app.NewContentService(app.ContentOpts{
		Posts:       posts,
		Reviews:     reviews,
		Fallback:    fb,
		PostLimit:   cfg.PostLimit,
		PostsLive:   cfg.CMSLive(),
		ReviewsLive: cfg.ReviewsLive(),
	})

	snap, err := content.Fetch(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("content fetch failed")
	}

	body, err := engine.AssemblePage(render.NewPageData(copyData, snap.Posts, snap.Reviews))
	if err != nil {
		log.Fatal().Err(err).Msg("page assembly failed")
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("create output dir failed")
		}
	}
	if err := os.WriteFile(*out, body, 0o644); err != nil {
		log.Fatal().Err(err).Str("out", *out).Msg("write page failed")
	}

	log.Info().
		Str("out", *out).
		Int("posts", len(snap.Posts)).
		Int("reviews", len(snap.Reviews)).
		Msg("static render completed")
}
