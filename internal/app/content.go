package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/washyaderner/vibe-n-thrive/internal/adapters/observability"
	"github.com/washyaderner/vibe-n-thrive/internal/domain"
)

const snapshotKey = "content:snapshot"

// Snapshot is everything one render pass needs from the external feeds.
type Snapshot struct {
	Posts   []domain.BlogPost
	Reviews []domain.Review
}

// ContentService aggregates the two feeds. Each feed resolves
// independently: a live source that errors is superseded by the fallback
// for that pass, so partial pages never happen and feed failure is an
// operational event, not a user-visible one.
type ContentService struct {
	posts       domain.PostSource
	reviews     domain.ReviewSource
	fb          domain.PostSource // fallback implements both ports
	fbReviews   domain.ReviewSource
	cache       domain.Cache
	fetchLog    domain.FetchLog
	postLimit   int
	cacheTTL    time.Duration
	postsLive   bool
	reviewsLive bool
}

type ContentOpts struct {
	Posts    domain.PostSource
	Reviews  domain.ReviewSource
	Fallback interface {
		domain.PostSource
		domain.ReviewSource
	}
	Cache       domain.Cache
	FetchLog    domain.FetchLog
	PostLimit   int
	CacheTTL    time.Duration
	PostsLive   bool
	ReviewsLive bool
}

func NewContentService(o ContentOpts) *ContentService {
	s := &ContentService{
		posts:       o.Posts,
		reviews:     o.Reviews,
		fb:          o.Fallback,
		fbReviews:   o.Fallback,
		cache:       o.Cache,
		fetchLog:    o.FetchLog,
		postLimit:   o.PostLimit,
		cacheTTL:    o.CacheTTL,
		postsLive:   o.PostsLive,
		reviewsLive: o.ReviewsLive,
	}
	if s.posts == nil {
		s.posts = o.Fallback
		s.postsLive = false
	}
	if s.reviews == nil {
		s.reviews = o.Fallback
		s.reviewsLive = false
	}
	if s.postLimit <= 0 {
		s.postLimit = 6
	}
	if !s.postsLive {
		observability.ObserveFallback("blog", "no_credentials")
	}
	if !s.reviewsLive {
		observability.ObserveFallback("reviews", "no_credentials")
	}
	return s
}

// Fetch resolves both feeds and returns the normalized snapshot. Render
// must not begin on partial results, so Fetch returns only once every
// feed has either returned or been superseded by its fallback.
func (s *ContentService) Fetch(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, snapshotKey, &snap); ok {
			return snap, nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		raw, err := s.posts.ListPosts(gctx, s.postLimit)
		if err != nil {
			s.recordMiss(gctx, "blog", err)
			if raw, err = s.fb.ListPosts(gctx, s.postLimit); err != nil {
				return err // fallback never errors in practice
			}
		}
		snap.Posts = MapPosts(raw)
		return nil
	})

	g.Go(func() error {
		raw, err := s.reviews.ListReviews(gctx)
		if err != nil {
			s.recordMiss(gctx, "reviews", err)
			if raw, err = s.fbReviews.ListReviews(gctx); err != nil {
				return err
			}
		}
		snap.Reviews = MapReviews(raw)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, snapshotKey, snap, int(s.cacheTTL.Seconds()))
	}
	return snap, nil
}

// Invalidate drops the cached snapshot so the next pass refetches.
func (s *ContentService) Invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, snapshotKey)
	}
}

// recordMiss surfaces an adapter failure to operations: structured log,
// fallback metric, and the fetch log when one is configured.
func (s *ContentService) recordMiss(ctx context.Context, feed string, err error) {
	log.Warn().Str("feed", feed).Err(err).Msg("feed fetch failed; using fallback")
	observability.ObserveFallback(feed, "fetch_error")
	if s.fetchLog == nil {
		return
	}
	status := 0
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status = 401
	case errors.Is(err, domain.ErrNotFound):
		status = 404
	case errors.Is(err, domain.ErrRateLimited):
		status = 429
	case errors.Is(err, domain.ErrMalformed):
		status = 502
	}
	if lerr := s.fetchLog.LogMiss(ctx, feed, status, err.Error()); lerr != nil {
		log.Warn().Err(lerr).Msg("fetch log write failed")
	}
}
