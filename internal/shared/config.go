package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CMSBase     string
	CMSKey      string
	CMSSpace    string
	PlacesBase  string
	PlacesKey   string
	PlaceID     string
	PostLimit   int
	CacheTTL    time.Duration
}

// CMSLive reports whether live CMS credentials are configured. This is the
// whole live-vs-mock switch: a presence check, no runtime health logic.
func (c Config) CMSLive() bool { return c.CMSKey != "" && c.CMSSpace != "" }

// ReviewsLive reports whether live reviews credentials are configured.
func (c Config) ReviewsLive() bool { return c.PlacesKey != "" && c.PlaceID != "" }

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),
		MySQLDSN:    env("MYSQL_DSN", ""),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CMSBase:     env("CMS_BASE_URL", "https://cdn.contentful.com"),
		CMSKey:      env("CMS_API_KEY", ""),
		CMSSpace:    env("CMS_SPACE_ID", ""),
		PlacesBase:  env("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		PlacesKey:   env("PLACES_API_KEY", ""),
		PlaceID:     env("PLACES_PLACE_ID", ""),
		PostLimit:   atoi("BLOG_POST_LIMIT", 6),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if !c.CMSLive() {
		log.Warn().Msg("CMS credentials absent; blog uses fallback content")
	}
	if !c.ReviewsLive() {
		log.Warn().Msg("places credentials absent; reviews use fallback content")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
