package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"smartcrop/pkg/logging"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBPath     string
	LogLevel   string
	LogFormat  string
	HeaderAuth bool

	AdminPassword string

	CropsCSV       string
	FertilizersCSV string
	ReferenceXLSX  string

	OpenWeatherKey string
	OpenWeatherURL string
	SoilGridsURL   string
	NominatimURL   string
	NominatimRPS   float64
	UnsplashKey    string
	YouTubeKey     string
	WikipediaURL   string
	HTTPTimeout    time.Duration
}

// Load reads an optional .env file, then the process environment.
func Load() AppConfig {
	envErr := godotenv.Load()

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:           get("PORT", "8080"),
		Timezone:       get("TZ", "Asia/Kolkata"),
		DBPath:         get("DB_PATH", "smartcrop.db"),
		LogLevel:       get("LOG_LEVEL", "info"),
		LogFormat:      get("LOG_FORMAT", "console"),
		HeaderAuth:     get("ENABLE_HEADER_AUTH", "false") == "true",
		AdminPassword:  get("ADMIN_PASSWORD", ""),
		CropsCSV:       get("CROPS_CSV", ""),
		FertilizersCSV: get("FERTILIZERS_CSV", ""),
		ReferenceXLSX:  get("REFERENCE_XLSX", ""),
		OpenWeatherKey: get("OPENWEATHER_API_KEY", ""),
		OpenWeatherURL: get("OPENWEATHER_URL", "https://api.openweathermap.org/data/2.5"),
		SoilGridsURL:   get("SOILGRIDS_URL", "https://rest.isric.org/soilgrids/v2.0"),
		NominatimURL:   get("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		NominatimRPS:   1,
		UnsplashKey:    get("UNSPLASH_ACCESS_KEY", ""),
		YouTubeKey:     get("YOUTUBE_API_KEY", ""),
		WikipediaURL:   get("WIKIPEDIA_URL", "https://en.wikipedia.org"),
		HTTPTimeout:    10 * time.Second,
	}
	if v, err := strconv.ParseFloat(get("NOMINATIM_RPS", ""), 64); err == nil && v > 0 {
		cfg.NominatimRPS = v
	}
	if d, err := time.ParseDuration(get("HTTP_TIMEOUT", "")); err == nil && d > 0 {
		cfg.HTTPTimeout = d
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logging.Debug().Err(envErr).Msg("[cfg] no .env file loaded")
	}
	logging.Info().
		Str("port", cfg.Port).
		Str("tz", cfg.Timezone).
		Str("db", cfg.DBPath).
		Bool("header_auth", cfg.HeaderAuth).
		Str("admin_password", mask(cfg.AdminPassword)).
		Str("openweather_key", mask(cfg.OpenWeatherKey)).
		Str("unsplash_key", mask(cfg.UnsplashKey)).
		Str("youtube_key", mask(cfg.YouTubeKey)).
		Dur("http_timeout", cfg.HTTPTimeout).
		Msg("[cfg] loaded")
	return cfg
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
