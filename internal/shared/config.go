package shared

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	HotelsDir   string
	UploadsDir  string
	UploadsURL  string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	RateRPS     int
}

// Load builds the config from defaults overridden by environment variables
// (HTTP_ADDR, HOTELS_DIR, REDIS_ADDR, ...).
func Load() Config {
	v := viper.New()
	v.SetDefault("app_env", "prod")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("hotels_dir", "data/hotels")
	v.SetDefault("uploads_dir", "uploads/images")
	v.SetDefault("uploads_url", "/uploads/images")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_password", "")
	v.SetDefault("cache_ttl_seconds", 900)
	v.SetDefault("rate_rps", 50)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return Config{
		AppEnv:      v.GetString("app_env"),
		HTTPAddr:    v.GetString("http_addr"),
		MetricsAddr: v.GetString("metrics_addr"),
		HotelsDir:   v.GetString("hotels_dir"),
		UploadsDir:  v.GetString("uploads_dir"),
		UploadsURL:  v.GetString("uploads_url"),
		RedisAddr:   v.GetString("redis_addr"),
		RedisDB:     v.GetInt("redis_db"),
		RedisPass:   v.GetString("redis_password"),
		CacheTTL:    time.Duration(v.GetInt("cache_ttl_seconds")) * time.Second,
		RateRPS:     v.GetInt("rate_rps"),
	}
}
