package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Stats     StatsConfig     `yaml:"stats"`
	Lookup    LookupConfig    `yaml:"lookup"`
	Cache     CacheConfig     `yaml:"cache"`
	Local     LocalConfig     `yaml:"local"`
	Export    ExportConfig    `yaml:"export"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	Environment     string        `yaml:"environment"      env:"APP_ENV"                 env-default:"production"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"10485760"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"scanplate"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig limits unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP"         env-default:"5m"`
}

// StatsConfig controls calendar boundaries and averaging.
type StatsConfig struct {
	// Timezone is the IANA zone used for calendar-day boundaries.
	Timezone   string `yaml:"timezone"    env:"STATS_TIMEZONE"    env-default:"UTC"`
	WindowDays int    `yaml:"window_days" env:"STATS_WINDOW_DAYS" env-default:"7"`
	// AverageOverEmptyDays counts days without entries in the averaging denominator.
	AverageOverEmptyDays bool `yaml:"average_over_empty_days" env:"STATS_AVERAGE_OVER_EMPTY_DAYS" env-default:"true"`
}

// Location resolves Timezone, falling back to UTC when it cannot be loaded.
// Validate rejects unknown zones, so the fallback only applies to unvalidated configs.
func (s StatsConfig) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LookupConfig holds external nutrition provider settings.
// API keys are only ever read from configuration, never compiled in.
type LookupConfig struct {
	Timeout             time.Duration `yaml:"timeout"               env:"LOOKUP_TIMEOUT"               env-default:"10s"`
	OpenFoodFactsURL    string        `yaml:"openfoodfacts_url"     env:"LOOKUP_OPENFOODFACTS_URL"     env-default:"https://world.openfoodfacts.org"`
	USDAURL             string        `yaml:"usda_url"              env:"LOOKUP_USDA_URL"              env-default:"https://api.nal.usda.gov/fdc/v1"`
	USDAAPIKey          string        `yaml:"usda_api_key"          env:"LOOKUP_USDA_API_KEY"`
	USDAPageSize        int           `yaml:"usda_page_size"        env:"LOOKUP_USDA_PAGE_SIZE"        env-default:"25"`
	ClarifaiURL         string        `yaml:"clarifai_url"          env:"LOOKUP_CLARIFAI_URL"          env-default:"https://api.clarifai.com/v2"`
	ClarifaiAPIKey      string        `yaml:"clarifai_api_key"      env:"LOOKUP_CLARIFAI_API_KEY"`
	ClarifaiModel       string        `yaml:"clarifai_model"        env:"LOOKUP_CLARIFAI_MODEL"        env-default:"food-item-recognition"`
	PhotoMinConfidence  float64       `yaml:"photo_min_confidence"  env:"LOOKUP_PHOTO_MIN_CONFIDENCE"  env-default:"0.80"`
	PhotoMaxLabels      int           `yaml:"photo_max_labels"      env:"LOOKUP_PHOTO_MAX_LABELS"      env-default:"10"`
	PhotoMonthlyQuota   int           `yaml:"photo_monthly_quota"   env:"LOOKUP_PHOTO_MONTHLY_QUOTA"   env-default:"1000"`
	LabelConcurrency    int           `yaml:"label_concurrency"     env:"LOOKUP_LABEL_CONCURRENCY"     env-default:"4"`
}

// CacheConfig holds the optional Redis lookup cache. An empty address disables it.
type CacheConfig struct {
	RedisAddr     string        `yaml:"redis_addr"     env:"CACHE_REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" env:"CACHE_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"       env:"CACHE_REDIS_DB"       env-default:"0"`
	TTL           time.Duration `yaml:"ttl"            env:"CACHE_TTL"            env-default:"24h"`
}

// LocalConfig configures the offline snapshot store used by cmd/offline.
type LocalConfig struct {
	Path string `yaml:"path" env:"LOCAL_STORE_PATH" env-default:"./scanplate.db"`
}

// ExportConfig bounds export sizes.
type ExportConfig struct {
	MaxEntries int `yaml:"max_entries" env:"EXPORT_MAX_ENTRIES" env-default:"10000"`
}
