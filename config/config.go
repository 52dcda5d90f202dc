package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	DynamoDB DynamoDBConfig

	// Auth
	JWT         JWTConfig
	Cookie      CookieConfig
	GoogleOAuth GoogleOAuthConfig

	// Calendar
	GoogleCalendar GoogleCalendarConfig
	Calendar       CalendarConfig

	CORS      CORSConfig
	RateLimit RateLimitConfig
	Worker    WorkerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string // optional, for DynamoDB Local
	Table           string
	AccessKeyID     string
	SecretAccessKey string
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
	MaxAge int
}

type GoogleOAuthConfig struct {
	ClientID           string
	ClientSecret       string
	RedirectURL        string
	SuccessRedirectURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	// TokenPath points at a user token from scripts/gcal-auth. Empty means
	// CredentialsPath is a service account.
	TokenPath  string
	CalendarID string
}

type CalendarConfig struct {
	Timezone string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	PerMin int
}

type WorkerConfig struct {
	ResyncSpec     string
	PurgeSpec      string
	InboxRetention time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	cfg.DynamoDB.Region = viper.GetString("dynamodb.region")
	cfg.DynamoDB.Endpoint = viper.GetString("dynamodb.endpoint")
	cfg.DynamoDB.Table = viper.GetString("dynamodb.table")
	cfg.DynamoDB.AccessKeyID = viper.GetString("dynamodb.access_key_id")
	cfg.DynamoDB.SecretAccessKey = viper.GetString("dynamodb.secret_access_key")

	// Auth
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.MaxAge = viper.GetInt("cookie.max_age")

	cfg.GoogleOAuth.ClientID = viper.GetString("google_oauth.client_id")
	cfg.GoogleOAuth.ClientSecret = viper.GetString("google_oauth.client_secret")
	cfg.GoogleOAuth.RedirectURL = viper.GetString("google_oauth.redirect_url")
	cfg.GoogleOAuth.SuccessRedirectURL = viper.GetString("google_oauth.success_redirect_url")

	// Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	cfg.Worker.ResyncSpec = viper.GetString("worker.resync_spec")
	cfg.Worker.PurgeSpec = viper.GetString("worker.purge_spec")
	cfg.Worker.InboxRetention = viper.GetDuration("worker.inbox_retention")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key is required")
	}
	if cfg.JWT.TTL <= 0 {
		return errors.New("jwt.ttl must be positive")
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if cfg.DynamoDB.Table == "" {
		return errors.New("dynamodb.table is required")
	}
	if _, err := time.LoadLocation(cfg.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("dynamodb.region", "us-east-1")
	viper.SetDefault("dynamodb.table", "timeblock-inbox")

	viper.SetDefault("jwt.ttl", "168h")
	viper.SetDefault("cookie.name", "timeblock_session")
	viper.SetDefault("cookie.secure", false)
	viper.SetDefault("cookie.max_age", 7*24*3600)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("calendar.timezone", "UTC")
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("worker.resync_spec", "@every 5m")
	viper.SetDefault("worker.purge_spec", "@daily")
	viper.SetDefault("worker.inbox_retention", "720h")
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
