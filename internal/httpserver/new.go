package httpserver

import (
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"timeblock/config"
	"timeblock/internal/health"
	"timeblock/pkg/gcalendar"
	"timeblock/pkg/googleauth"
	"timeblock/pkg/log"
	"timeblock/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	postgresDB  *pgxpool.Pool
	dynamoDB    *dynamodb.Client
	dynamoTable string

	// Auth
	jwtManager         scope.Manager
	oauth              googleauth.Provider
	successRedirectURL string
	cookie             config.CookieConfig
	cors               config.CORSConfig
	rateLimit          config.RateLimitConfig

	// Calendar
	calendar   *gcalendar.Client
	calendarID string
	location   *time.Location

	health *health.Aggregator
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB  *pgxpool.Pool
	DynamoDB    *dynamodb.Client
	DynamoTable string

	JWTManager         scope.Manager
	OAuth              googleauth.Provider
	SuccessRedirectURL string
	Cookie             config.CookieConfig
	CORS               config.CORSConfig
	RateLimit          config.RateLimitConfig

	// Calendar is optional; schedules are not mirrored without it.
	Calendar   *gcalendar.Client
	CalendarID string
	Location   *time.Location

	Health *health.Aggregator
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.Default(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		postgresDB:         cfg.PostgresDB,
		dynamoDB:           cfg.DynamoDB,
		dynamoTable:        cfg.DynamoTable,
		jwtManager:         cfg.JWTManager,
		oauth:              cfg.OAuth,
		successRedirectURL: cfg.SuccessRedirectURL,
		cookie:             cfg.Cookie,
		cors:               cfg.CORS,
		rateLimit:          cfg.RateLimit,
		calendar:           cfg.Calendar,
		calendarID:         cfg.CalendarID,
		location:           cfg.Location,
		health:             cfg.Health,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres is required")
	}
	if srv.dynamoDB == nil || srv.dynamoTable == "" {
		return errors.New("dynamodb is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.oauth == nil {
		return errors.New("oauth provider is required")
	}
	if srv.health == nil {
		return errors.New("health aggregator is required")
	}
	return nil
}
