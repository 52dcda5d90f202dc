package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timeblock/config"
	"timeblock/config/dynamo"
	"timeblock/config/postgre"
	_ "timeblock/docs" // Swagger docs
	"timeblock/internal/health"
	"timeblock/internal/httpserver"
	"timeblock/pkg/gcalendar"
	"timeblock/pkg/googleauth"
	"timeblock/pkg/log"
	"timeblock/pkg/scope"
)

// @title       Timeblock API
// @description Calendar time-blocking backend: schedules on a 15-minute grid, an inbox of unscheduled items and Google sign-in.
// @version     1
// @host        localhost:8080
// @schemes     http
// @BasePath    /api/v1
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Timeblock API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	if err := postgre.Migrate(ctx, postgresDB); err != nil {
		logger.Error(ctx, "Failed to migrate PostgreSQL: ", err)
		return
	}

	dynamoDB, err := dynamo.Connect(ctx, cfg.DynamoDB)
	if err != nil {
		logger.Error(ctx, "Failed to connect to DynamoDB: ", err)
		return
	}
	if err := dynamo.EnsureTable(ctx, dynamoDB, cfg.DynamoDB.Table); err != nil {
		logger.Error(ctx, "Failed to prepare DynamoDB table: ", err)
		return
	}

	// 4. Auth
	jwtManager, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.TTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	oauth := googleauth.New(googleauth.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
	})

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClient(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	location, _ := time.LoadLocation(cfg.Calendar.Timezone)

	// 6. Health
	healthAgg := health.New(logger, health.DefaultTimeout,
		health.Postgres(postgresDB),
		health.DynamoDB(dynamoDB, cfg.DynamoDB.Table),
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		PostgresDB:         postgresDB,
		DynamoDB:           dynamoDB,
		DynamoTable:        cfg.DynamoDB.Table,
		JWTManager:         jwtManager,
		OAuth:              oauth,
		SuccessRedirectURL: cfg.GoogleOAuth.SuccessRedirectURL,
		Cookie:             cfg.Cookie,
		CORS:               cfg.CORS,
		RateLimit:          cfg.RateLimit,
		Calendar:           calendarClient,
		CalendarID:         cfg.GoogleCalendar.CalendarID,
		Location:           location,
		Health:             healthAgg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
