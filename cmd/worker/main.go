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
	inboxRepo "timeblock/internal/inbox/repository/dynamo"
	inboxUC "timeblock/internal/inbox/usecase"
	"timeblock/internal/maintenance/delivery/job"
	maintenanceUC "timeblock/internal/maintenance/usecase"
	scheduleRepo "timeblock/internal/schedule/repository/postgre"
	scheduleUC "timeblock/internal/schedule/usecase"
	"timeblock/pkg/gcalendar"
	"timeblock/pkg/log"
)

// main is the entry point for the background worker.
// It runs the calendar resync and the inbox purge on their cron specs.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting worker...")

	// Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	dynamoDB, err := dynamo.Connect(ctx, cfg.DynamoDB)
	if err != nil {
		logger.Error(ctx, "Failed to connect to DynamoDB: ", err)
		return
	}

	location, _ := time.LoadLocation(cfg.Calendar.Timezone)

	// Optional Google Calendar
	scheduleCfg := scheduleUC.Config{CalendarID: cfg.GoogleCalendar.CalendarID, Location: location}
	maintenanceCfg := maintenanceUC.Config{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Retention:  cfg.Worker.InboxRetention,
	}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err := gcalendar.NewClient(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			scheduleCfg.Calendar = calendarClient
			maintenanceCfg.Calendar = calendarClient
		}
	}

	// UseCases
	schedules := scheduleUC.New(scheduleRepo.New(postgresDB, logger), logger, scheduleCfg)
	inbox := inboxUC.New(inboxRepo.New(dynamoDB, cfg.DynamoDB.Table, logger), schedules, logger)
	maintenance := maintenanceUC.New(schedules, inbox, logger, maintenanceCfg)

	scheduler, err := job.New(logger, maintenance, job.Config{
		ResyncSpec: cfg.Worker.ResyncSpec,
		PurgeSpec:  cfg.Worker.PurgeSpec,
		Location:   location,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize scheduler: ", err)
		return
	}

	logger.Info(ctx, "Worker running. Waiting for shutdown signal...")
	scheduler.Run(ctx)
	logger.Info(ctx, "Worker stopped gracefully")
}
