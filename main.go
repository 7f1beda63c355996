package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tamrah/internal/config"
	"tamrah/internal/logging"
	"tamrah/internal/models"
	"tamrah/internal/repositories"
	"tamrah/pkg/identity"
	"tamrah/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	deps := appDeps{cfg: cfg, checks: map[string]func() error{}}

	// --- Catalog Store ---
	db, err := openDatabase(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open catalog database")
	}
	dateTypeRepo := repositories.NewGORMDateTypeRepository(db)
	if err := dateTypeRepo.Migrate(); err != nil {
		logging.Fatal().Err(err).Msg("Failed to migrate catalog database")
	}
	deps.dateTypes = dateTypeRepo
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
		deps.checks["database"] = sqlDB.Ping
	}

	// --- Blob Store ---
	bdb, err := repositories.OpenBadger(cfg.BlobDir)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open blob store")
	}
	defer bdb.Close()
	deps.blobs = repositories.NewBadgerBlobRepository(bdb)
	if cfg.BlobDir == "" {
		logging.Warn().Msg("BLOB_DIR not set, uploaded images are kept in memory only")
	}

	// --- Preference Store ---
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		deps.prefs = repositories.NewRedisPreferenceRepository(rdb)
		deps.checks["redis"] = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return rdb.Ping(ctx).Err()
		}
	} else {
		logging.Info().Msg("REDIS_ADDR not set, using in-memory preference store")
		deps.prefs = repositories.NewMockPreferenceRepository()
	}

	// --- Catalog Events ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		deps.publisher = mqClient

		if err := mqClient.Consume(rabbitmq.DefaultAuditQueue, "date_type.*", auditCatalogEvent); err != nil {
			logging.Error().Err(err).Msg("Failed to start catalog audit consumer")
		}
	}

	// --- Identity Service ---
	if cfg.IdentityAPIURL != "" {
		deps.identity = identity.NewClient(identity.Config{
			BaseURL: cfg.IdentityAPIURL,
			APIKey:  cfg.IdentityAPIKey,
			Timeout: cfg.IdentityTimeout,
		})
	}

	app, dateTypeService := newApp(deps)

	if cfg.SeedCatalog {
		n, err := dateTypeService.SeedIfEmpty(context.Background(), seedDateTypes())
		if err != nil {
			logging.Error().Err(err).Msg("Failed to seed catalog")
		} else if n > 0 {
			logging.Info().Int("count", n).Msg("Seeded catalog")
		}
	}

	// --- Start HTTP Server ---
	logging.Info().Str("addr", cfg.AppPort).Msg("Starting server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logging.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-quit
	logging.Info().Msg("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logging.Error().Err(err).Msg("Error during Fiber shutdown")
	}
	logging.Info().Msg("Server gracefully stopped")
}

// openDatabase connects to the configured catalog database.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// auditCatalogEvent logs one catalog event from the audit queue.
func auditCatalogEvent(msg amqp.Delivery) error {
	var event models.CatalogEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("malformed catalog event: %w", err)
	}
	logging.Info().
		Str("event", event.Event).
		Uint("id", event.ID).
		Str("name_en", event.NameEn).
		Time("occurred_at", event.OccurredAt).
		Msg("Catalog event")
	return nil
}
