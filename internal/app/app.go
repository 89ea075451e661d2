package app

import (
	"fmt"

	"go-enlacerb/internal/config"
	"go-enlacerb/internal/messaging/kafka"
	"go-enlacerb/internal/shared/connection"
	"go-enlacerb/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the process-wide connections opened by BuildApp.
type App struct {
	DB    *gorm.DB
	Redis *redis.Client
	Kafka *kafkago.Writer
}

// BuildApp connects the store and the optional redis/kafka backends, ensures the
// schema and registers every route on router.
func BuildApp(cfg *config.Config, router *gin.Engine, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.L()
	}

	db, err := connection.ConnectGORMWithRetry(cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &App{DB: db}

	if err := store.EnsureSchema(db); err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("schema ready", zap.String("driver", cfg.DBDriver))

	if cfg.RedisAddr != "" {
		a.Redis, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
	} else {
		logger.Info("REDIS_ADDR not set, idempotency keys disabled")
	}

	publisher := kafka.NewNoopPublisher()
	if cfg.KafkaBroker != "" {
		a.Kafka, err = connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.DBMaxRetries, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		publisher = kafka.NewPublisher(a.Kafka)
	} else {
		logger.Info("KAFKA_BROKER not set, lifecycle events disabled")
	}

	if err := RegisterModules(router, Deps{
		Config:    cfg,
		DB:        db,
		Redis:     a.Redis,
		Publisher: publisher,
		Logger:    logger,
	}); err != nil {
		a.Close()
		return nil, fmt.Errorf("register modules: %w", err)
	}

	return a, nil
}

func (a *App) Close() {
	if a.Kafka != nil {
		_ = a.Kafka.Close()
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
