package connection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-enlacerb/internal/config"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RetryInterval is the pause between connection attempts.
var RetryInterval = 5 * time.Second

// Now is the store clock: UTC, truncated to the microseconds postgres keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewGormLogger routes gorm's own logging through zap.
func NewGormLogger(l *zap.Logger) logger.Interface {
	return logger.New(
		zap.NewStdLog(l.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Dialector picks the gorm driver for the configured DB_DRIVER.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.PostgresDSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(SQLiteDSN(cfg.SQLitePath)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// SQLiteDSN enables foreign keys and a busy timeout on a sqlite file path.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// ConnectGORMWithRetry opens the store handle shared by every repository.
func ConnectGORMWithRetry(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	if l == nil {
		l = zap.L()
	}
	l = l.Named("connection")

	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for i := 1; i <= cfg.DBMaxRetries; i++ {
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger:  NewGormLogger(l),
			NowFunc: Now,
		})
		if err != nil {
			lastErr = err
			l.Warn("gorm open failed", zap.Int("attempt", i), zap.Int("max", cfg.DBMaxRetries), zap.Error(err))
			time.Sleep(RetryInterval)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			l.Warn("get sql.DB failed", zap.Int("attempt", i), zap.Error(err))
			time.Sleep(RetryInterval)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			l.Warn("database ping failed", zap.Int("attempt", i), zap.Int("max", cfg.DBMaxRetries), zap.Error(err))
			time.Sleep(RetryInterval)
			continue
		}

		if cfg.DBDriver == config.DriverSQLite {
			// sqlite allows a single writer
			sqlDB.SetMaxOpenConns(1)
		} else {
			sqlDB.SetMaxOpenConns(25)
			sqlDB.SetMaxIdleConns(10)
			sqlDB.SetConnMaxLifetime(time.Hour)
		}

		l.Info("database connected", zap.String("driver", cfg.DBDriver))
		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", cfg.DBMaxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int, l *zap.Logger) (*redis.Client, error) {
	if l == nil {
		l = zap.L()
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		lastErr = rdb.Ping(ctx).Err()
		cancel()
		if lastErr == nil {
			l.Info("redis connected", zap.String("addr", addr))
			return rdb, nil
		}

		l.Warn("redis ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(lastErr))
		time.Sleep(RetryInterval)
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}

// ConnectKafkaWithRetry checks the broker is reachable and returns a writer for it.
// Topics are set per message.
func ConnectKafkaWithRetry(broker string, maxRetries int, l *zap.Logger) (*kafka.Writer, error) {
	if l == nil {
		l = zap.L()
	}

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		cancel()
		if err == nil {
			_ = conn.Close()
			l.Info("kafka connected", zap.String("broker", broker))
			return &kafka.Writer{
				Addr:                   kafka.TCP(broker),
				Balancer:               &kafka.Hash{},
				RequiredAcks:           kafka.RequireAll,
				AllowAutoTopicCreation: true,
				BatchTimeout:           50 * time.Millisecond,
			}, nil
		}

		lastErr = err
		l.Warn("kafka dial failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(RetryInterval)
	}

	return nil, fmt.Errorf("kafka connection failed after %d retries: %w", maxRetries, lastErr)
}
