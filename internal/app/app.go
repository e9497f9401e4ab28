package app

import (
	"database/sql"
	"fmt"

	"go-hotel/internal/config"
	"go-hotel/internal/shared/connection"
	"go-hotel/internal/shared/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	rdb    *redis.Client
	store  storage.FileStorage
}

func (i *infrastructure) Close() {
	if i.rdb != nil {
		_ = i.rdb.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func postgresConfig(cfg config.Config) connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     cfg.DB.Host,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Name:     cfg.DB.Name,
		Port:     cfg.DB.Port,
		SSLMode:  cfg.DB.SSLMode,
	}
}

// connect opens postgres and local storage, and redis when withRedis is set.
func connect(cfg config.Config, withRedis bool) (*infrastructure, error) {
	infra := &infrastructure{}

	gormDB, err := connection.ConnectGORMWithRetry(postgresConfig(cfg), cfg.DB.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	infra.gormDB = gormDB
	infra.sqlDB = sqlDB

	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.rdb = rdb
	}

	store, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		infra.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	infra.store = store

	return infra, nil
}

// BuildApp connects the infrastructure and mounts every module on router.
// The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	infra, err := connect(cfg, true)
	if err != nil {
		return nil, err
	}
	logger.Info("infrastructure ready",
		zap.String("db_host", cfg.DB.Host),
		zap.String("redis", cfg.Redis.Addr),
		zap.String("storage", cfg.Storage.BasePath),
	)

	if cfg.DB.AutoMigrate {
		if err := migrate(infra.gormDB); err != nil {
			infra.Close()
			return nil, err
		}
		logger.Info("schema migrated")
	}

	if err := registerModules(router, cfg, infra, logger); err != nil {
		infra.Close()
		return nil, err
	}

	return infra.Close, nil
}
