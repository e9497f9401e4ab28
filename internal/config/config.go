package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Namespace prefixes every environment variable, e.g. HOTEL_DB_HOST.
const Namespace = "HOTEL"

type Config struct {
	Log struct {
		Development bool `conf:"default:false"`
	}
	Web struct {
		Port            string        `conf:"default:8080"`
		ReadTimeout     time.Duration `conf:"default:10s"`
		WriteTimeout    time.Duration `conf:"default:30s"`
		IdleTimeout     time.Duration `conf:"default:60s"`
		ShutdownTimeout time.Duration `conf:"default:10s"`
		AllowedOrigins  []string      `conf:"default:http://localhost:3000"`
	}
	DB struct {
		Host        string `conf:"default:localhost"`
		Port        string `conf:"default:5432"`
		User        string `conf:"default:postgres"`
		Password    string `conf:"default:postgres,noprint"`
		Name        string `conf:"default:hotel"`
		SSLMode     string `conf:"default:disable"`
		MaxRetries  int    `conf:"default:5"`
		AutoMigrate bool   `conf:"default:false"`
	}
	JWT struct {
		Secret string `conf:"default:change-me,noprint"`
	}
	Redis struct {
		Addr string `conf:"default:localhost:6379"`
	}
	Kafka struct {
		Broker  string `conf:"default:localhost:9092"`
		GroupID string `conf:"default:go-hotel"`
	}
	Storage struct {
		BasePath      string `conf:"default:./media"`
		BaseURL       string `conf:"default:/media"`
		MaxPhotoBytes int64  `conf:"default:5242880"`
	}
	Payroll struct {
		PolicyFile   string `conf:"default:config/payroll_policy.yaml"`
		BatchWorkers int    `conf:"default:4"`
	}
	Outbox struct {
		PollInterval time.Duration `conf:"default:2s"`
		BatchSize    int           `conf:"default:50"`
	}
}

// Load reads an optional .env file and then parses environment variables and
// command line flags into Config. conf.ErrHelpWanted is returned untouched so
// callers can print Usage.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		zap.L().Warn("failed to load .env file", zap.Error(err))
	}

	var cfg Config
	if err := conf.Parse(args, Namespace, &cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return cfg, err
		}
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func Usage(cfg *Config) string {
	usage, err := conf.Usage(Namespace, cfg)
	if err != nil {
		return err.Error()
	}
	return usage
}

// String renders the effective configuration with secrets masked.
func String(cfg *Config) string {
	out, err := conf.String(cfg)
	if err != nil {
		return err.Error()
	}
	return out
}
