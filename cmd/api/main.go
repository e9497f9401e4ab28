package main

import (
	"errors"
	"fmt"
	"os"

	"go-hotel/internal/app"
	"go-hotel/internal/bootstrap"
	"go-hotel/internal/config"
	"go-hotel/internal/shared/apperror"

	"github.com/ardanlabs/conf"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(config.Usage(&cfg))
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(cfg.Log.Development)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	logger.Info("starting api", zap.String("config", config.String(&cfg)))

	if err := bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Web.Port,
			ReadTimeout:     cfg.Web.ReadTimeout,
			WriteTimeout:    cfg.Web.WriteTimeout,
			IdleTimeout:     cfg.Web.IdleTimeout,
			ShutdownTimeout: cfg.Web.ShutdownTimeout,
		},
		bootstrap.NewZapAuditLogger(logger),
	); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
