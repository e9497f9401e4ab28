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

	if err := app.RunWorker(cfg, logger); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
