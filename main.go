package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"rungoal/app/api"
	"rungoal/app/config"
	"rungoal/app/service/skill"
	"rungoal/app/service/store"
	"rungoal/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, store.New)
	do.Provide(di, skill.New)
	do.Provide(di, api.New)

	slog.Info("Service started", "addr", cfg.Server.Addr)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	g, gCtx := errgroup.WithContext(appCtx)
	g.Go(func() error {
		return do.MustInvoke[*api.Server](di).Run(gCtx)
	})

	if err = g.Wait(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
