package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"coffeeshop/internal/config"
	"coffeeshop/internal/http/handlers"
	applog "coffeeshop/internal/log"
	"coffeeshop/internal/repos"
)

func main() {
	cfg := config.Load()

	logger, err := applog.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("[log] %v", err)
	}
	applog.SetLogger(logger)
	defer func() { _ = logger.Sync() }()

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		logger.Fatal("db.open.fail", zap.Error(err))
	}

	deps := handlers.NewDeps(db, cfg)
	app, err := handlers.NewApp(deps, handlers.Options{RateLimit: cfg.RateLimit, AccessLog: true})
	if err != nil {
		logger.Fatal("app.init.fail", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps.Start(ctx)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server.listen.fail", zap.Error(err))
			stop()
		}
	}()
	applog.Info(nil, "server.start", map[string]any{"port": cfg.Port, "env": cfg.Env})

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("server.shutdown.fail", zap.Error(err))
	}
	// pending store writes finish before the database goes away
	deps.Writer.Wait()
	if err := db.Close(); err != nil {
		logger.Error("db.close.fail", zap.Error(err))
	}
	applog.Info(nil, "server.stop", nil)
}
