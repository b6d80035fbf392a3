package main

import (
	"flag"
	"os"
	"syscall"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/app"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/config"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	managerEmail := os.Getenv("HOTPOT_DEFAULT_MANAGER_EMAIL")
	managerPass := os.Getenv("HOTPOT_DEFAULT_MANAGER_PASSWORD")
	if cfg.Server.Mode == "release" && managerPass == "" {
		stdLog.Printf("warning: HOTPOT_DEFAULT_MANAGER_PASSWORD not set, skipping default manager init")
	} else if err := models.InitDefaultManager(managerEmail, managerPass); err != nil {
		stdLog.Printf("warning: default manager init failed: %v", err)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("service run failed: %v", err)
	}
}
