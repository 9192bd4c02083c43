package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charlesmagnus93/epargnePro/internal/config"
	"github.com/charlesmagnus93/epargnePro/internal/database"
	"github.com/charlesmagnus93/epargnePro/internal/logging"
	"github.com/charlesmagnus93/epargnePro/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if cfg.Log.File != "" {
		if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
			log.Fatalf("create log dir: %v", err)
		}
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("setup logging: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatalf("migrate database: %v", err)
	}

	// setup router
	r := router.Setup(cfg, db, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.WithField("addr", addr).Info("server listening")
	if err := r.Run(addr); err != nil {
		logger.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
