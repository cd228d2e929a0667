package main

import (
	"context"
	"time"

	"invoicing-dashboard-backend/internal/config"
	"invoicing-dashboard-backend/internal/seed"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	db, err := config.InitDB(cfg, logger)
	if err != nil {
		logger.WithFields(logrus.Fields{"field": "database"}).Fatal(err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := config.Migrate(db); err != nil {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if _, err := seed.Run(ctx, db, logger); err != nil {
		logger.WithFields(logrus.Fields{"field": "seed"}).Fatal("an error occurred while attempting to seed the database: " + err.Error())
	}
}
