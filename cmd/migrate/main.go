package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/migrate"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/postgres"

	"github.com/joho/godotenv"
)

func main() {
	down := flag.Bool("down", false, "rollback the last migration")
	flag.Parse()

	godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	conf := config.New()
	if err := conf.Postgres.Validate(); err != nil {
		logger.Error("invalid postgres config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, conf.Postgres)
	if err != nil {
		logger.Error("failed to connect to db", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if *down {
		err = migrate.Down(db)
	} else {
		err = migrate.Up(db)
	}
	if err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migrations applied", slog.Bool("down", *down))
}
