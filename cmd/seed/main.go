// Утилита наполнения базы синтетическими данными для ручного тестирования.
// Не является частью пути обслуживания запросов: запускается отдельно,
// работает до завершения или первой ошибки.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/magabrotheeeer/travel-booking/internal/config"
	"github.com/magabrotheeeer/travel-booking/internal/lib/fake"
	"github.com/magabrotheeeer/travel-booking/internal/lib/sl"
	"github.com/magabrotheeeer/travel-booking/internal/migrations"
	seedservice "github.com/magabrotheeeer/travel-booking/internal/services/seed"
	"github.com/magabrotheeeer/travel-booking/internal/storage/repository"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	listings := flag.Int("listings", 20, "number of listings to create")
	bookings := flag.Int("bookings", 15, "number of bookings to create")
	reviews := flag.Int("reviews", 25, "number of reviews to create")
	clear := flag.Bool("clear", false, "clear existing data first")
	flag.Parse()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Info("starting seed", slog.String("env", cfg.Env))

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		logger.Error("failed to connect to storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		_ = db.DB.Close()
	}()

	if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	gen := fake.New(time.Now().UnixNano())
	seeder := seedservice.NewSeedService(db, gen, logger)

	summary, err := seeder.Run(context.Background(), seedservice.Options{
		Users:    *users,
		Listings: *listings,
		Bookings: *bookings,
		Reviews:  *reviews,
		Clear:    *clear,
	})
	if err != nil {
		logger.Error("seeding failed", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("seeding complete",
		slog.Int("users", summary.Users),
		slog.Int("listings", summary.Listings),
		slog.Int("bookings", summary.Bookings),
		slog.Int("reviews", summary.Reviews),
	)
}
