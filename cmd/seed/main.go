package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stemsi/aprec-backend/internal/config"
	"github.com/stemsi/aprec-backend/internal/database"
	"github.com/stemsi/aprec-backend/internal/logger"
	"github.com/stemsi/aprec-backend/internal/model"
	"github.com/stemsi/aprec-backend/internal/repository"
	"github.com/stemsi/aprec-backend/internal/validator"
)

//go:embed seed.json
var defaultSeed []byte

type options struct {
	file  string
	reset bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "Seed file (JSON); the built-in catalog is used when empty")
	flag.BoolVar(&opts.reset, "reset", false, "Delete existing profiles and classes before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Invalid configuration")
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	err = run(ctx, cfg, log, opts)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("file", opts.file).Msg("Seed failed")
	}
}

// run seeds the store and returns once every deferred cleanup has run.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts options) error {
	data, err := loadSeed(opts.file)
	if err != nil {
		return fmt.Errorf("read seed data: %w", err)
	}

	dsn, err := cfg.DatabaseDSN()
	if err != nil {
		return fmt.Errorf("database settings: %w", err)
	}
	if err := database.EnsureSchema(dsn, log); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	classes, profiles, err := apply(ctx, tx, data, opts.reset)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.Info().
		Int("ap_classes", classes).
		Int("student_profiles", profiles).
		Bool("reset", opts.reset).
		Msg("Seed completed")
	return nil
}

// loadSeed reads and validates seed data from path, or the embedded default.
func loadSeed(path string) (*model.SeedData, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return parseSeed(raw)
}

func parseSeed(raw []byte) (*model.SeedData, error) {
	var data model.SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if fields := validator.Struct(data); fields != nil {
		return nil, fmt.Errorf("invalid seed: %s", describe(fields))
	}
	return &data, nil
}

// describe renders field errors in a stable order.
func describe(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += "; "
		}
		out += k + ": " + fields[k]
	}
	return out
}

func apply(ctx context.Context, tx pgx.Tx, data *model.SeedData, reset bool) (int, int, error) {
	classRepo := repository.NewAPClassRepository(tx)
	profileRepo := repository.NewStudentProfileRepository(tx)

	if reset {
		if err := profileRepo.DeleteAll(ctx); err != nil {
			return 0, 0, err
		}
		if err := classRepo.DeleteAll(ctx); err != nil {
			return 0, 0, err
		}
	}

	for _, req := range data.APClasses {
		if err := classRepo.Create(ctx, req.ToClass()); err != nil {
			return 0, 0, err
		}
	}
	for _, req := range data.StudentProfiles {
		if err := profileRepo.Create(ctx, req.ToProfile()); err != nil {
			return 0, 0, err
		}
	}
	return len(data.APClasses), len(data.StudentProfiles), nil
}
