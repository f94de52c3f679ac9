package main

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/gaolamthuy/backend/internal/infrastructure/config"
	"github.com/gaolamthuy/backend/internal/infrastructure/logger"
	"github.com/gaolamthuy/backend/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "migrations"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	command := os.Args[1]

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	// create works without a database connection
	if command == "create" {
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: migrate create <name>")
			os.Exit(1)
		}
		mf, err := migration.CreateMigration(defaultMigrationsDir, os.Args[2])
		if err != nil {
			log.Fatal("Failed to create migration", zap.Error(err))
		}
		log.Info("Migration files created",
			zap.String("up", mf.UpPath),
			zap.String("down", mf.DownPath),
		)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := migration.New(db, defaultMigrationsDir, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "steps":
		n, parseErr := intArg(2)
		if parseErr != nil {
			log.Fatal("Invalid step count", zap.Error(parseErr))
		}
		err = migrator.Steps(n)
	case "goto":
		v, parseErr := intArg(2)
		if parseErr != nil || v < 0 {
			log.Fatal("Invalid target version")
		}
		err = migrator.GoTo(uint(v))
	case "force":
		v, parseErr := intArg(2)
		if parseErr != nil {
			log.Fatal("Invalid version", zap.Error(parseErr))
		}
		err = migrator.Force(v)
	case "version":
		version, dirty, vErr := migrator.Version()
		if vErr != nil {
			log.Fatal("Failed to get version", zap.Error(vErr))
		}
		log.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
	case "drop":
		err = migrator.Drop()
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatal("Migration command failed", zap.Error(err))
	}
}

func intArg(index int) (int, error) {
	if len(os.Args) <= index {
		return 0, fmt.Errorf("missing argument")
	}
	return strconv.Atoi(os.Args[index])
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up              apply all pending migrations
  down            roll back all migrations
  steps <n>       apply n migrations (negative rolls back)
  goto <version>  migrate to a specific version
  force <version> set version without running migrations
  version         print the current version
  create <name>   create a new up/down migration pair
  drop            drop all database objects (destroys data)

Database connection comes from config.toml or GLT_-prefixed
environment variables (e.g. GLT_DATABASE_HOST, GLT_DATABASE_PASSWORD).`)
}
