package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/config"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/logger"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/migration"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate [flags] <command> [args]

Commands:
  up              Apply all pending migrations
  down            Roll back all migrations
  step <n>        Apply n migrations (negative rolls back)
  version         Print the current migration version
  force <v>       Set the version without running migrations (recover from dirty state)

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	var (
		path     = flag.String("path", "migrations", "path to migration files")
		logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	log, err := logger.New(&logger.Config{
		Level:  *logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

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
		log.Fatal("Failed to connect to database",
			zap.String("host", cfg.Database.Host),
			zap.Int("port", cfg.Database.Port),
			zap.Error(err))
	}

	migrator, err := migration.New(db, *path, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() { _ = migrator.Close() }()

	if err := run(migrator, log, flag.Args()); err != nil {
		log.Fatal("Migration command failed", zap.Error(err))
	}
}

func run(migrator *migration.Migrator, log *zap.Logger, args []string) error {
	switch args[0] {
	case "up":
		return migrator.Up()

	case "down":
		return migrator.Down()

	case "step":
		if len(args) < 2 {
			return fmt.Errorf("step requires a count argument")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step count %q: %w", args[1], err)
		}
		return migrator.Steps(n)

	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil

	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force requires a version argument")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		if err := migrator.Force(v); err != nil {
			return err
		}
		log.Info("Forced migration version", zap.Int("version", v))
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
