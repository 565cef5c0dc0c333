package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"

	"foodbridge/internal/database"
	"foodbridge/internal/directory"
	"foodbridge/internal/logger"
)

type Config struct {
	InputFile      string // YAML or JSON directory; empty uses the built-in directory
	InputURL       string // remote directory document
	DatabaseType   string
	DatabaseURL    string
	MigrationsPath string
	ExportFile     string // write the resolved directory as YAML instead of seeding
	DryRun         bool
	Verbose        bool
}

func main() {
	config := parseFlags()

	if err := run(config); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.InputFile, "in", "", "Path to a YAML or JSON directory file (default: built-in directory)")
	flag.StringVar(&config.InputURL, "url", "", "URL of a YAML or JSON directory document")
	flag.StringVar(&config.DatabaseType, "db-type", envOr("DATABASE_TYPE", "sqlite"), "Database type: sqlite, mysql or postgres")
	flag.StringVar(&config.DatabaseURL, "db", envOr("DATABASE_URL", database.DefaultSQLitePath), "Database URL or SQLite file path")
	flag.StringVar(&config.MigrationsPath, "migrations", "migrations", "Path to migrations directory")
	flag.StringVar(&config.ExportFile, "export", "", "Write the resolved directory to this YAML file and exit")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Validate the directory without writing to the database")
	flag.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")

	flag.Parse()

	if config.InputFile != "" && config.InputURL != "" {
		log.Fatal("Use either -in or -url, not both")
	}

	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(config *Config) error {
	logger.WithDebug(config.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, err := resolveDirectory(ctx, config)
	if err != nil {
		return err
	}
	log.Printf("Directory: %d cities, %d NGOs, %d high-temperature cities",
		len(dir.Cities), len(dir.NGOs), len(dir.HighTemperature))

	if config.ExportFile != "" {
		data, err := directory.Marshal(dir)
		if err != nil {
			return fmt.Errorf("failed to encode directory: %w", err)
		}
		if err := os.WriteFile(config.ExportFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", config.ExportFile, err)
		}
		log.Printf("Directory written to %s", config.ExportFile)
		return nil
	}

	if config.DryRun {
		log.Println("Dry run: directory is valid, nothing written")
		return nil
	}

	return seed(ctx, config, dir)
}

func resolveDirectory(ctx context.Context, config *Config) (*directory.Directory, error) {
	switch {
	case config.InputFile != "":
		log.Printf("Reading directory from %s", config.InputFile)
		return directory.LoadFile(config.InputFile)
	case config.InputURL != "":
		return directory.NewFetcher(directory.FetchConfig{}).Fetch(ctx, config.InputURL)
	default:
		log.Println("Using built-in directory")
		return directory.Default(), nil
	}
}

func seed(ctx context.Context, config *Config, dir *directory.Directory) error {
	db, err := database.InitDB(config.DatabaseType, config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := database.MigrateWithPath(db, config.DatabaseType, config.MigrationsPath); err != nil {
		return err
	}

	total := len(dir.Cities) + len(dir.NGOs)
	bar := progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][1/1][reset] Seeding directory..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("rows"),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	store := directory.NewStore(db, config.DatabaseType)
	start := time.Now()
	if err := store.SaveWithProgress(ctx, dir, func() { bar.Add(1) }); err != nil {
		return fmt.Errorf("failed to seed directory: %w", err)
	}
	bar.Finish()

	log.Printf("Seeded %d rows in %s", total, time.Since(start).Round(time.Millisecond))
	return nil
}
