package directory

import (
	"context"
	"database/sql"
	"fmt"

	"foodbridge/internal/config"
	"foodbridge/internal/logger"
)

// Load resolves the directory from the source named in cfg. db is only
// used for the database source and may be nil otherwise.
func Load(ctx context.Context, cfg *config.Config, db *sql.DB) (*Directory, error) {
	var (
		d   *Directory
		err error
	)

	switch cfg.DirectorySource {
	case "", config.DirectoryBuiltin:
		d = Default()
	case config.DirectoryFile:
		if cfg.DirectoryPath == "" {
			return nil, fmt.Errorf("DIRECTORY_PATH is required for the file directory source")
		}
		d, err = LoadFile(cfg.DirectoryPath)
	case config.DirectoryURL:
		if cfg.DirectoryURL == "" {
			return nil, fmt.Errorf("DIRECTORY_URL is required for the url directory source")
		}
		d, err = NewFetcher(FetchConfig{Timeout: cfg.DirectoryFetchTimeout}).Fetch(ctx, cfg.DirectoryURL)
	case config.DirectoryDatabase:
		if db == nil {
			return nil, fmt.Errorf("database connection is required for the database directory source")
		}
		d, err = NewStore(db, cfg.DatabaseType).Load(ctx)
	default:
		return nil, fmt.Errorf("unsupported directory source: %s", cfg.DirectorySource)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("NGO directory loaded",
		"source", cfg.DirectorySource,
		"cities", len(d.Cities),
		"ngos", len(d.NGOs),
		"high_temperature_cities", len(d.HighTemperature),
	)
	return d, nil
}
