package mysqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// migrations returns the embedded migration files rooted at their directory.
func migrations() fs.FS {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		panic(fmt.Sprintf("mysqlstore: embedded migrations: %v", err))
	}

	return sub
}

func (s *Store) provider() (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectMySQL, s.db, migrations())
	if err != nil {
		return nil, fmt.Errorf("creating migration provider: %w", err)
	}

	return p, nil
}

// Setup implements ports.SchemaManager by applying every pending migration.
func (s *Store) Setup(ctx context.Context) error {
	p, err := s.provider()
	if err != nil {
		return err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	for _, r := range results {
		s.logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("took", r.Duration),
		)
	}

	return nil
}

// Cleanup implements ports.SchemaManager by rolling every migration back.
func (s *Store) Cleanup(ctx context.Context) error {
	p, err := s.provider()
	if err != nil {
		return err
	}

	results, err := p.DownTo(ctx, 0)
	if err != nil {
		return fmt.Errorf("rolling back migrations: %w", err)
	}

	for _, r := range results {
		s.logger.InfoContext(ctx, "migration rolled back",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
		)
	}

	return nil
}
