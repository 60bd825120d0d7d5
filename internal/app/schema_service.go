package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// SchemaService runs the setup and cleanup maintenance commands.
type SchemaService struct {
	schema   ports.SchemaManager
	importer *QuoteImporter
	logger   *slog.Logger
}

// NewSchemaService creates a schema service. importer may be nil when no
// seeding is needed.
func NewSchemaService(schema ports.SchemaManager, importer *QuoteImporter, logger *slog.Logger) *SchemaService {
	if schema == nil {
		panic("app: schema manager is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SchemaService{
		schema:   schema,
		importer: importer,
		logger:   logger,
	}
}

// Setup creates the schema and, when seedPath is set, seeds it.
func (s *SchemaService) Setup(ctx context.Context, seedPath string) (ImportResult, error) {
	if err := s.schema.Setup(ctx); err != nil {
		return ImportResult{}, fmt.Errorf("setting up schema: %w", err)
	}

	s.logger.InfoContext(ctx, "schema ready")

	if seedPath == "" {
		return ImportResult{}, nil
	}

	if s.importer == nil {
		return ImportResult{}, fmt.Errorf("seeding %s: no importer configured", seedPath)
	}

	return s.importer.ImportFile(ctx, seedPath)
}

// Cleanup drops the schema and all quotes.
func (s *SchemaService) Cleanup(ctx context.Context) error {
	if err := s.schema.Cleanup(ctx); err != nil {
		return fmt.Errorf("cleaning up schema: %w", err)
	}

	s.logger.InfoContext(ctx, "schema removed")

	return nil
}
