// Package mysqlstore implements the quote ports over a MySQL table.
//
// All SQL lives here. The *sql.DB pool provides connection reuse and
// concurrency; the store holds no lock of its own.
package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-api/internal/domain"
)

const (
	serviceName = "mysql"

	// MySQL server error numbers.
	errDupEntry     = 1062
	errNoSuchTable  = 1146
	errAccessDenied = 1045
)

const quoteColumns = `quote_id, ext_ref_id, quote_text, quote_source, quote_source_link,
	quote_entry_datetime, quote_last_modified_datetime`

// Queries. Offset fetches walk insertion order (id); range fetches walk the
// business order (entry time, source, id).
const (
	countQuery  = `SELECT COUNT(*) FROM quote_principal`
	offsetQuery = `SELECT ` + quoteColumns + ` FROM quote_principal ORDER BY id LIMIT ?, 1`
	rangeQuery  = `SELECT ` + quoteColumns + ` FROM quote_principal
	ORDER BY quote_entry_datetime, quote_source, id LIMIT ?, ?`
	keyQuery    = `SELECT ` + quoteColumns + ` FROM quote_principal WHERE quote_id = ?`
	insertQuery = `INSERT INTO quote_principal (quote_id, ext_ref_id, quote_text, quote_source, quote_source_link)
	VALUES ('', ?, ?, ?, ?)`
)

// Config holds MySQL connection settings.
type Config struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string

	// Pooling keeps idle connections around; false closes them after use.
	Pooling         bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
	DialTimeout     time.Duration
}

// DSN renders the go-sql-driver data source name.
func (c *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Database
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Timeout = c.DialTimeout
	mc.Params = map[string]string{"charset": "utf8mb4"}

	return mc.FormatDSN()
}

// Store is the MySQL implementation of ports.QuoteStore, ports.QuoteWriter,
// ports.SchemaManager, and ports.HealthChecker.
type Store struct {
	db      *sql.DB
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *storeMetrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegisterer registers the store's Prometheus collectors on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Store) {
		s.metrics = newStoreMetrics(reg)
	}
}

// New wraps an existing pool.
func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:     db,
		logger: slog.Default(),
		tracer: otel.Tracer("github.com/jsamuelsen/quotes-api/mysqlstore"),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		s.metrics = newStoreMetrics(nil)
	}

	return s
}

// Open connects to MySQL, configures the pool, and pings the server.
func Open(ctx context.Context, cfg *Config, opts ...Option) (*Store, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	if cfg.Pooling {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	} else {
		db.SetMaxIdleConns(0)
	}
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, domain.NewUnavailableError(serviceName, "ping failed: "+err.Error())
	}

	return New(db, opts...), nil
}

// Close closes the pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return serviceName
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return s.mapError("ping", err)
	}

	return nil
}

// Count implements ports.QuoteStore.
func (s *Store) Count(ctx context.Context) (total uint64, err error) {
	ctx, done := s.observe(ctx, "count")
	defer func() { done(err) }()

	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return 0, s.mapError("count", err)
	}

	return total, nil
}

// FetchAtOffset implements ports.QuoteStore.
func (s *Store) FetchAtOffset(ctx context.Context, offset uint64) (q *domain.Quote, err error) {
	ctx, done := s.observe(ctx, "fetch_at_offset")
	defer func() { done(err) }()

	q, err = scanQuote(s.db.QueryRowContext(ctx, offsetQuery, offset))
	if err != nil {
		return nil, s.mapError("fetch at offset", err)
	}

	return q, nil
}

// FetchRange implements ports.QuoteStore.
func (s *Store) FetchRange(ctx context.Context, startRow, endRow uint64) (quotes []domain.Quote, err error) {
	if startRow < 1 {
		return nil, domain.NewValidationErrorWithValue("start row", "must be at least 1", startRow)
	}

	if endRow < startRow {
		return nil, domain.NewValidationErrorWithValue("end row", "must not precede start row", endRow)
	}

	ctx, done := s.observe(ctx, "fetch_range")
	defer func() { done(err) }()

	rows, err := s.db.QueryContext(ctx, rangeQuery, startRow-1, endRow-startRow+1)
	if err != nil {
		return nil, s.mapError("fetch range", err)
	}
	defer rows.Close()

	quotes = make([]domain.Quote, 0, min(endRow-startRow+1, uint64(domain.MaxPageSize)))

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, s.mapError("fetch range", err)
		}

		quotes = append(quotes, *q)
	}

	if err := rows.Err(); err != nil {
		return nil, s.mapError("fetch range", err)
	}

	return quotes, nil
}

// FindByKey implements ports.QuoteStore.
func (s *Store) FindByKey(ctx context.Context, id string) (q *domain.Quote, err error) {
	ctx, done := s.observe(ctx, "find_by_key")
	defer func() { done(err) }()

	q, err = scanQuote(s.db.QueryRowContext(ctx, keyQuery, id))
	if err != nil {
		return nil, s.mapError("find by key", err)
	}

	return q, nil
}

// Insert implements ports.QuoteWriter. The trigger fills quote_id and the
// entry time.
func (s *Store) Insert(ctx context.Context, q domain.Quote) (err error) {
	if err := q.Validate(); err != nil {
		return err
	}

	ctx, done := s.observe(ctx, "insert")
	defer func() { done(err) }()

	if _, err := s.db.ExecContext(ctx, insertQuery, q.ExternalRef, q.Content, q.Source, q.SourceURL); err != nil {
		return s.mapError("insert", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanQuote reads one row. sql.ErrNoRows yields (nil, nil).
func scanQuote(row rowScanner) (*domain.Quote, error) {
	var (
		q         domain.Quote
		extRef    sql.NullString
		sourceURL sql.NullString
	)

	err := row.Scan(&q.ID, &extRef, &q.Content, &q.Source, &sourceURL, &q.CreatedAt, &q.ModifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	q.ExternalRef = extRef.String
	q.SourceURL = sourceURL.String

	return &q, nil
}

// mapError converts driver errors to domain errors. Context errors pass
// through unchanged.
func (s *Store) mapError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errDupEntry:
			return domain.NewConflictError("quote", "duplicate quote id")
		case errNoSuchTable:
			return domain.NewUnavailableError(serviceName, "quote table missing, run setup")
		case errAccessDenied:
			return domain.NewUnavailableError(serviceName, "access denied")
		}
	}

	return domain.NewUnavailableError(serviceName, op+": "+err.Error())
}

// observe starts a span and returns a func that records the outcome.
func (s *Store) observe(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := s.tracer.Start(ctx, "mysql."+op, trace.WithAttributes(
		attribute.String("db.system", "mysql"),
		attribute.String("db.operation", op),
	))
	start := time.Now()

	return ctx, func(err error) {
		s.metrics.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())

		if err != nil {
			s.metrics.errors.WithLabelValues(op).Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.DebugContext(ctx, "store operation failed",
				slog.String("op", op),
				slog.Any("error", err),
			)
		}

		span.End()
	}
}
