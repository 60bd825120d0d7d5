//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/jsamuelsen/quotes-api/internal/adapters/http"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/platform/random"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

// memoryStore is an in-process ports.QuoteStore and ports.QuoteWriter that
// keeps the two orderings the MySQL adapter uses.
type memoryStore struct {
	mu     sync.RWMutex
	quotes []domain.Quote
	down   bool
	clock  time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memoryStore) Name() string { return "memory" }

func (m *memoryStore) Check(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.down {
		return domain.NewUnavailableError("memory", "store offline")
	}
	return nil
}

func (m *memoryStore) setDown(down bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.down = down
}

func (m *memoryStore) Insert(_ context.Context, q domain.Quote) error {
	if err := q.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.clock = m.clock.Add(time.Second)
	q.ID = strconv.Itoa(1000 + len(m.quotes))
	q.CreatedAt, q.ModifiedAt = m.clock, m.clock
	m.quotes = append(m.quotes, q)

	return nil
}

func (m *memoryStore) Count(context.Context) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.down {
		return 0, domain.NewUnavailableError("memory", "store offline")
	}
	return uint64(len(m.quotes)), nil
}

func (m *memoryStore) FetchAtOffset(_ context.Context, offset uint64) (*domain.Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.down {
		return nil, domain.NewUnavailableError("memory", "store offline")
	}
	if offset >= uint64(len(m.quotes)) {
		return nil, nil
	}

	q := m.quotes[offset]
	return &q, nil
}

func (m *memoryStore) FetchRange(_ context.Context, startRow, endRow uint64) ([]domain.Quote, error) {
	if startRow < 1 || endRow < startRow {
		return nil, domain.NewValidationError("rows", "invalid range")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.down {
		return nil, domain.NewUnavailableError("memory", "store offline")
	}

	ordered := slices.Clone(m.quotes)
	slices.SortStableFunc(ordered, func(a, b domain.Quote) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Source, b.Source)
	})

	if startRow > uint64(len(ordered)) {
		return []domain.Quote{}, nil
	}
	end := min(endRow, uint64(len(ordered)))

	return ordered[startRow-1 : end], nil
}

func (m *memoryStore) FindByKey(_ context.Context, id string) (*domain.Quote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.down {
		return nil, domain.NewUnavailableError("memory", "store offline")
	}
	for _, q := range m.quotes {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, nil
}

// seed inserts n quotes through the importer, the same path the add
// command takes.
func (m *memoryStore) seed(ctx context.Context, n int) (app.ImportResult, error) {
	inputs := make([]app.QuoteInput, n)
	for i := range inputs {
		inputs[i] = app.QuoteInput{
			RefID:     "ref-" + strconv.Itoa(i),
			Content:   "Quote number " + strconv.Itoa(i),
			Source:    "Author " + strconv.Itoa(i%4),
			SourceURL: "https://example.com/quotes/" + strconv.Itoa(i),
		}
	}

	return app.NewQuoteImporter(app.QuoteImporterConfig{
		Writer: m,
		Logger: discardLogger(),
	}).InsertAll(ctx, inputs)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newStack serves the full router over store.
func newStack(store *memoryStore) *httptest.Server {
	gin.SetMode(gin.TestMode)

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  store,
		Random: random.NewPCG(7, 11),
		Logger: discardLogger(),
	})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		panic(err)
	}

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:        discardLogger(),
		ServiceName:   "quotes-api",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", ""), prometheus.NewRegistry()),
		QuoteHandler:  handlers.NewQuoteHandler(quotes, domain.DefaultPageSize),
		Timeout:       2 * time.Second,
	})

	return httptest.NewServer(engine)
}
