package app

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/quotes-api/app"

var tracer trace.Tracer = otel.Tracer(instrumentationName)

// quoteMetrics are the use-case level instruments. They report through the
// global meter provider, which is a no-op until telemetry is enabled.
type quoteMetrics struct {
	randomPicks   metric.Int64Counter
	randomRetries metric.Int64Counter
	randomMisses  metric.Int64Counter
	pagesServed   metric.Int64Counter
	quotesSeeded  metric.Int64Counter
}

func newQuoteMetrics() *quoteMetrics {
	meter := otel.Meter(instrumentationName)
	fallback := noop.Meter{}

	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			c, _ = fallback.Int64Counter(name)
		}
		return c
	}

	return &quoteMetrics{
		randomPicks:   counter("quotes.random.picks", "Random quotes returned"),
		randomRetries: counter("quotes.random.retries", "Random picks that landed on a vanished row"),
		randomMisses:  counter("quotes.random.misses", "Random picks that returned not found"),
		pagesServed:   counter("quotes.pages.served", "Quote pages returned"),
		quotesSeeded:  counter("quotes.import.inserted", "Quotes inserted by the importer"),
	}
}
