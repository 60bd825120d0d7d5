package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

func reportSeeded(w io.Writer, result app.ImportResult) {
	if result.Inserted == 0 {
		fmt.Fprintln(w, "No quotes seeded into database.")
		return
	}
	fmt.Fprintf(w, "Number of quotes seeded = %d.\n", result.Inserted)
}

func reportAdded(w io.Writer, result app.ImportResult) {
	if result.Inserted == 0 {
		fmt.Fprintln(w, "No quotes added into database.")
		return
	}
	fmt.Fprintf(w, "Number of quotes added = %d.\n", result.Inserted)
}

func reportCleanedUp(w io.Writer) {
	fmt.Fprintln(w, "Database cleaned up.")
}

func reportQuoteNotFound(w io.Writer, id string) {
	fmt.Fprintf(w, "No quote found with ID = %s.\n", id)
}

// reportAbort prints err on one line. Multi-line errors, such as config
// validation output, are folded onto it.
func reportAbort(w io.Writer, err error) {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	fmt.Fprintf(w, "Error: Operation aborted - %s.\n", strings.TrimSuffix(msg, "."))
}

func printQuote(w io.Writer, q *domain.Quote) {
	fmt.Fprintf(w, "-- Quote ID = %s.\n", q.ID)
	fmt.Fprintf(w, "-- Ext Ref ID = %s.\n", q.ExternalRef)
	fmt.Fprintf(w, "-- Quote text = %s.\n", q.Content)
	fmt.Fprintf(w, "-- Quote source = %s.\n", q.Source)
	fmt.Fprintf(w, "-- Source URL = %s.\n", q.SourceURL)
	fmt.Fprintf(w, "-- Quote entry datetime = %s.\n", q.CreatedAt.Format(timestampLayout))
	fmt.Fprintf(w, "-- Quote last mod = %s.\n", q.ModifiedAt.Format(timestampLayout))
	fmt.Fprintf(w, "-- Quote = %s.\n", q.String())
}
