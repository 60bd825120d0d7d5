// Command quotes serves the random quote API and runs its maintenance
// commands against the MySQL store.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
)

// Build-time variables, injected via ldflags:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// cli holds the parsed command line.
type cli struct {
	app *kingpin.Application
	out io.Writer

	profile string
	seed    string
	quoteID string
	addFile string

	apiCmd     *kingpin.CmdClause
	setupCmd   *kingpin.CmdClause
	cleanupCmd *kingpin.CmdClause
	quoteCmd   *kingpin.CmdClause
	addCmd     *kingpin.CmdClause
}

func newCLI(out io.Writer) *cli {
	c := &cli{
		app: kingpin.New("quotes", "Random quote API and database maintenance.").
			Version(fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)),
		out: out,
	}
	c.app.HelpFlag.Short('h')

	c.app.Flag("profile", "Configuration profile loaded from configs/{profile}.yaml.").
		Envar("APP_ENVIRONMENT").Default("local").StringVar(&c.profile)

	c.apiCmd = c.app.Command("api", "Serve the HTTP API.").Default()

	c.setupCmd = c.app.Command("setup", "Create the quote schema.")
	c.setupCmd.Flag("seed", "JSON file of quotes to seed after setup.").
		PlaceHolder("FILE").ExistingFileVar(&c.seed)

	c.cleanupCmd = c.app.Command("cleanup", "Drop the quote schema and every stored quote.")

	c.quoteCmd = c.app.Command("quote", "Print one quote.").Alias("qid")
	c.quoteCmd.Arg("id", "Quote ID.").Required().StringVar(&c.quoteID)

	c.addCmd = c.app.Command("add", "Insert quotes from a JSON file.")
	c.addCmd.Arg("file", "JSON file of quotes.").Required().ExistingFileVar(&c.addFile)

	return c
}

func main() {
	c := newCLI(os.Stdout)
	command := kingpin.MustParse(c.app.Parse(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := c.dispatch(ctx, command); err != nil {
		reportAbort(c.out, err)
		stop()
		os.Exit(1)
	}
}

func (c *cli) dispatch(ctx context.Context, command string) error {
	rt, err := bootstrap(ctx, c.profile)
	if err != nil {
		return err
	}
	defer rt.close(context.WithoutCancel(ctx))

	switch command {
	case c.setupCmd.FullCommand():
		return c.runSetup(ctx, rt)
	case c.cleanupCmd.FullCommand():
		return c.runCleanup(ctx, rt)
	case c.quoteCmd.FullCommand():
		return c.runQuote(ctx, rt)
	case c.addCmd.FullCommand():
		return c.runAdd(ctx, rt)
	default:
		return c.runAPI(ctx, rt)
	}
}
