package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// user:password@tcp(host:port)/db as produced by the MySQL driver.
	mysqlDSNPattern = regexp.MustCompile(`^[^:@/\s]+:[^@\s]*@(tcp|unix)\(.*\)/.*$`)

	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)
)

// DefaultRedactOptions returns the masq options applied to every handler.
// Extend with project-specific field names when adding new secrets:
//
//	logging.NewReplaceAttr(masq.WithFieldName("signing_key"))
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("passwd"),
		masq.WithFieldName("Passwd"),
		masq.WithFieldName("dsn"),
		masq.WithFieldName("DSN"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("cookie"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(mysqlDSNPattern),
		masq.WithRegex(bearerPattern),
	}
}

// NewReplaceAttr returns a slog ReplaceAttr function that redacts values
// matched by DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}
