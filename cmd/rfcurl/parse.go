package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jongio/rfcurl/cliout"
	"github.com/jongio/rfcurl/rfc1738"
	"github.com/jongio/rfcurl/urlutil"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse URL...",
		Short: "Decompose URLs into their RFC 1738 components",
		Long: `Decompose each URL into scheme, user, password, host, port, path and query.

Parsing stops at the first URL that violates the grammar.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := make([]*urlutil.URL, 0, len(args))
			for _, raw := range args {
				u, err := urlutil.Parse(raw)
				if err != nil {
					return describe(raw, err)
				}
				urls = append(urls, u)
			}

			var data interface{} = urls
			if len(urls) == 1 {
				data = urls[0]
			}
			return cliout.Print(data, func() {
				for _, u := range urls {
					printURL(u)
				}
			})
		},
	}
}

// describe turns a grammar violation into a message naming the failed production.
func describe(raw string, err error) error {
	var v *rfc1738.Violation
	if errors.As(err, &v) {
		return fmt.Errorf("%q is not a valid RFC 1738 URL: %s does not match %q", raw, v.Nonterminal, v.Input)
	}
	return fmt.Errorf("%q is not a valid RFC 1738 URL: %w", raw, err)
}

func printURL(u *urlutil.URL) {
	cliout.Header(u.AbsoluteString)
	cliout.Label("Scheme", u.Scheme)
	if u.Opaque != "" {
		cliout.Label("Opaque", u.Opaque)
	}
	cliout.Label("User", u.User)
	cliout.Label("Password", u.Password)
	cliout.Label("Host", u.Host)
	port := ""
	if u.Port != 0 {
		port = strconv.Itoa(u.Port)
	}
	cliout.Label("Port", port)
	cliout.Label("Path", u.Path())
	cliout.Label("Query", u.Query)
	cliout.Label("Path Components", strings.Join(quoteAll(u.PathComponents), " "))
	cliout.Label("Last Path Component", u.LastPathComponent)
	cliout.Label("File URL", strconv.FormatBool(u.IsFileURL))
}

func quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return quoted
}
