package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jongio/rfcurl/cliout"
	"github.com/jongio/rfcurl/logutil"
	"github.com/jongio/rfcurl/rfc1738"
	"github.com/jongio/rfcurl/urlutil"
	"github.com/spf13/cobra"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

type checkOptions struct {
	httpsOnly   bool
	maxLength   int
	metricsFile string
}

// checkResult is the outcome for one input line.
type checkResult struct {
	Line        int    `json:"line" yaml:"line"`
	URL         string `json:"url" yaml:"url"`
	Valid       bool   `json:"valid" yaml:"valid"`
	Nonterminal string `json:"nonterminal,omitempty" yaml:"nonterminal,omitempty"`
	Fragment    string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// checkReport is the full output of a check run.
type checkReport struct {
	Source  string        `json:"source" yaml:"source"`
	Results []checkResult `json:"results" yaml:"results"`
	Valid   int           `json:"valid" yaml:"valid"`
	Invalid int           `json:"invalid" yaml:"invalid"`
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [FILE|-]",
		Short: "Validate a list of URLs, one per line",
		Long: `Validate every URL in FILE (or stdin when FILE is omitted or "-").

Blank lines and lines starting with "#" are skipped. The command fails if any
URL is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return runCheck(source, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.httpsOnly, "https-only", false, "Require https:// (http:// allowed for localhost)")
	cmd.Flags().IntVar(&opts.maxLength, "max-length", urlutil.MaxURLLength, "Maximum URL length in characters")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after checking")

	return cmd
}

func runCheck(source string, opts *checkOptions) error {
	log := logutil.NewLogger("cli").WithCommand("check")

	r, closeFn, err := openSource(source)
	if err != nil {
		return err
	}
	defer closeFn()

	report, err := checkAll(r, source, opts, log)
	if err != nil {
		return err
	}

	if opts.metricsFile != "" {
		if err := urlutil.WriteMetrics(opts.metricsFile); err != nil {
			return err
		}
		log.Debug("metrics written", "path", opts.metricsFile)
	}

	if err := cliout.Print(report, func() { printReport(report) }); err != nil {
		return err
	}

	if report.Invalid > 0 {
		return fmt.Errorf("%d of %d URLs are invalid", report.Invalid, report.Valid+report.Invalid)
	}
	return nil
}

func openSource(source string) (io.Reader, func(), error) {
	if source == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", source, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func checkAll(r io.Reader, source string, opts *checkOptions, log *logutil.ComponentLogger) (*checkReport, error) {
	report := &checkReport{Source: source, Results: []checkResult{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		result := checkResult{Line: line, URL: raw, Valid: true}
		if err := checkURL(raw, opts); err != nil {
			result.Valid = false
			result.Error = err.Error()
			var v *rfc1738.Violation
			if errors.As(err, &v) {
				result.Nonterminal = string(v.Nonterminal)
				result.Fragment = v.Input
			}
			log.WithSource(source, line).Debug("url rejected", "url", raw, "error", err)
			report.Invalid++
		} else {
			report.Valid++
		}
		report.Results = append(report.Results, result)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return report, nil
}

// checkURL applies the length limit and then either the HTTPS policy or the
// bare grammar.
func checkURL(raw string, opts *checkOptions) error {
	if opts.httpsOnly {
		return urlutil.ValidateHTTPSOnlyWithLimit(raw, opts.maxLength)
	}
	if opts.maxLength > 0 && len(raw) > opts.maxLength {
		return fmt.Errorf("url exceeds maximum length of %d characters", opts.maxLength)
	}
	_, err := urlutil.Parse(raw)
	return err
}

func printReport(report *checkReport) {
	for _, r := range report.Results {
		if r.Valid {
			cliout.Success("%s", r.URL)
			continue
		}
		cliout.Error("%s", r.URL)
		cliout.Detail("line %d: %s", r.Line, r.Error)
	}
	cliout.Newline()
	cliout.Info("%s valid, %s invalid", cliout.Count(report.Valid), cliout.Count(report.Invalid))
}
