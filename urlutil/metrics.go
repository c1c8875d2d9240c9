package urlutil

import (
	"errors"

	"github.com/jongio/rfcurl/rfc1738"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parse results recorded in rfcurl_parse_total.
const (
	resultValid   = "valid"
	resultInvalid = "invalid"
)

var (
	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfcurl_parse_total",
			Help: "Total number of URLs parsed, by result",
		},
		[]string{"result"},
	)

	grammarViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfcurl_grammar_violations_total",
			Help: "Total number of rejected URLs, by the grammar production that failed",
		},
		[]string{"nonterminal"},
	)
)

// recordParse records metrics for a Parse result.
func recordParse(err error) {
	if err == nil {
		parseTotal.WithLabelValues(resultValid).Inc()
		return
	}
	parseTotal.WithLabelValues(resultInvalid).Inc()

	nonterminal := "unknown"
	var v *rfc1738.Violation
	if errors.As(err, &v) {
		nonterminal = string(v.Nonterminal)
	}
	grammarViolations.WithLabelValues(nonterminal).Inc()
}

// WriteMetrics writes every metric of the default registry to path in the
// Prometheus text exposition format, suitable for the node exporter textfile
// collector. The file is replaced atomically.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
