package urlutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordParse(t *testing.T) {
	valid := testutil.ToFloat64(parseTotal.WithLabelValues(resultValid))
	invalid := testutil.ToFloat64(parseTotal.WithLabelValues(resultInvalid))
	hostErrors := testutil.ToFloat64(grammarViolations.WithLabelValues("host"))

	_, err := Parse("http://example.com/")
	require.NoError(t, err)
	_, err = Parse("http://exa_mple.com/")
	require.Error(t, err)

	assert.Equal(t, valid+1, testutil.ToFloat64(parseTotal.WithLabelValues(resultValid)))
	assert.Equal(t, invalid+1, testutil.ToFloat64(parseTotal.WithLabelValues(resultInvalid)))
	assert.Equal(t, hostErrors+1, testutil.ToFloat64(grammarViolations.WithLabelValues("host")))
}

func TestWriteMetrics(t *testing.T) {
	_, _ = Parse("http://example.com/")
	_, _ = Parse("HTTP://example.com/")

	path := filepath.Join(t.TempDir(), "rfcurl.prom")
	require.NoError(t, WriteMetrics(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `rfcurl_parse_total{result="valid"}`), text)
	assert.True(t, strings.Contains(text, `rfcurl_grammar_violations_total{nonterminal="scheme"}`), text)
}
