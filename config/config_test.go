// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/rfcurl/testutil"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
output: json
debug: true
structuredLogs: true
noColor: true
httpsOnly: true
maxLength: 512
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Output:         "json",
		Debug:          true,
		StructuredLogs: true,
		NoColor:        true,
		HTTPSOnly:      true,
		MaxLength:      512,
	}, cfg)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"unknown key", "colour: true\n", "colour"},
		{"bad output", "output: xml\n", "output must be one of"},
		{"negative length", "maxLength: -1\n", "maxLength must not be negative"},
		{"wrong type", "debug: maybe\n", "cannot unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "custom.yaml", "output: yaml\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoad_ExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}

func TestLoad_EnvPath(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "env.yaml", "httpsOnly: true\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.HTTPSOnly)
}

func TestLoad_DefaultMissing(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_DefaultFile(t *testing.T) {
	t.Setenv(EnvConfig, "")
	dir := t.TempDir()
	testutil.WriteFile(t, dir, DefaultFileName, "maxLength: 100\n")
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.MaxLength)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "bad.yaml", "output: [json\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("output", "o", "default", "")
	fs.Bool("debug", false, "")
	fs.Bool("https-only", false, "")
	fs.Int("max-length", 0, "")
	return fs
}

func TestApplyToFlags(t *testing.T) {
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--output", "yaml"}))

	cfg := &Config{Output: "json", Debug: true, HTTPSOnly: true, MaxLength: 64, NoColor: true}
	require.NoError(t, cfg.ApplyToFlags(fs))

	output, _ := fs.GetString("output")
	debug, _ := fs.GetBool("debug")
	httpsOnly, _ := fs.GetBool("https-only")
	maxLength, _ := fs.GetInt("max-length")

	assert.Equal(t, "yaml", output, "explicit flags win over config")
	assert.True(t, debug)
	assert.True(t, httpsOnly)
	assert.Equal(t, 64, maxLength)
	assert.Nil(t, fs.Lookup("no-color"), "undefined flags are skipped")
}

func TestApplyToFlags_Empty(t *testing.T) {
	fs := newFlags()
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, (&Config{}).ApplyToFlags(fs))

	output, _ := fs.GetString("output")
	assert.Equal(t, "default", output)
	assert.False(t, fs.Changed("debug"))
}
