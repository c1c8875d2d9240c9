// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("mycomponent")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if logger.Component() != "mycomponent" {
		t.Errorf("expected component 'mycomponent', got %q", logger.Component())
	}

	logger.Info("hello")
	output := buf.String()
	if !strings.Contains(output, "component=mycomponent") {
		t.Errorf("expected output to contain component=mycomponent, got: %s", output)
	}
}

func TestWithCommandAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("cli").WithCommand("parse")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "component=cli") {
		t.Errorf("expected component=cli in output, got: %s", output)
	}
	if !strings.Contains(output, "command=parse") {
		t.Errorf("expected command=parse in output, got: %s", output)
	}
}

func TestWithSourceAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("cli").WithSource("urls.txt", 3)
	logger.Warn("rejected")

	output := buf.String()
	if !strings.Contains(output, "source=urls.txt") {
		t.Errorf("expected source=urls.txt in output, got: %s", output)
	}
	if !strings.Contains(output, "line=3") {
		t.Errorf("expected line=3 in output, got: %s", output)
	}
}

func TestWithFieldsAddsArbitraryFields(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("comp").WithFields("scheme", "http", "host", "example.com")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "scheme=http") {
		t.Errorf("expected scheme=http in output, got: %s", output)
	}
	if !strings.Contains(output, "host=example.com") {
		t.Errorf("expected host=example.com in output, got: %s", output)
	}
}

func TestChainingContexts(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("cli").WithCommand("check").WithSource("-", 7)
	logger.Info("chain test")

	output := buf.String()
	if !strings.Contains(output, "component=cli") {
		t.Errorf("expected component=cli, got: %s", output)
	}
	if !strings.Contains(output, "command=check") {
		t.Errorf("expected command=check, got: %s", output)
	}
	if !strings.Contains(output, "line=7") {
		t.Errorf("expected line=7, got: %s", output)
	}
	// Component should still be the original
	if logger.Component() != "cli" {
		t.Errorf("expected component 'cli', got %q", logger.Component())
	}
}

func TestComponentReturnsCorrectName(t *testing.T) {
	SetupLogger(false, false)

	logger := NewLogger("test-component")
	if logger.Component() != "test-component" {
		t.Errorf("expected 'test-component', got %q", logger.Component())
	}

	// Chaining should preserve the component name
	chained := logger.WithCommand("decompose").WithFields("nonterminal", "host")
	if chained.Component() != "test-component" {
		t.Errorf("expected 'test-component' after chaining, got %q", chained.Component())
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*ComponentLogger, string, ...any)
		level   string
	}{
		{"debug", (*ComponentLogger).Debug, "DEBUG"},
		{"info", (*ComponentLogger).Info, "INFO"},
		{"warn", (*ComponentLogger).Warn, "WARN"},
		{"error", (*ComponentLogger).Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerWithWriter(&buf, true, false) // debug=true to capture all levels

			logger := NewLogger("lvl-test")
			tt.logFunc(logger, "level test msg", "k", "v")

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected level %s in output, got: %s", tt.level, output)
			}
			if !strings.Contains(output, "level test msg") {
				t.Errorf("expected message in output, got: %s", output)
			}
		})
	}
}

func TestLogLevelsStructured(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, true) // structured JSON

	logger := NewLogger("json-test")
	logger.Info("structured msg", "count", 42)

	output := buf.String()
	if !strings.Contains(output, `"component":"json-test"`) {
		t.Errorf("expected component in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"msg":"structured msg"`) {
		t.Errorf("expected msg in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"count":42`) {
		t.Errorf("expected count in JSON output, got: %s", output)
	}
}
