package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = "->"
)

var (
	// mu protects global state variables
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = !detectColorSupport()
)

// supportsUnicode detects if the terminal supports Unicode
var supportsUnicode = detectUnicodeSupport()

// detectColorSupport reports whether stdout is a terminal that accepts ANSI colors.
func detectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code and PowerShell render Unicode; legacy CMD does not.
	return os.Getenv("WT_SESSION") != "" ||
		os.Getenv("TERM_PROGRAM") == "vscode" ||
		os.Getenv("PSModulePath") != "" ||
		os.Getenv("TERM") != ""
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ColorEnabled reports whether output is colored.
func ColorEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return !noColor
}

// paint wraps text in color unless colors are disabled.
func paint(color, text string) string {
	if !ColorEnabled() {
		return text
	}
	return color + text + Reset
}

// getIcon returns the appropriate icon based on Unicode support
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch format {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	case "yaml":
		f = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsStructured returns true if the output format is JSON or YAML.
func IsStructured() bool {
	f := GetFormat()
	return f == FormatJSON || f == FormatYAML
}

// PrintJSON prints data as JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML to stdout.
func PrintYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON and YAML formats, marshals the data object.
func Print(data interface{}, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Printf("\n%s\n", paint(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", paint(BrightGreen, getIcon(SymbolCheck, ASCIICheck)), msg)
}

// Error prints an error message with red X
func Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s %s\n", paint(BrightRed, getIcon(SymbolCross, ASCIICross)), msg)
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s  %s\n", paint(BrightYellow, getIcon(SymbolWarning, ASCIIWarning)), msg)
}

// Info prints an info message with blue info icon
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("%s  %s\n", paint(BrightBlue, getIcon(SymbolInfo, ASCIIInfo)), msg)
}

// Item prints an indented item
func Item(format string, args ...interface{}) {
	fmt.Printf("   %s\n", fmt.Sprintf(format, args...))
}

// Detail prints an indented, dimmed continuation line such as a diagnosis.
func Detail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Printf("   %s %s\n", paint(Gray, getIcon(SymbolArrow, ASCIIArrow)), paint(Gray, msg))
}

// Newline prints a blank line
func Newline() {
	fmt.Println()
}

// Label prints a label-value pair. Empty values are shown as a dimmed "(none)".
func Label(label, value string) {
	if value == "" {
		value = paint(Dim, "(none)")
	}
	fmt.Printf("  %s %s\n", paint(Cyan, fmt.Sprintf("%-20s", label+":")), value)
}

// Count formats a number for display
func Count(n int) string {
	return paint(Bold, fmt.Sprintf("%d", n))
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	fmt.Print("   ")
	for _, header := range headers {
		fmt.Print(paint(Bold, fmt.Sprintf("%-*s", widths[header], header)) + "  ")
	}
	fmt.Println()

	fmt.Print("   ")
	for _, header := range headers {
		fmt.Print(strings.Repeat("─", widths[header]) + "  ")
	}
	fmt.Println()

	for _, row := range rows {
		fmt.Print("   ")
		for _, header := range headers {
			fmt.Printf("%-*s  ", widths[header], row[header])
		}
		fmt.Println()
	}
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
