package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if !IsClassified(err) {
		return 1
	}
	switch GetCategory(err) {
	case CategoryValidation:
		return 2
	case CategoryLinks:
		return 3
	case CategoryConfig:
		return 7
	case CategoryInternal:
		return 10
	case CategoryFileSystem:
		return 11
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	classified, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return err.Error()
	}

	msg := classified.Message()
	if classified.Category() == CategoryInternal {
		msg = "internal error occurred (use -v for details)"
	} else if classified.Category() != CategoryConfig && classified.Category() != CategoryValidation {
		msg = fmt.Sprintf("%s: %s", classified.Category(), msg)
	}
	if detail := formatContext(classified.Context()); detail != "" {
		msg += "\n" + detail
	}
	return msg
}

// formatContext renders string-slice context values (e.g. validation problems) one per line.
func formatContext(ctx ErrorContext) string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		items, ok := ctx[k].([]string)
		if !ok {
			continue
		}
		for _, item := range items {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	return a.verbose || !IsClassified(err) || HasCategory(err, CategoryInternal)
}

func (a *CLIErrorAdapter) logError(err error) {
	if classified, ok := AsClassified(err); ok {
		attrs := []slog.Attr{slog.String("category", string(classified.Category()))}
		if cause := classified.Cause(); cause != nil {
			attrs = append(attrs, slog.String("cause", cause.Error()))
		}
		a.logger.LogAttrs(context.Background(), slogLevelFromSeverity(classified.Severity()), classified.Message(), attrs...)
		return
	}
	a.logger.Error("Unclassified error", "error", err)
}

func slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
