package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath = "config_path"
	KeyPath       = "path"
	KeyTitle      = "title"
	KeyFormat     = "format"
	KeyOutput     = "output"
	KeyLink       = "link"
	KeySource     = "source"
	KeyPolicy     = "policy"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Output(o string) slog.Attr       { return slog.String(KeyOutput, o) }
func Link(l string) slog.Attr         { return slog.String(KeyLink, l) }
func Source(s string) slog.Attr       { return slog.String(KeySource, s) }
func Policy(p string) slog.Attr       { return slog.String(KeyPolicy, p) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
