package slogext

import "log/slog"

// Err wraps an error as a log attribute under the "error" key.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}
