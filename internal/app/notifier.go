package app

import "log/slog"

// LogNotifier surfaces view notifications through the logger. A graphical
// front end would replace this with real toasts.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { slog.Info(msg, "notice", "success") }
func (LogNotifier) Info(msg string)    { slog.Info(msg, "notice", "info") }
func (LogNotifier) Warning(msg string) { slog.Warn(msg, "notice", "warning") }
func (LogNotifier) Error(msg string)   { slog.Error(msg, "notice", "error") }
