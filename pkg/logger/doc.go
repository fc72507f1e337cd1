// Package logger builds configured log/slog loggers with functional options:
// output format (JSON or text), level, destination, static attributes, and
// environment presets for development and production.
package logger
