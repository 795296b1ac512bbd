// Package telemetry builds the structured logger and the Prometheus metrics
// used by the statespace command and the experiment runner.
//
// Logging goes through zerolog; NewLogger turns a LoggingConfig into a
// zerolog.Logger writing console or JSON lines to stdout, stderr or a file.
// Metrics live in a private registry so tests and embedders never collide with
// the global one; a disabled Metrics is a valid no-op.
package telemetry
