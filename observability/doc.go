// Package observability wires OpenTelemetry tracing and metrics for restbase.
//
// Clients always create spans and record call metrics through the global
// OpenTelemetry providers (no-ops until configured). Setup installs OTLP/HTTP
// exporters so that data actually leaves the process; the restcall CLI calls
// it when observability is enabled in its configuration.
package observability
