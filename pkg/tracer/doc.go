// Package tracer provides distributed tracing with OpenTelemetry. It
// wraps the TracerProvider behind a small API for creating spans,
// recording errors and tagging attributes, and optionally exports spans
// to an OTLP HTTP collector.
package tracer
