// Package logkey holds shared attribute keys so log lines stay greppable
// across packages.
package logkey

const (
	TraceID = "TRACE ID"
	ERROR   = "ERROR"
)
