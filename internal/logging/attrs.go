package logging

// Common attribute keys so log lines stay greppable across components
const (
	FieldRequestID = "request_id"
	FieldProvider  = "provider"
	FieldQuery     = "query"
	FieldLatencyMS = "latency_ms"
	FieldMode      = "mode"
	FieldError     = "error"
	FieldCount     = "count"
)
