package logger

import (
	"time"
)

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldCallID    = "call_id"
	FieldEndpoint  = "endpoint"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Debug("resolved", logger.Fields("endpoint", "get_user", "url", u))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(endpoint string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldEndpoint: endpoint,
		FieldError:    err.Error(),
	}
}

// DurationFields creates fields for a timed call.
func DurationFields(endpoint string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldEndpoint: endpoint,
		FieldDuration: d.Milliseconds(),
	}
}

// MergeWithError adds an error field to an existing map.
func MergeWithError(fields map[string]interface{}, err error) map[string]interface{} {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields[FieldError] = err.Error()
	return fields
}
