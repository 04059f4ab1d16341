package port

// Fields carries structured data attached to a log record.
type Fields map[string]interface{}

// LoggerPort keeps the core independent from a concrete logging backend.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	// Error logs a failure, usually together with the error value.
	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a logger that adds fields to every record (trace_id, use_case, ...).
	WithFields(fields Fields) LoggerPort
}
