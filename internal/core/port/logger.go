package port

// Fields carries structured data into a log entry.
type Fields map[string]interface{}

// LoggerPort abstracts the application core from the logging implementation.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields returns a logger with the given fields already attached,
	// used to add context such as a trace id or component name.
	WithFields(fields Fields) LoggerPort
}
