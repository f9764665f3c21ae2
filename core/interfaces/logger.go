package interfaces

// Logger defines the interface for logging throughout the module.
// This abstraction allows for different logging implementations while
// maintaining a consistent interface.
//
// Remote-supplied strings (URLs, channel terms) must be sanitized before
// being passed as field values; see pkg/textutil.SanitizeForLog.
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// All soft failures of the feed core are reported at this level.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
