package si5351

// Logger is an optional logging interface that can be provided to a Config.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	cfg := si5351.New(si5351.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

// logDebug logs a debug message if a logger is configured.
func (c *Config) logDebug(msg string, keysAndValues ...interface{}) {
	if c.Logger != nil {
		c.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (c *Config) logInfo(msg string, keysAndValues ...interface{}) {
	if c.Logger != nil {
		c.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (c *Config) logError(msg string, keysAndValues ...interface{}) {
	if c.Logger != nil {
		c.Logger.Error(msg, keysAndValues...)
	}
}
