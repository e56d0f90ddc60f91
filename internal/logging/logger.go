package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger wraps the standard library logger with structured logging methods
type Logger struct {
	logger    *log.Logger
	component string
}

// New creates a new Logger instance writing to stdout
func New() *Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Logger writing to w
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		logger: log.New(w, "", log.LstdFlags),
	}
}

// Named returns a child logger that tags every line with a component name
func (l *Logger) Named(component string) *Logger {
	return &Logger{
		logger:    l.logger,
		component: component,
	}
}

// Info logs an informational message with structured key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log("INFO", msg, keysAndValues...)
}

// Warn logs a warning message with structured key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.log("WARN", msg, keysAndValues...)
}

// Error logs an error message with structured key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.log("ERROR", msg, keysAndValues...)
}

// log formats and outputs a log message with key-value pairs
// keysAndValues should be pairs like: "key1", value1, "key2", value2
func (l *Logger) log(level, msg string, keysAndValues ...interface{}) {
	// Start with level and message
	output := fmt.Sprintf("[%s] %s", level, msg)
	if l.component != "" {
		output = fmt.Sprintf("[%s] [%s] %s", level, l.component, msg)
	}

	// Add key-value pairs
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			key := keysAndValues[i]
			value := keysAndValues[i+1]
			output += fmt.Sprintf(" %v=%v", key, value)
		}
	}

	l.logger.Println(output)
}
