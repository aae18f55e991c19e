// Package logging provides config-driven categorized file-based logging for battletext.
// Logs are written to the configured logs directory with one file per category.
// Logging is controlled by debug_mode in the config file - when false, no logs are written.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config loading
	CategoryProtocol  Category = "protocol"  // Line tokenizing and decoding
	CategoryTemplates Category = "templates" // Template store loading and resolution
	CategoryRender    Category = "render"    // Narrative rendering
	CategoryFollow    Category = "follow"    // Live log following
	CategoryCLI       Category = "cli"       // Command handlers
)

// Settings mirrors the relevant parts of config.LoggingConfig
// to avoid circular imports
type Settings struct {
	DebugMode  bool
	Level      string
	JSONFormat bool
	Categories map[string]bool
}

// StructuredLogEntry represents a JSON log entry
type StructuredLogEntry struct {
	Timestamp int64                  `json:"ts"`
	Category  string                 `json:"cat"`
	Level     string                 `json:"lvl"`
	Message   string                 `json:"msg"`
	RequestID string                 `json:"req,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Logger wraps a standard logger with category and file output
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	settings  Settings
	configMu  sync.RWMutex
	logLevel  int // 0=debug, 1=info, 2=warn, 3=error
)

// Log levels
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Initialize sets up the logging directory and applies settings.
// Should be called once at startup. With debug mode off it is a no-op.
func Initialize(dir string, s Settings) error {
	CloseAll()

	configMu.Lock()
	settings = s
	logLevel = parseLevel(s.Level)
	logsDir = ""
	configMu.Unlock()

	if !s.DebugMode {
		return nil
	}
	if dir == "" {
		return fmt.Errorf("logs directory required in debug mode")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	configMu.Lock()
	logsDir = dir
	configMu.Unlock()

	boot := Get(CategoryBoot)
	boot.Info("=== battletext logging initialized ===")
	boot.Info("Logs directory: %s", dir)
	boot.Info("Log level: %s", s.Level)
	if len(s.Categories) == 0 {
		boot.Info("All categories enabled (no category filter)")
	}
	return nil
}

func parseLevel(level string) int {
	switch level {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return settings.DebugMode
}

func currentLogsDir() string {
	configMu.RLock()
	defer configMu.RUnlock()
	return logsDir
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	configMu.RLock()
	defer configMu.RUnlock()

	if !settings.DebugMode {
		return false
	}
	if settings.Categories == nil {
		return true
	}
	enabled, exists := settings.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *Logger {
	dir := currentLogsDir()
	if !IsCategoryEnabled(category) || dir == "" {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

func isJSON() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return settings.JSONFormat
}

func (l *Logger) write(level string, requestID string, msg string, fields map[string]interface{}) {
	if isJSON() {
		entry := StructuredLogEntry{
			Timestamp: time.Now().UnixMilli(),
			Category:  string(l.category),
			Level:     level,
			Message:   msg,
			RequestID: requestID,
			Fields:    fields,
		}
		if data, err := json.Marshal(entry); err == nil {
			l.logger.Printf("%s", data)
			return
		}
	}
	prefix := ""
	if requestID != "" {
		prefix = "[req:" + requestID + "] "
	}
	if len(fields) > 0 {
		l.logger.Printf("[%s] %s%s | %v", level, prefix, msg, fields)
		return
	}
	l.logger.Printf("[%s] %s%s", level, prefix, msg)
}

func (l *Logger) enabled(level int) bool {
	if l.logger == nil {
		return false
	}
	configMu.RLock()
	defer configMu.RUnlock()
	return logLevel <= level
}

// Debug logs a debug message (only if level <= debug)
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.enabled(LevelDebug) {
		return
	}
	l.write("DEBUG", "", fmt.Sprintf(format, args...), nil)
}

// Info logs an informational message (only if level <= info)
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.enabled(LevelInfo) {
		return
	}
	l.write("INFO", "", fmt.Sprintf(format, args...), nil)
}

// Warn logs a warning message (only if level <= warn)
func (l *Logger) Warn(format string, args ...interface{}) {
	if !l.enabled(LevelWarn) {
		return
	}
	l.write("WARN", "", fmt.Sprintf(format, args...), nil)
}

// Error logs an error message (always logged if logger exists)
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.write("ERROR", "", fmt.Sprintf(format, args...), nil)
}

// CloseAll closes all open log files (call at shutdown)
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// =============================================================================
// REQUEST ID TRACING
// =============================================================================

// RequestLogger provides request-scoped logging with a correlation ID
type RequestLogger struct {
	logger    *Logger
	requestID string
	fields    map[string]interface{}
}

// WithRequestID creates a request-scoped logger, e.g. one per renderer run
func WithRequestID(category Category, requestID string) *RequestLogger {
	return &RequestLogger{
		logger:    Get(category),
		requestID: requestID,
		fields:    make(map[string]interface{}),
	}
}

// WithField adds a field to the request logger
func (r *RequestLogger) WithField(key string, value interface{}) *RequestLogger {
	r.fields[key] = value
	return r
}

func (r *RequestLogger) Debug(format string, args ...interface{}) {
	if !r.logger.enabled(LevelDebug) {
		return
	}
	r.logger.write("DEBUG", r.requestID, fmt.Sprintf(format, args...), r.fields)
}

func (r *RequestLogger) Info(format string, args ...interface{}) {
	if !r.logger.enabled(LevelInfo) {
		return
	}
	r.logger.write("INFO", r.requestID, fmt.Sprintf(format, args...), r.fields)
}

func (r *RequestLogger) Warn(format string, args ...interface{}) {
	if !r.logger.enabled(LevelWarn) {
		return
	}
	r.logger.write("WARN", r.requestID, fmt.Sprintf(format, args...), r.fields)
}

// =============================================================================
// TIMING HELPERS
// =============================================================================

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// StopWithThreshold logs warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warn("%s took %v (threshold: %v)", t.op, elapsed, threshold)
	} else {
		Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	}
	return elapsed
}
