package logger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Category represents a log category
type Category string

const (
	CategoryStartup   Category = "startup"
	CategoryAPI       Category = "api"
	CategoryRSVP      Category = "rsvp"
	CategoryGallery   Category = "gallery"
	CategoryWebSocket Category = "websocket"
	CategoryScheduler Category = "scheduler"
	CategoryStorage   Category = "storage"
)

// AllCategories lists every category that owns a log file.
var AllCategories = []Category{
	CategoryStartup,
	CategoryAPI,
	CategoryRSVP,
	CategoryGallery,
	CategoryWebSocket,
	CategoryScheduler,
	CategoryStorage,
}

// Level represents log level
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// LogEntry represents a structured log entry
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     Level                  `json:"level"`
	Category  Category               `json:"category"`
	Action    string                 `json:"action"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	GuestID   string                 `json:"guest_id,omitempty"`
	Duration  string                 `json:"duration,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Logger writes one JSON file per category per day and echoes to the console.
type Logger struct {
	mu      sync.Mutex
	logDir  string
	writers map[Category]*os.File
	console *zerolog.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the default logger
func Init(logDir string, console bool) error {
	var err error
	once.Do(func() {
		defaultLogger, err = NewLogger(logDir, console)
	})
	return err
}

// NewLogger creates a new logger
func NewLogger(logDir string, console bool) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		logDir:  logDir,
		writers: make(map[Category]*os.File),
	}
	if console {
		cl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.000"}).
			With().Timestamp().Logger()
		l.console = &cl
	}
	return l, nil
}

func fileName(category Category, day time.Time) string {
	return fmt.Sprintf("%s_%s.log", category, day.Format("2006-01-02"))
}

// getWriter returns or creates today's file writer for the category
func (l *Logger) getWriter(category Category) (io.Writer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := fileName(category, time.Now())

	if writer, exists := l.writers[category]; exists {
		if info, err := writer.Stat(); err == nil && info.Name() == name {
			return writer, nil
		}
		writer.Close()
	}

	file, err := os.OpenFile(filepath.Join(l.logDir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l.writers[category] = file
	return file, nil
}

// Log writes a log entry
func (l *Logger) Log(entry LogEntry) {
	entry.Timestamp = time.Now()

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling log entry: %v\n", err)
		return
	}

	writer, err := l.getWriter(entry.Category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting log writer: %v\n", err)
	} else {
		fmt.Fprintln(writer, string(jsonData))
	}

	if l.console != nil {
		l.printToConsole(entry)
	}
}

func (l *Logger) printToConsole(entry LogEntry) {
	var ev *zerolog.Event
	switch entry.Level {
	case LevelDebug:
		ev = l.console.Debug()
	case LevelWarn:
		ev = l.console.Warn()
	case LevelError:
		ev = l.console.Error()
	default:
		ev = l.console.Info()
	}

	ev = ev.Str("category", string(entry.Category)).Str("action", entry.Action)
	if entry.GuestID != "" {
		ev = ev.Str("guest", entry.GuestID)
	}
	if entry.Duration != "" {
		ev = ev.Str("duration", entry.Duration)
	}
	if entry.Error != "" {
		ev = ev.Str("error", entry.Error)
	}
	if len(entry.Data) > 0 {
		ev = ev.Fields(entry.Data)
	}
	ev.Msg(entry.Message)
}

// Close closes all file writers
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, writer := range l.writers {
		writer.Close()
	}
	l.writers = make(map[Category]*os.File)
}

// Default returns the default logger
func Default() *Logger {
	if defaultLogger == nil {
		Init("logs", true)
	}
	return defaultLogger
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func logAt(level Level, category Category, action, message string, err error, data map[string]interface{}) {
	Default().Log(LogEntry{
		Level:    level,
		Category: category,
		Action:   action,
		Message:  message,
		Error:    errString(err),
		Data:     data,
	})
}

// Startup logs startup/initialization events
func Startup(action, message string, data map[string]interface{}) {
	logAt(LevelInfo, CategoryStartup, action, message, nil, data)
}

// StartupError logs startup errors
func StartupError(action, message string, err error, data map[string]interface{}) {
	logAt(LevelError, CategoryStartup, action, message, err, data)
}

// StartupWarn logs startup warnings
func StartupWarn(action, message string, data map[string]interface{}) {
	logAt(LevelWarn, CategoryStartup, action, message, nil, data)
}

// API logs API request/response events
func API(action, message string, data map[string]interface{}) {
	logAt(LevelInfo, CategoryAPI, action, message, nil, data)
}

// RSVP logs guest replies
func RSVP(action, message string, data map[string]interface{}) {
	logAt(LevelInfo, CategoryRSVP, action, message, nil, data)
}

// RSVPError logs failures while storing replies
func RSVPError(action, message string, err error, data map[string]interface{}) {
	logAt(LevelError, CategoryRSVP, action, message, err, data)
}

// Gallery logs gallery session events
func Gallery(action, message string, data map[string]interface{}) {
	logAt(LevelDebug, CategoryGallery, action, message, nil, data)
}

// WebSocket logs WebSocket related events
func WebSocket(action, message string, data map[string]interface{}) {
	logAt(LevelInfo, CategoryWebSocket, action, message, nil, data)
}

// WebSocketError logs WebSocket errors
func WebSocketError(action, message string, err error, data map[string]interface{}) {
	logAt(LevelError, CategoryWebSocket, action, message, err, data)
}

// Scheduler logs scheduler events
func Scheduler(action, message string, data map[string]interface{}) {
	logAt(LevelInfo, CategoryScheduler, action, message, nil, data)
}

// SchedulerWarn logs scheduler warnings
func SchedulerWarn(action, message string, data map[string]interface{}) {
	logAt(LevelWarn, CategoryScheduler, action, message, nil, data)
}

// SchedulerError logs scheduler errors
func SchedulerError(action, message string, err error, data map[string]interface{}) {
	logAt(LevelError, CategoryScheduler, action, message, err, data)
}

// Storage logs key-value store operations
func Storage(action, message string, data map[string]interface{}) {
	logAt(LevelDebug, CategoryStorage, action, message, nil, data)
}

// StorageWarn logs recoverable storage problems such as unreadable values
func StorageWarn(action, message string, err error, data map[string]interface{}) {
	logAt(LevelWarn, CategoryStorage, action, message, err, data)
}

// Info logs info level message
func Info(category Category, action, message string, data map[string]interface{}) {
	logAt(LevelInfo, category, action, message, nil, data)
}

// Error logs error level message
func Error(category Category, action, message string, err error, data map[string]interface{}) {
	logAt(LevelError, category, action, message, err, data)
}

// Debug logs debug level message
func Debug(category Category, action, message string, data map[string]interface{}) {
	logAt(LevelDebug, category, action, message, nil, data)
}

// Warn logs warning level message
func Warn(category Category, action, message string, data map[string]interface{}) {
	logAt(LevelWarn, category, action, message, nil, data)
}

// ReadLogsOptions options for reading logs
type ReadLogsOptions struct {
	Category Category  // empty = all
	Level    Level     // empty = all
	Lines    int       // default 100, max 1000
	Search   string    // matched against message, action and error
	Day      time.Time // zero = today
}

// ReadLogs reads log entries from the default logger's directory
func ReadLogs(opts ReadLogsOptions) ([]LogEntry, error) {
	return Default().ReadLogs(opts)
}

// ReadLogs returns the newest matching entries first.
func (l *Logger) ReadLogs(opts ReadLogsOptions) ([]LogEntry, error) {
	if opts.Lines <= 0 {
		opts.Lines = 100
	}
	if opts.Lines > 1000 {
		opts.Lines = 1000
	}
	day := opts.Day
	if day.IsZero() {
		day = time.Now()
	}

	categories := AllCategories
	if opts.Category != "" {
		categories = []Category{opts.Category}
	}
	search := strings.ToLower(opts.Search)

	var entries []LogEntry
	for _, cat := range categories {
		file, err := os.Open(filepath.Join(l.logDir, fileName(cat, day)))
		if err != nil {
			continue
		}

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			var entry LogEntry
			if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
				continue
			}
			if opts.Level != "" && entry.Level != opts.Level {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(entry.Message), search) &&
				!strings.Contains(strings.ToLower(entry.Action), search) &&
				!strings.Contains(strings.ToLower(entry.Error), search) {
				continue
			}
			entries = append(entries, entry)
		}
		file.Close()
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	if len(entries) > opts.Lines {
		entries = entries[:opts.Lines]
	}
	return entries, nil
}

// GetLogDir returns the log directory path
func GetLogDir() string {
	return Default().logDir
}
