// Package logging provides the run logger: one timestamped line per event on the
// console, optionally mirrored to a log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lepinkainen/fileanonymizer/ui"
)

// TimeFormat is the timestamp layout of every record.
const TimeFormat = "2006-01-02 15:04:05,000"

// Level is a record severity.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

func (lv Level) rank() int {
	switch lv {
	case LevelWarning:
		return 1
	case LevelError:
		return 2
	default:
		return 0
	}
}

// Logger writes records shaped "timestamp - LEVEL - message".
// The console copy has a coloured level label when the console is a terminal;
// the file copy is always plain. Call Close when a file was attached.
type Logger struct {
	mu       sync.Mutex
	console  io.Writer
	styles   ui.LevelStyles
	file     *os.File
	filePath string
	minLevel Level
	now      func() time.Time
}

// New creates a logger writing to console.
func New(console io.Writer) *Logger {
	return &Logger{
		console:  console,
		styles:   ui.NewLevelStyles(lipgloss.NewRenderer(console)),
		minLevel: LevelInfo,
		now:      time.Now,
	}
}

// AttachFile appends every subsequent record to path, creating parent directories as needed.
func (l *Logger) AttachFile(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.filePath = path
	return nil
}

// FilePath returns the attached log file, or "" when logging to the console only.
func (l *Logger) FilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filePath
}

// SetConsoleLevel drops console records below level. The file sink keeps every record.
func (l *Logger) SetConsoleLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// Close flushes and closes the log file if one was attached.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Sync()
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	l.file = nil
	l.filePath = ""
	return err
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs at WARNING level.
func (l *Logger) Warn(format string, args ...any) {
	l.line(LevelWarning, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...any) {
	l.line(LevelError, fmt.Sprintf(format, args...))
}

func (l *Logger) line(level Level, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now().Format(TimeFormat)
	if level.rank() >= l.minLevel.rank() {
		_, _ = io.WriteString(l.console, ts+" - "+l.label(level)+" - "+text+"\n")
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" - "+string(level)+" - "+text+"\n")
	}
}

func (l *Logger) label(level Level) string {
	switch level {
	case LevelWarning:
		return l.styles.Warning.Render(string(level))
	case LevelError:
		return l.styles.Error.Render(string(level))
	default:
		return l.styles.Info.Render(string(level))
	}
}
