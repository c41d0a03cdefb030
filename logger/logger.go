// Package logger writes the per-run log of the generator.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes timestamped lines to a log file. Lines written between Begin and End carry the
// run id and, for step lines, the step name. Until Init succeeds every call is a no-op.
type Logger struct {
	file    *os.File
	path    string
	runID   string
	started time.Time
	mu      sync.Mutex
}

// NewLogger creates a new Logger instance
func NewLogger() *Logger {
	return &Logger{}
}

// Init opens sqlmondeck_<date>_<n>.log in logDir, where n counts the log files of the day.
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	dateStr := time.Now().Format("2006-01-02")
	matches, _ := filepath.Glob(filepath.Join(logDir, fmt.Sprintf("sqlmondeck_%s_*.log", dateStr)))
	filename := filepath.Join(logDir, fmt.Sprintf("sqlmondeck_%s_%d.log", dateStr, len(matches)+1))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = f
	l.path = filename
	return nil
}

// Path returns the current log file, empty when logging is off.
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// RunID returns the id of the open run, empty outside Begin and End.
func (l *Logger) RunID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.runID
}

// Begin opens a run. Every following line is tagged with runID until End.
func (l *Logger) Begin(runID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runID = runID
	l.started = time.Now()
	l.write("", "run started")
}

// End closes the open run, recording its outcome and duration. A nil err means success.
func (l *Logger) End(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.runID == "" {
		return
	}
	elapsed := time.Since(l.started).Round(time.Millisecond)
	if err != nil {
		l.write("", fmt.Sprintf("run failed after %s: %v", elapsed, err))
	} else {
		l.write("", fmt.Sprintf("run finished in %s", elapsed))
	}
	l.runID = ""
}

// Step writes a line attributed to a pipeline step.
func (l *Logger) Step(step, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(step, fmt.Sprintf(format, args...))
}

// Log writes a message to the log file
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write("", message)
}

// Logf writes a formatted message to the log file
func (l *Logger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write("", fmt.Sprintf(format, args...))
}

// write formats [time] [run id] step: message, dropping the parts that are not set.
func (l *Logger) write(step, message string) {
	if l.file == nil {
		return
	}
	line := fmt.Sprintf("[%s]", time.Now().Format("15:04:05.000"))
	if l.runID != "" {
		line += fmt.Sprintf(" [%s]", l.runID)
	}
	if step != "" {
		line += " " + step + ":"
	}
	fmt.Fprintf(l.file, "%s %s\n", line, message)
}

// Close ends an open run as interrupted and closes the log file.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	if l.runID != "" {
		l.write("", "run interrupted")
		l.runID = ""
	}
	l.file.Close()
	l.file = nil
	l.path = ""
}
