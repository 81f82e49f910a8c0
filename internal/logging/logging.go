// Package logging provides the leveled logger used to report ingestion
// and asset failures outside the TUI frame.
package logging

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Level controls logger verbosity.
type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelInfo
	LevelDebug
)

// Logger writes leveled messages to stderr and, when configured, a file.
// The TUI owns the terminal, so stderr output only surfaces after exit.
type Logger struct {
	mu      sync.Mutex
	level   Level
	file    *os.File
	fileLog *log.Logger
	stderr  *log.Logger
}

// New creates a Logger. An empty logFile disables file output.
func New(level Level, logFile string) (*Logger, error) {
	l := &Logger{
		level:  level,
		stderr: log.New(os.Stderr, "", 0),
	}
	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}
	return l, nil
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message.
func (l *Logger) Error(format string, v ...any) {
	if l.level >= LevelError {
		l.write("ERROR: " + fmt.Sprintf(format, v...))
	}
}

// Info logs an informational message.
func (l *Logger) Info(format string, v ...any) {
	if l.level >= LevelInfo {
		l.write("INFO: " + fmt.Sprintf(format, v...))
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, v ...any) {
	if l.level >= LevelDebug {
		l.write("DEBUG: " + fmt.Sprintf(format, v...))
	}
}

func (l *Logger) write(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fileLog != nil {
		l.fileLog.Println(msg)
	} else {
		l.stderr.Println(msg)
	}
}
