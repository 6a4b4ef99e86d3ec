// Package logger provides named, leveled loggers for the battle server and client
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel represents logging severity
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

var levelColors = map[LogLevel]*color.Color{
	DEBUG: color.New(color.FgBlue),
	INFO:  color.New(color.FgGreen),
	WARN:  color.New(color.FgYellow),
	ERROR: color.New(color.FgRed),
	FATAL: color.New(color.FgRed, color.Bold),
}

// String returns the level name
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a level name to a LogLevel, defaulting to INFO
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Logger writes leveled messages to the console and optionally a file
type Logger struct {
	name    string
	level   LogLevel
	out     io.Writer
	file    *os.File
	exit    func(int)
	mu      sync.Mutex
	nowFunc func() time.Time
}

// Package-level loggers
var (
	Server = New("SERVER")
	Client = New("CLIENT")
)

var registry = []*Logger{Server, Client}

// New creates a logger writing to stdout at INFO level
func New(name string) *Logger {
	return &Logger{
		name:    name,
		level:   INFO,
		out:     color.Output,
		exit:    os.Exit,
		nowFunc: time.Now,
	}
}

// SetGlobalLogLevel sets the level of every package-level logger
func SetGlobalLogLevel(level LogLevel) {
	for _, l := range registry {
		l.SetLevel(level)
	}
}

// InitializeFileLogging attaches a per-logger file under dir to every package-level logger
func InitializeFileLogging(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	for _, l := range registry {
		path := filepath.Join(dir, strings.ToLower(l.name)+".log")
		if err := l.SetFile(path); err != nil {
			return err
		}
	}
	return nil
}

// SetLevel changes the minimum level this logger emits
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current minimum level
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput redirects console output
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// SetFile mirrors every message, uncolored, into the file at path
func (l *Logger) SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
	}
	l.file = f
	return nil
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(DEBUG, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(INFO, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(WARN, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(ERROR, format, args...) }

// Fatal logs the message and terminates the process
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
	l.exit(1)
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	timestamp := l.nowFunc().Format("2006/01/02 15:04:05")
	tag := "[" + level.String() + "]"

	if l.out != nil {
		fmt.Fprintf(l.out, "%s [%s] %s %s\n", timestamp, l.name, levelColors[level].Sprint(tag), msg)
	}
	if l.file != nil {
		fmt.Fprintf(l.file, "%s [%s] %s %s\n", timestamp, l.name, tag, msg)
	}
}
