package installer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/crafted-tech/logonapp/platform"
)

// Level is the severity of a log line.
type Level int8

const (
	LevelTrace Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// Prefix returns the tag written in front of every line of this level.
func (l Level) Prefix() string {
	switch l {
	case LevelTrace:
		return "[TRACE]:"
	case LevelWarning:
		return "[WARNING]"
	case LevelError:
		return "[ERROR]"
	default:
		return "[INFO]:"
	}
}

// Trace is emitted at zerolog's debug level so it passes the default
// global level.
func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelTrace:
		return zerolog.DebugLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func levelOf(z zerolog.Level) Level {
	switch z {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return LevelTrace
	case zerolog.WarnLevel:
		return LevelWarning
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return LevelError
	default:
		return LevelInfo
	}
}

// formatLevel renders zerolog's level field with this package's prefixes.
func formatLevel(i any) string {
	s, _ := i.(string)
	z, err := zerolog.ParseLevel(s)
	if err != nil {
		return LevelInfo.Prefix()
	}
	return levelOf(z).Prefix()
}

func lineWriter(out io.Writer, withTime bool) zerolog.ConsoleWriter {
	parts := []string{zerolog.LevelFieldName, zerolog.MessageFieldName}
	if withTime {
		parts = append([]string{zerolog.TimestampFieldName}, parts...)
	}
	return zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     true,
		TimeFormat:  "15:04:05.000",
		PartsOrder:  parts,
		FormatLevel: formatLevel,
	}
}

// Logger writes leveled lines to one or more sinks and keeps an in-memory
// copy. Delivery is best-effort: logging never fails the caller.
// It is safe for concurrent use from multiple goroutines.
type Logger struct {
	mu       sync.Mutex
	zl       zerolog.Logger
	file     *os.File
	path     string
	messages []string
	prefix   string
}

// Option configures a file-backed Logger.
type Option func(*options)

type options struct {
	console io.Writer
}

// WithConsole tees every line to w as well as the log file.
func WithConsole(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

func newLogger(writers ...io.Writer) *Logger {
	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = zerolog.MultiLevelWriter(writers...)
	}
	return &Logger{
		zl:       zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
		messages: make([]string, 0, 100),
	}
}

// NewLogger creates a new Logger that writes to a timestamped file in the temp directory.
// The prefix is used in the filename: {prefix}-{timestamp}.log
//
// Example:
//
//	log, err := installer.NewLogger("logonapp-uninstall", installer.WithConsole(os.Stdout))
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//	log.Info("Starting cleanup")
func NewLogger(prefix string, opts ...Option) (*Logger, error) {
	timestamp := time.Now().Format("20060102-150405")
	logPath := filepath.Join(platform.TempPath(), fmt.Sprintf("%s-%s.log", prefix, timestamp))

	f, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	l := fileLogger(f, logPath, opts)
	l.prefix = prefix

	l.Info("=== %s Log ===", prefix)
	l.Info("Started: %s", time.Now().Format(time.RFC3339))
	l.Info("Log file: %s", logPath)

	return l, nil
}

// NewLoggerToFile creates a new Logger that appends to the specified file path.
func NewLoggerToFile(logPath string, opts ...Option) (*Logger, error) {
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return fileLogger(f, logPath, opts), nil
}

func fileLogger(f *os.File, path string, opts []Option) *Logger {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	writers := []io.Writer{lineWriter(f, true)}
	if o.console != nil {
		writers = append(writers, lineWriter(o.console, false))
	}

	l := newLogger(writers...)
	l.file = f
	l.path = path
	return l
}

// NewConsoleLogger creates a Logger that prints "<prefix> <message>" lines to out.
func NewConsoleLogger(out io.Writer) *Logger {
	return newLogger(lineWriter(out, false))
}

// NewSessionLogger creates a Logger that routes lines to the installer
// session. Lines the session rejects are appended to fallbackPath. With a
// nil session every line goes to the debugger output instead.
func NewSessionLogger(session platform.Session, fallbackPath string) *Logger {
	if session == nil {
		platform.DebugOutput("Warning: Invalid MSI handle provided to logger")
	}
	return newLogger(&sessionWriter{session: session, fallback: fallbackPath})
}

// Discard returns a Logger that only keeps the in-memory copy.
func Discard() *Logger {
	return newLogger()
}

// Close closes the log file, if any.
func (l *Logger) Close() {
	if l == nil || l.file == nil {
		return
	}
	l.Info("")
	l.Info("=== Log ended: %s ===", time.Now().Format(time.RFC3339))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.file.Close()
	l.file = nil
}

// Path returns the path to the log file.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Content returns every line logged so far, prefixed by level.
func (l *Logger) Content() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.messages, "\n")
}

// Lines returns a copy of every line logged so far.
func (l *Logger) Lines() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.messages...)
}

// Trace logs a detail message.
func (l *Logger) Trace(format string, args ...any) {
	l.Log(LevelTrace, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.Log(LevelWarning, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, format, args...)
}

// Log writes one message at the given level.
func (l *Logger) Log(level Level, format string, args ...any) {
	if l == nil {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, level.Prefix()+" "+msg)
	l.zl.WithLevel(level.zerolog()).Msg(msg)
}

// sessionWriter delivers rendered lines to the installer session.
type sessionWriter struct {
	session  platform.Session
	fallback string
	buf      bytes.Buffer
}

func (w *sessionWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.InfoLevel, p)
}

func (w *sessionWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	w.buf.Reset()
	render := lineWriter(&w.buf, false)
	if _, err := render.Write(p); err != nil {
		return len(p), nil
	}
	text := strings.TrimRight(w.buf.String(), "\r\n")

	if w.session == nil {
		platform.DebugOutput(text)
		return len(p), nil
	}

	if err := w.session.Message(messageKind(levelOf(level)), text); err != nil {
		appendFallback(w.fallback, text)
	}
	return len(p), nil
}

func messageKind(level Level) platform.MessageKind {
	switch level {
	case LevelError:
		return platform.MessageError
	case LevelWarning:
		return platform.MessageWarning
	case LevelTrace:
		return platform.MessageActionData
	default:
		return platform.MessageInfo
	}
}

func appendFallback(path, line string) {
	if path == "" {
		platform.DebugOutput(line)
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		platform.DebugOutput(line)
		return
	}
	defer f.Close()
	fmt.Fprintln(f, line)
}

// DefaultFallbackLogPath is where session lines go when the installer
// rejects them.
func DefaultFallbackLogPath() string {
	return filepath.Join(platform.WindowsPath(), "Temp", "MSILogFallback.log")
}
