package logging

import (
	"bytes"
	"io/ioutil"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level names accepted by Init and ParseLevel.
const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

// Numeric levels for CPrint and VPrint.
const (
	PANIC uint32 = iota
	FATAL
	ERROR
	WARN
	INFO
	DEBUG
	TRACE
)

const (
	// MsgFormatSingle records the calling function only.
	MsgFormatSingle uint32 = iota
	// MsgFormatMulti records a short call chain.
	MsgFormatMulti
)

// DefaultFilename is the log file prefix used when none is configured.
const DefaultFilename = "scriptkit"

// LogFormat holds the structured fields of an entry.
type LogFormat = map[string]interface{}

// Logger wraps a logrus logger.
type Logger struct {
	*logrus.Logger
}

func NewLogger() *Logger {
	return &Logger{
		Logger: logrus.New(),
	}
}

var (
	mtx sync.RWMutex
	// clog writes to stdout and the log file, vlog to the log file only.
	clog *Logger
	vlog *Logger
)

// ValidLevel reports whether level is a known level name.
func ValidLevel(level string) bool {
	switch level {
	case PanicLevel, FatalLevel, ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel:
		return true
	}
	return false
}

// ParseLevel converts a level name, falling back to info.
func ParseLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	case TraceLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

func newHookedLogger(level string, hooks ...logrus.Hook) *Logger {
	l := NewLogger()
	LoadFunctionHooker(l)
	for _, h := range hooks {
		l.Hooks.Add(h)
	}
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = ParseLevel(level)
	return l
}

// Init configures both loggers to write rotated files under path. When
// disableCPrint is set, CPrint output goes to the file only.
func Init(path, filename string, level string, age uint32, disableCPrint bool) error {
	if filename == "" {
		filename = DefaultFilename
	}
	fileHooker, err := NewFileRotateHooker(path, filename, age, nil)
	if err != nil {
		return err
	}

	v := newHookedLogger(level, fileHooker)
	v.Out = ioutil.Discard

	c := v
	if !disableCPrint {
		c = newHookedLogger(level, fileHooker)
		c.Out = os.Stdout
	}

	mtx.Lock()
	vlog, clog = v, c
	mtx.Unlock()

	v.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
	return nil
}

// InitConsole configures both loggers to write to stderr only. It is the
// fallback used before Init is called, so library code never touches the
// filesystem on its own.
func InitConsole(level string) {
	l := newHookedLogger(level)
	l.Out = os.Stderr

	mtx.Lock()
	vlog, clog = l, l
	mtx.Unlock()
}

func loggers() (*Logger, *Logger) {
	mtx.RLock()
	c, v := clog, vlog
	mtx.RUnlock()
	if c != nil {
		return c, v
	}
	mtx.Lock()
	defer mtx.Unlock()
	if clog == nil {
		l := newHookedLogger(WarnLevel)
		l.Out = os.Stderr
		clog, vlog = l, l
	}
	return clog, vlog
}

// GetGID return gid
func GetGID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// CPrint into stdout + log
func CPrint(level uint32, msg string, formats ...LogFormat) {
	c, _ := loggers()
	output(c, level, msg, formats)
}

// VPrint into log
func VPrint(level uint32, msg string, formats ...LogFormat) {
	_, v := loggers()
	output(v, level, msg, formats)
}

func output(l *Logger, level uint32, msg string, formats []LogFormat) {
	if l.GetLevel() < toLogrusLevel(level) {
		return
	}
	entry := l.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	case TRACE:
		entry.Trace(msg)
	default:
		entry.Error(msg)
	}
}

func toLogrusLevel(level uint32) logrus.Level {
	if level > TRACE {
		return logrus.ErrorLevel
	}
	// PANIC..TRACE share logrus' ordering.
	return logrus.Level(level)
}

// mergeLogFormats merges LogFormats.
// Same key would be covered by later-presented values.
func mergeLogFormats(formats ...LogFormat) LogFormat {
	format := LogFormat{}
	for _, data := range formats {
		for k, v := range data {
			format[k] = v
		}
	}
	format["tid"] = GetGID()
	return format
}
