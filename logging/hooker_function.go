package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxCallDepth bounds the frames inspected for MsgFormatMulti entries.
const maxCallDepth = 3

type functionHooker struct{}

// callRelation records a short call chain for errors and the calling
// function for everything else.
func callRelation(level logrus.Level) uint32 {
	if level <= logrus.ErrorLevel {
		return MsgFormatMulti
	}
	return MsgFormatSingle
}

// callerFrames returns up to n frames above the logging machinery.
func callerFrames(n int) []runtime.Frame {
	pcs := make([]uintptr, 32)
	depth := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:depth])

	var out []runtime.Frame
	for len(out) < n {
		f, more := frames.Next()
		if !isLoggingFrame(f.Function) {
			out = append(out, f)
		}
		if !more {
			break
		}
	}
	return out
}

func isLoggingFrame(fn string) bool {
	return strings.Contains(fn, "github.com/sirupsen/logrus") ||
		strings.Contains(fn, "scriptkit/logging.")
}

func shortFuncName(fn string) string {
	if index := strings.LastIndex(fn, "/"); index >= 0 {
		return fn[index+1:]
	}
	return fn
}

func (h *functionHooker) fire(entry *logrus.Entry) {
	frames := callerFrames(1)
	if len(frames) == 0 {
		return
	}
	entry.Data["func"] = shortFuncName(frames[0].Function)
	entry.Data["line"] = frames[0].Line
	entry.Data["file"] = filepath.Base(frames[0].File)
}

func (h *functionHooker) fires(entry *logrus.Entry) {
	for i, f := range callerFrames(maxCallDepth) {
		entry.Data["f"+strconv.Itoa(i)] = fmt.Sprintf("{%s,%s,%d}",
			filepath.Base(f.File), shortFuncName(f.Function), f.Line)
	}
}

func (h *functionHooker) Fire(entry *logrus.Entry) error {
	switch callRelation(entry.Level) {
	case MsgFormatMulti:
		h.fires(entry)
	case MsgFormatSingle:
		h.fire(entry)
	}
	return nil
}

func (h *functionHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

// LoadFunctionHooker loads a function hooker to the logger
func LoadFunctionHooker(logger *Logger) {
	logger.Hooks.Add(&functionHooker{})
}
