// SPDX-License-Identifier: BSD-3-Clause

// Package log is a lightweight leveled logger with syslog-style severities.
//
// Messages below the configured level are dropped. Everything else is
// written to the sink in one fixed, easily parsed line:
//
//	<YYYY>-<mm>-<dd> <HH>:<MM>:<SS>.<mss> [<LEVEL>] <file>:<line> <message>
//
// Write errors on the sink are ignored.
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level is a verbosity level. Emerg is the highest priority, Debug the
// lowest; None disables logging entirely.
type Level int

const (
	None Level = iota
	Emerg
	Alert
	Crit
	Error
	Warn
	Notice
	Info
	Debug
)

var levelNames = [...]string{
	"NONE", "EMERG", "ALERT", "CRIT", "ERROR", "WARN", "NOTICE", "INFO", "DEBUG",
}

func (l Level) String() string {
	if l < None || l > Debug {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("log: invalid level")

// ParseLevel converts a level name to a Level, ignoring case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return None, ErrInvalidLevel
}

// Logger filters by level and writes formatted records to a sink. It is
// safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

// New returns a Logger writing records at or above level to w.
func New(level Level, w io.Writer) *Logger {
	return &Logger{level: level, out: w}
}

// SetLevel changes the verbosity threshold.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the current verbosity threshold.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Output writes one record at the given level. calldepth locates the
// file:line to report, counted as in runtime.Caller; the per-level helpers
// pass 2.
func (l *Logger) Output(level Level, calldepth int, format string, args ...any) {
	if level == None {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if level > l.level {
		return
	}

	file := "???"
	line := 0
	if _, f, n, ok := runtime.Caller(calldepth); ok {
		file = filepath.Base(f)
		line = n
	}

	var buf bytes.Buffer
	buf.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	fmt.Fprintf(&buf, " [%s] %s:%d ", level, file, line)
	fmt.Fprintf(&buf, format, args...)
	buf.WriteByte('\n')

	l.out.Write(buf.Bytes())
}

// Logf logs at an arbitrary level.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.Output(level, 2, format, args...)
}

// Emergf logs at the Emerg level: system is unusable.
func (l *Logger) Emergf(format string, args ...any) { l.Output(Emerg, 2, format, args...) }

// Alertf logs at the Alert level: action must be taken immediately.
func (l *Logger) Alertf(format string, args ...any) { l.Output(Alert, 2, format, args...) }

// Critf logs at the Crit level: critical conditions.
func (l *Logger) Critf(format string, args ...any) { l.Output(Crit, 2, format, args...) }

// Errorf logs at the Error level: error conditions.
func (l *Logger) Errorf(format string, args ...any) { l.Output(Error, 2, format, args...) }

// Warnf logs at the Warn level: warning conditions.
func (l *Logger) Warnf(format string, args ...any) { l.Output(Warn, 2, format, args...) }

// Noticef logs at the Notice level: normal but significant conditions.
func (l *Logger) Noticef(format string, args ...any) { l.Output(Notice, 2, format, args...) }

// Infof logs at the Info level.
func (l *Logger) Infof(format string, args ...any) { l.Output(Info, 2, format, args...) }

// Debugf logs at the Debug level.
func (l *Logger) Debugf(format string, args ...any) { l.Output(Debug, 2, format, args...) }
