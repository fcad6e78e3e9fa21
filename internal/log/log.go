// Package log is a small structured logger in the go-ethereum/log15 mold:
// discrete levels, key-value context pairs, and a terminal handler that
// color-codes output when it is safe to do so.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Lvl is a log level, ordered from most to least severe.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "CRIT"
	case LvlError:
		return "ERROR"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDebug:
		return "DEBUG"
	case LvlTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

func (l Lvl) color() *color.Color {
	switch l {
	case LvlCrit:
		return color.New(color.FgMagenta, color.Bold)
	case LvlError:
		return color.New(color.FgRed)
	case LvlWarn:
		return color.New(color.FgYellow)
	case LvlInfo:
		return color.New(color.FgGreen)
	case LvlDebug:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgWhite)
	}
}

// Ctx is a list of alternating key/value pairs, kept in the order they
// were supplied the way log15's Ctx does.
type Ctx []interface{}

// Logger emits leveled, contextual log records to a single writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	colored bool
	ctx     Ctx
	module  string
}

var root = New("")

// Root returns the module-level default logger.
func Root() *Logger { return root }

// New builds a Logger for the given module name, writing to stderr and
// auto-detecting whether the stream is a color-capable terminal.
func New(module string) *Logger {
	colored := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return &Logger{
		out:     colorable.NewColorableStderr(),
		colored: colored,
		module:  module,
	}
}

// New returns a child logger with additional permanent context.
func (l *Logger) New(ctx ...interface{}) *Logger {
	child := &Logger{out: l.out, colored: l.colored, module: l.module}
	child.ctx = append(append(Ctx{}, l.ctx...), ctx...)
	return child
}

func (l *Logger) write(lvl Lvl, msg string, ctx Ctx) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	line := fmt.Sprintf("%s [%s] %s", ts, lvl, msg)

	all := append(append(Ctx{}, l.ctx...), ctx...)
	for i := 0; i+1 < len(all); i += 2 {
		line += fmt.Sprintf(" %v=%v", all[i], all[i+1])
	}
	if lvl == LvlCrit {
		line += fmt.Sprintf(" caller=%v", stack.Caller(2))
	}

	if l.colored {
		line = lvl.color().Sprint(line)
	}
	fmt.Fprintln(l.out, line)
}

func (l *Logger) Trace(msg string, ctx ...interface{}) { l.write(LvlTrace, msg, ctx) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *Logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *Logger) Crit(msg string, ctx ...interface{})  { l.write(LvlCrit, msg, ctx) }

func Trace(msg string, ctx ...interface{}) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { root.Crit(msg, ctx...) }
