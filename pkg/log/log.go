// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🎨 Display configuration
const (
	lineIndent  = 4 // spaces to indent line entries
	numberWidth = 6 // width for the line number column
)

// 🎯 LineOperation is what the pipeline did to one input line
type LineOperation struct {
	Number   int    // 1-based position in the input
	Before   string // original text
	After    string // final text, empty when dropped
	Kept     bool   // survived the keep filter
	Replaced bool   // the replacement matched
}

// 📦 RunOperation describes one invocation
type RunOperation struct {
	Input  string   // input path
	Output string   // output path, empty for stdout
	Args   []string // canonical arguments
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog     zerolog.Logger
	console  io.Writer
	mu       sync.Mutex
	current  *RunOperation
	kept     int
	dropped  int
	replaced int
	changed  int
}

// 🏭 New creates a new logger. Nothing reaches console unless level is Info or lower.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: console, NoColor: color.NoColor}).
		With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔇 Nop returns a logger that drops everything
func Nop() *Logger {
	return New(io.Discard, zerolog.Disabled)
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or a Nop logger if there is none
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger
	}
	return Nop()
}

// 🎯 NewContext adds the logger, and its zerolog logger, to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	ctx = l.zlog.WithContext(ctx)
	return context.WithValue(ctx, contextKey{}, l)
}

// Zerolog returns the underlying structured logger
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

func (l *Logger) verbose() bool {
	lvl := l.zlog.GetLevel()
	return lvl != zerolog.Disabled && lvl <= zerolog.InfoLevel
}

// 📝 StartRun starts a new run and resets the counters
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &op
	l.kept, l.dropped, l.replaced, l.changed = 0, 0, 0, 0

	l.zlog.Debug().
		Str("input", op.Input).
		Str("output", op.Output).
		Strs("args", op.Args).
		Msg("starting run")
}

// 📝 LogLine records the outcome of one line
func (l *Logger) LogLine(ctx context.Context, op LineOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case !op.Kept:
		l.dropped++
	default:
		l.kept++
		if op.Before != op.After {
			l.changed++
		}
	}
	if op.Replaced {
		l.replaced++
	}

	if e := l.zlog.Trace(); e.Enabled() {
		e.Int("line", op.Number).
			Bool("kept", op.Kept).
			Bool("replaced", op.Replaced).
			Str("delta", lineDelta(op)).
			Msg("line")
	}
}

// lineDelta encodes the edit from Before to After in diffmatchpatch delta form
func lineDelta(op LineOperation) string {
	if !op.Kept {
		return ""
	}
	dmp := diffmatchpatch.New()
	return dmp.DiffToDelta(dmp.DiffMain(op.Before, op.After, false))
}

// 📝 EndRun prints the summary of the current run
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return
	}

	dest := l.current.Output
	if dest == "" {
		dest = "stdout"
	}

	if l.verbose() {
		fmt.Fprintf(l.console, "%s %s %s %s\n",
			color.New(color.Bold, color.FgCyan).Sprint("textprocessor"),
			color.New(color.Faint).Sprint("•"),
			l.current.Input,
			color.New(color.Faint).Sprint("→ "+dest))
		fmt.Fprintln(l.console, l.formatCounts())
	}

	l.zlog.Info().
		Str("input", l.current.Input).
		Str("output", dest).
		Int("kept", l.kept).
		Int("dropped", l.dropped).
		Int("replaced", l.replaced).
		Int("changed", l.changed).
		Msg("run complete")

	l.current = nil
}

// 📝 formatCounts formats the run counters for display
func (l *Logger) formatCounts() string {
	return fmt.Sprintf("%*s%s %-*d %s %-*d %s %-*d",
		lineIndent, "",
		color.GreenString("✓"), numberWidth, l.kept,
		color.RedString("✗"), numberWidth, l.dropped,
		color.BlueString("⟳"), numberWidth, l.replaced)
}

// 📝 Failed logs an error that ended the run
func (l *Logger) Failed(ctx context.Context, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Debug().Err(err).Msg("run failed")
	l.current = nil
}
