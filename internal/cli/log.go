package cli

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// newLogger returns a charm logger with short timestamps ("14:32:01.45")
// and level badges tinted to match the rest of the CLI output.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	l.SetStyles(logStyles())
	return l
}

func logStyles() *log.Styles {
	s := log.DefaultStyles()
	badge := func(lvl log.Level, color lipgloss.Color) {
		s.Levels[lvl] = lipgloss.NewStyle().
			SetString(strings.ToUpper(lvl.String())).
			Bold(true).
			MaxWidth(4).
			Foreground(color)
	}
	badge(log.DebugLevel, ColorDim)
	badge(log.InfoLevel, ColorBlue)
	badge(log.WarnLevel, ColorYellow)
	badge(log.ErrorLevel, ColorRed)
	s.Keys["run"] = StyleDim
	s.Keys["elapsed"] = StyleDim
	return s
}

// stopwatch logs how long a CLI step took once it finishes.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, start: time.Now()}
}

func (s stopwatch) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

// done logs msg at info level with an "elapsed" field appended to keyvals.
func (s stopwatch) done(msg string, keyvals ...any) {
	s.logger.Info(msg, append(keyvals, "elapsed", s.elapsed())...)
}
