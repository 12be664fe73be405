package tui

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// LogScoreSink reports score changes as structured log lines.
type LogScoreSink struct {
	logger *log.Logger
}

// NewLogScoreSink creates a sink writing to logger.
func NewLogScoreSink(logger *log.Logger) *LogScoreSink {
	return &LogScoreSink{logger: logger}
}

// ScoreChanged implements ball.ScoreSink.
func (s *LogScoreSink) ScoreChanged(value uint32) {
	s.logger.Info("score changed", "event", "score_changed", "value", value)
}

// NewLogger creates the logger used by local play. The terminal belongs to
// the game, so output goes to a file; an empty path discards it.
// The returned closer must be called on exit.
func NewLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ball",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
