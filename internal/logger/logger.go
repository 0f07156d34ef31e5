// Package logger builds the logrus logger threaded through the simulator.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/palemoky/sequence/internal/apperrors"
)

// MaxFileSize is the size past which an existing log file is rotated on open.
const MaxFileSize = 10 * 1024 * 1024

// Level selects how much of a simulation is logged. Levels are ordered; each
// includes everything logged by the levels below it.
type Level int

const (
	LevelNone    Level = iota // nothing
	LevelResults              // one line per finished game
	LevelTurn                 // every turn event
	LevelBoard                // board dump after every turn
)

var levelNames = [...]string{"none", "results", "turn", "board"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel resolves a level name.
func ParseLevel(name string) (Level, error) {
	for i, n := range levelNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Level(i), nil
		}
	}
	return LevelNone, fmt.Errorf("%w: %q", apperrors.ErrInvalidLogLevel, name)
}

// Logrus maps the level onto logrus severities.
func (l Level) Logrus() logrus.Level {
	switch l {
	case LevelResults:
		return logrus.InfoLevel
	case LevelTurn:
		return logrus.DebugLevel
	case LevelBoard:
		return logrus.TraceLevel
	default:
		return logrus.PanicLevel
	}
}

// Options configures New.
type Options struct {
	Level Level
	// File, when set, receives the log instead of Out.
	File string
	// Out defaults to stderr.
	Out io.Writer
}

// New builds a logger. The returned close function releases the log file, if any.
func New(opts Options) (*logrus.Logger, func() error, error) {
	l := logrus.New()
	l.SetLevel(opts.Level.Logrus())
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	closeFn := func() error { return nil }
	switch {
	case opts.File != "":
		f, err := openFile(opts.File)
		if err != nil {
			return nil, nil, err
		}
		l.SetOutput(f)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
		closeFn = f.Close
	case opts.Out != nil:
		l.SetOutput(opts.Out)
	default:
		l.SetOutput(os.Stderr)
	}
	return l, closeFn, nil
}

// openFile opens path for appending, rotating it first if it is too large.
func openFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if info, err := os.Stat(path); err == nil && info.Size() > MaxFileSize {
		backup := fmt.Sprintf("%s.%d", path, time.Now().Unix())
		if err := os.Rename(path, backup); err != nil {
			return nil, fmt.Errorf("failed to rotate log file: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
