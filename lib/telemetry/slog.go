package telemetry

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitSlog installs the default slog logger. Logs always go to stderr, when
// `logFile` is not empty they are also written to a rotated file.
func InitSlog(verbose bool, logFile string) (io.Closer, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if logFile != "" {
		err := os.MkdirAll(filepath.Dir(logFile), 0755)
		if err != nil {
			return nil, err
		}
		logWriter := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    25,
			MaxBackups: 10,
			MaxAge:     14,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, logWriter)
		closer = logWriter
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
	})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
