package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
)

// newLogger installs a tint handler writing to stderr as the default slog logger. The
// returned level starts at info and is lowered by --verbose.
func newLogger() *slog.LevelVar {
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(logHandler(os.Stderr, level)))
	return level
}

func logHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    color.NoColor,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// pkg/errors values would otherwise be printed with their stack trace
			if err, ok := a.Value.Any().(error); ok {
				return slog.String(a.Key, err.Error())
			}
			return a
		},
	})
}
