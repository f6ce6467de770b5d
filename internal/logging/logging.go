package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns a JSON logger on stderr. Stdout is left to command output.
// An unknown level falls back to info.
func SetupLogging(level string) *logrus.Logger {
	return NewLogger(os.Stderr, level)
}

func NewLogger(out io.Writer, level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:          out,
		Hooks:        make(logrus.LevelHooks),
		Level:        parsed,
		ExitFunc:     os.Exit,
		ReportCaller: false,
	}

	return &logger
}
