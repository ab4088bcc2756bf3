package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"mindi/config"
)

// Logger wraps logrus with the key-value style the usecases and
// repositories log with. The zero value logs to stderr at info level.
type Logger struct {
	entry *logrus.Entry
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	if cfg.LoggerMode.Prod {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level := logrus.InfoLevel
	if cfg.LoggerMode.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.LoggerMode.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	if cfg.LoggerMode.Development {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)

	return &Logger{entry: logrus.NewEntry(l)}, nil
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.withFields(keysAndValues).Debug(msg)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.withFields(keysAndValues).Info(msg)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.withFields(keysAndValues).Warn(msg)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.withFields(keysAndValues).Error(msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.logrusEntry().Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.logrusEntry().Errorf(format, args...)
}

func (l *Logger) logrusEntry() *logrus.Entry {
	if l.entry == nil {
		std := logrus.New()
		std.SetOutput(os.Stderr)
		l.entry = logrus.NewEntry(std)
	}
	return l.entry
}

// withFields pairs up trailing key-value arguments, logrus-style fields out.
func (l *Logger) withFields(keysAndValues []any) *logrus.Entry {
	entry := l.logrusEntry()
	if len(keysAndValues) == 0 {
		return entry
	}
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return entry.WithFields(fields)
}
