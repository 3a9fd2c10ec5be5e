package log

import (
	"io"
	"log"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", log.Ltime|log.Lmicroseconds),
		level:  level,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

func (l *Logger) logf(level Level, format string, v ...any) {
	if l == nil || level < l.level {
		return
	}
	l.logger.Printf(level.String()+": "+format, v...)
}

func (l *Logger) Debugf(format string, v ...any) { l.logf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...any) { l.logf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...any) { l.logf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...any) { l.logf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}
