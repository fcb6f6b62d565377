package deepexn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"
)

//go:generate mockery
type LoggingBackend interface {
	ShouldLogBeSkipped(level string) bool
	CreateLogRecord(level string, msg string) *LogRecord
	HandleRecord(logRecord *LogRecord)
	Println(message string)
}

type LoggingBackendImpl struct {
	slog *slog.Logger
	out  io.Writer
}

func (s *LoggingBackendImpl) Println(message string) {
	_, _ = fmt.Fprintln(s.out, message)
}

func (s *LoggingBackendImpl) ShouldLogBeSkipped(level string) bool {
	slogLevel, _ := parseLogLevel(level)
	return !s.slog.Handler().Enabled(context.Background(), slogLevel)
}

func (s *LoggingBackendImpl) HandleRecord(logRecord *LogRecord) {
	var pcs [1]uintptr
	// skips Callers, HandleRecord, LoggerImpl.log and the level method
	runtime.Callers(4, pcs[:])
	slogLevel, _ := parseLogLevel(logRecord.level)
	slogRecord := slog.NewRecord(time.Now(), slogLevel, logRecord.msg, pcs[0])

	for key, value := range logRecord.attributes {
		slogRecord.AddAttrs(slog.Any(key, value))
	}

	_ = s.slog.Handler().Handle(context.Background(), slogRecord)
}

func (s *LoggingBackendImpl) CreateLogRecord(level string, msg string) *LogRecord {
	return &LogRecord{
		level:      level,
		msg:        msg,
		attributes: make(map[string]any),
	}
}
