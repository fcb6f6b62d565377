package deepexn

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
	NewError(msg string, kv ...any) error
}

var workDirectory, _ = os.Getwd()

// NewLogger logs to console through tint and, when cfg.File is set, as JSON
// to a lumberjack-rotated file. Call Close to release the file.
func NewLogger(cfg LogConfig, console io.Writer, render RenderOptions) (*LoggerImpl, error) {
	level, ok := parseLogLevel(cfg.Level)
	if !ok {
		return nil, Ofn("unknown log level", "level", cfg.Level)
	}

	handlers := multiHandler{tint.NewHandler(console, &tint.Options{
		AddSource:   true,
		Level:       level,
		TimeFormat:  "2006-01-02 15:04:05.000",
		NoColor:     !isTerminal(console),
		ReplaceAttr: dropStackTrace,
	})}

	var logFile *lumberjack.Logger
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
			return nil, Reraisef(err, "creating log directory for %s", cfg.File)
		}
		logFile = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		handlers = append(handlers, slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: replaceSource,
		}))
	}

	return &LoggerImpl{
		logger:              &LoggingBackendImpl{slog: slog.New(handlers), out: console},
		raiser:              defaultRaiser,
		render:              render,
		warnOnForeignErrors: cfg.WarnOnForeignErrors,
		logFile:             logFile,
	}, nil
}

func parseLogLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func dropStackTrace(groups []string, a slog.Attr) slog.Attr {
	if a.Key == StackTraceField {
		return slog.Attr{}
	}
	return replaceSource(groups, a)
}

func replaceSource(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		src, ok := a.Value.Any().(*slog.Source)
		if !ok {
			return a
		}
		if rel, ok := strings.CutPrefix(src.File, workDirectory+string(os.PathSeparator)); ok {
			src.File = rel
		} else {
			src.File = filepath.Base(src.File)
		}
		return slog.Any(a.Key, src)
	}
	return a
}

type LoggerImpl struct {
	logger              LoggingBackend
	raiser              *Raiser
	render              RenderOptions
	warnOnForeignErrors bool
	logFile             *lumberjack.Logger
}

var _ Logger = (*LoggerImpl)(nil)

func (m *LoggerImpl) log(level string, msg string, kv ...any) {
	if m.logger.ShouldLogBeSkipped(level) {
		return
	}

	rec := m.logger.CreateLogRecord(level, msg)
	var stackTrace string

	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			m.Warn("invalid key type in log message, must always be string", "key", kv[i])
			continue
		}

		if key == ErrorField {
			stackTrace = m.addErrorAttrs(rec, kv[i+1])
		} else {
			rec.AddAttrs(key, kv[i+1])
		}
	}
	m.logger.HandleRecord(rec)
	if stackTrace != "" {
		m.logger.Println(stackTrace)
	}
}

// addErrorAttrs returns the stack trace to print after the record, if any.
func (m *LoggerImpl) addErrorAttrs(rec *LogRecord, value any) string {
	err, ok := value.(error)
	if !ok || !isDeepexnError(err) {
		if m.warnOnForeignErrors {
			m.Warn("error field does not hold an error of this package", "type", fmt.Sprintf("%T", value))
		}
		rec.AddAttrs(ErrorField, value)
		return ""
	}
	rec.AddAttrs(ErrorField, Machine(err, m.render))
	rec.AddAttrs(KindField, KindOf(err).String())
	stack, ok := Backtrace(err)
	if !ok {
		return ""
	}
	rec.AddAttrs(StackTraceField, stack.String())
	return stack.String()
}

func (m *LoggerImpl) Debug(msg string, kv ...any) { m.log("debug", msg, kv...) }
func (m *LoggerImpl) Info(msg string, kv ...any)  { m.log("info", msg, kv...) }
func (m *LoggerImpl) Warn(msg string, kv ...any)  { m.log("warn", msg, kv...) }
func (m *LoggerImpl) Error(msg string, kv ...any) { m.log("error", msg, kv...) }

// NewError returns a structured error (msg (key value) ...) with a backtrace.
func (m *LoggerImpl) NewError(msg string, kv ...any) error {
	return m.raiser.ofn(msg, kv...)
}

func (m *LoggerImpl) Close() error {
	if m.logFile == nil {
		return nil
	}
	return m.logFile.Close()
}
