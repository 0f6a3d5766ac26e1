package xlog

import (
	"io"
	"log/slog"

	pkgerr "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

type Logger = zerolog.Logger
type Level = zerolog.Level
type Event = zerolog.Event
type Context = zerolog.Context

const (
	LevelDebug    = zerolog.DebugLevel
	LevelInfo     = zerolog.InfoLevel
	LevelWarn     = zerolog.WarnLevel
	LevelError    = zerolog.ErrorLevel
	LevelFatal    = zerolog.FatalLevel
	LevelSuppress = zerolog.Disabled
	LevelTrace    = zerolog.TraceLevel
)

var defaultOutput = StderrWriter()

type DefaultWriter struct{}

func (DefaultWriter) Write(p []byte) (n int, err error) { return defaultOutput.Write(p) }

func Default() *Logger { return &log.Logger }

// Not safe for concurrent use.
func SetDefaultOutput(w ...io.Writer) {
	defaultOutput = zerolog.MultiLevelWriter(w...)
}

func WrapStackError(err error) error {
	return pkgerr.WithStack(err)
}
func NewStackErrorf(fmt string, args ...any) error {
	return pkgerr.Errorf(fmt, args...)
}

// Replaces all defaults.
func init() {
	log.Logger = *NewDomain("hostsmith", DefaultWriter{})
	slog.SetDefault(ToSlog(&log.Logger))

	zerolog.LevelFieldName = "l"
	zerolog.TimestampFieldName = "t"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.CallerFieldName = DomainFieldName
	zerolog.DefaultContextLogger = &log.Logger
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// SetLoggerLevel sets the global logger level.
func SetLoggerLevel(level Level) {
	zerolog.SetGlobalLevel(level)
}

// With creates a child logger with the field added to its context.
func With() Context {
	return log.Logger.With()
}

// Err starts a new message with error level with err as a field if not nil
// or with info level if err is nil.
//
// You must call Msg on the returned event in order to send the event.
func Err(err error) *Event {
	return log.Logger.Err(err)
}

// Debug starts a new message with debug level.
func Debug() *Event {
	return log.Logger.Debug()
}

// Info starts a new message with info level.
func Info() *Event {
	return log.Logger.Info()
}

// Warn starts a new message with warn level.
func Warn() *Event {
	return log.Logger.Warn()
}

// Error starts a new message with error level.
func Error() *Event {
	return log.Logger.Error()
}

// Fatal starts a new message with fatal level. The os.Exit(1) function
// is called by the Msg method.
func Fatal() *Event {
	return log.Logger.Fatal()
}
