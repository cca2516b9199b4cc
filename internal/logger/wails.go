package logger

import (
	"github.com/rs/zerolog"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger routes Wails runtime logs into zerolog.
type WailsLogger struct {
	log zerolog.Logger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

func NewWailsLogger(l zerolog.Logger) *WailsLogger {
	return &WailsLogger{log: Component(l, "wails")}
}

// Level maps the zerolog level onto the Wails log level.
func (w *WailsLogger) Level() wailslogger.LogLevel {
	switch w.log.GetLevel() {
	case zerolog.TraceLevel:
		return wailslogger.TRACE
	case zerolog.DebugLevel:
		return wailslogger.DEBUG
	case zerolog.WarnLevel:
		return wailslogger.WARNING
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}

func (w *WailsLogger) Print(message string)   { w.log.Log().Msg(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Trace().Msg(message) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug().Msg(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info().Msg(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn().Msg(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error().Msg(message) }

// Fatal logs at error level with a fatal flag.
func (w *WailsLogger) Fatal(message string) { w.log.Error().Bool("fatal", true).Msg(message) }
