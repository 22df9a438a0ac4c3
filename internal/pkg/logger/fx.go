package logger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

// Fx routes fx lifecycle events into the global logger. Routine events are
// logged at debug level, failures at error level.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (f *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		f.hook(e.Err, "OnStart", e.FunctionName, e.CallerName).
			Dur("runtime", e.Runtime).
			Msg("start hook executed")
	case *fxevent.OnStopExecuted:
		f.hook(e.Err, "OnStop", e.FunctionName, e.CallerName).
			Dur("runtime", e.Runtime).
			Msg("stop hook executed")
	case *fxevent.Provided:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("module", e.ModuleName).Msg("error encountered while applying options")
			return
		}
		f.l.Debug().
			Str("constructor", e.ConstructorName).
			Str("module", e.ModuleName).
			Str("types", strings.Join(e.OutputTypeNames, ", ")).
			Msg("provided")
	case *fxevent.Decorated:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("module", e.ModuleName).Msg("error encountered while applying options")
			return
		}
		f.l.Debug().
			Str("decorator", e.DecoratorName).
			Str("module", e.ModuleName).
			Msg("decorated")
	case *fxevent.Invoked:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Str("function", e.FunctionName).Str("stack", e.Trace).Msg("invoke failed")
			return
		}
		f.l.Debug().Str("function", e.FunctionName).Str("module", e.ModuleName).Msg("invoked")
	case *fxevent.Started:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("start failed")
			return
		}
		f.l.Debug().Msg("started")
	case *fxevent.Stopped:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("stop failed")
			return
		}
		f.l.Debug().Msg("stopped")
	case *fxevent.RollingBack:
		f.l.Error().Err(e.StartErr).Msg("start failed, rolling back")
	case *fxevent.RolledBack:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("rollback failed")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			f.l.Error().Err(e.Err).Msg("custom logger initialization failed")
		}
	}
}

func (f *fxLogger) hook(err error, kind, function, caller string) *zerolog.Event {
	evt := f.l.Debug()
	if err != nil {
		evt = f.l.Error().Err(err)
	}
	return evt.
		Str("hook", kind).
		Str("callee", function).
		Str("caller", caller)
}
