package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"go.uber.org/fx/fxevent"
)

func TestFxLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &fxLogger{l: zerolog.New(&buf)}

	l.LogEvent(&fxevent.OnStartExecuted{FunctionName: "seed", CallerName: "service.RegisterSeed"})
	assert.Equal(t, "debug", gjson.GetBytes(buf.Bytes(), "level").String())
	assert.Equal(t, "OnStart", gjson.GetBytes(buf.Bytes(), "hook").String())

	buf.Reset()
	l.LogEvent(&fxevent.Started{Err: errors.New("store unreachable")})
	assert.Equal(t, "error", gjson.GetBytes(buf.Bytes(), "level").String())
	assert.Equal(t, "store unreachable", gjson.GetBytes(buf.Bytes(), "error").String())
}
