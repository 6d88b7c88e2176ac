package slogpretty

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerwill90/pathstore/internal/ansi"
)

func TestLogHandler_Handle(t *testing.T) {
	bufWo := bytes.NewBuffer(nil)
	bufWe := bytes.NewBuffer(nil)

	h := New(bufWo, bufWe, slog.LevelDebug)

	record := slog.Record{
		Time:    time.Date(2024, 06, 26, 0, 0, 0, 0, time.UTC),
		Message: "pattern registered",
		Level:   slog.LevelDebug,
	}
	record.Add("pattern", "/users/:name")
	record.Add("params", []string{"name"})
	record.Add("path", "/users/jKeyLu")
	record.Add(slog.Group("node", slog.String("prefix", "users/")))
	require.NoError(t, h.Handle(context.Background(), record))
	record.Level = slog.LevelInfo
	require.NoError(t, h.Handle(context.Background(), record))
	record.Level = slog.LevelWarn
	require.NoError(t, h.Handle(context.Background(), record))
	assert.Empty(t, bufWe.String())

	record.Level = slog.LevelError
	require.NoError(t, h.Handle(context.Background(), record))

	lines := bytes.Split(bytes.TrimSuffix(bufWo.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, bytes.HasPrefix(line, []byte("[PATHSTORE] ")))
		assert.Contains(t, string(line), "2024-06-26 00:00:00")
		assert.Contains(t, string(line), " | pattern registered | ")
		assert.Contains(t, string(line), ansi.FgYellow+"/users/:name"+ansi.Reset)
		assert.Contains(t, string(line), ansi.BgBlue+" /users/jKeyLu "+ansi.Reset)
		assert.Contains(t, string(line), ansi.FgGreen+"[name]"+ansi.Reset)
	}
	assert.Contains(t, bufWe.String(), ansi.FgRed+"ERROR"+ansi.Reset)
	assert.True(t, bytes.HasSuffix(bufWe.Bytes(), []byte(ansi.Reset+"\n")))
}

func TestLogHandler_Enabled(t *testing.T) {
	h := New(bytes.NewBuffer(nil), bytes.NewBuffer(nil), slog.LevelInfo)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestLogHandler_WithAttrsAndGroup(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	h := New(buf, buf, slog.LevelDebug).WithGroup("store").WithAttrs([]slog.Attr{slog.Bool("backtrack", true)})

	logger := slog.New(h)
	logger.Debug("store reset")

	assert.Contains(t, buf.String(), "store.backtrack=")
	assert.Contains(t, buf.String(), ansi.FgCyan+"true"+ansi.Reset)
}
