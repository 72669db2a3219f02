package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"guess_game/pkg/logx"
)

func TestNewLogger(t *testing.T) {
	rq := require.New(t)

	t.Run("JSON", func(*testing.T) {
		var buf bytes.Buffer

		logger := logx.NewLogger(&buf, logx.FormatJSON, slog.LevelInfo)
		logger.Debug("hidden")
		logger.Info("shown", slog.String(logx.FieldGameID, "g1"))

		var record map[string]any

		rq.NoError(jsoniter.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
		rq.Equal("shown", record["msg"])
		rq.Equal("g1", record[logx.FieldGameID])
	})

	t.Run("Text", func(*testing.T) {
		var buf bytes.Buffer

		logger := logx.NewLogger(&buf, logx.FormatText, slog.LevelWarn)
		logger.Info("hidden")
		logger.Warn("read failed", logx.Error(errors.New("boom")))

		rq.NotContains(buf.String(), "hidden")
		rq.Contains(buf.String(), "read failed")
		rq.Contains(buf.String(), "boom")
	})
}
