package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charseq/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("report", slog.Int("valid", 1), slog.Int("invalid", 2))
	require.Equal(t, "report", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "valid", g[0].Key)
	assert.Equal(t, "invalid", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestLineAndField(t *testing.T) {
	line := logger.Line(42)
	require.Equal(t, "line", line.Key)
	assert.Equal(t, int64(42), line.Value.Int64())

	field := logger.Field("iban")
	require.Equal(t, "field", field.Key)
	assert.Equal(t, "iban", field.Value.String())
}

func TestPath(t *testing.T) {
	assert.Equal(t, "data.csv", logger.Path("data.csv").Value.String())
	assert.Equal(t, "-", logger.Path("").Value.String())
}

func TestRunID(t *testing.T) {
	attr := logger.RunID("abc")
	require.Equal(t, "run_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())

	assert.True(t, logger.RunID(nil).Equal(slog.Attr{}))
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(3 * time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 3*time.Second, attr.Value.Duration())
}
