package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"accounts/config"
	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return buf, newGormSlogLogger(base, cfg)
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	buf, l := newBufferedGormLogger(nil)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	l.Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "request_id=req-1")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(nil)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 0), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	buf, l := newBufferedGormLogger(nil)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)", 1), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	buf, l := newBufferedGormLogger(&config.Config{})
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), nil)
	assert.Empty(t, buf.String())

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	buf, l = newBufferedGormLogger(debugCfg)
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), nil)
	assert.Contains(t, buf.String(), "GORM query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), nil)
	assert.Empty(t, buf.String())
}
