package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"crowdmap/config"
	deliverycontext "crowdmap/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg), &buf
}

func query() (string, int64) { return `SELECT * FROM "locations"`, 3 }

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("failed query", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), query, errors.New("relation does not exist"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "rows=3")
	})

	t.Run("record not found is quiet", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
		assert.NotContains(t, buf.String(), "failed")
		assert.Contains(t, buf.String(), "GORM query")
	})

	t.Run("slow query", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query outside debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), query, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), query, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(true)

	var scoped bytes.Buffer
	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "r-9")))

	l.Info(ctx, "migrated %d tables", 6)
	assert.Contains(t, scoped.String(), "request_id=r-9")
	assert.Contains(t, scoped.String(), `message="migrated 6 tables"`)
}
