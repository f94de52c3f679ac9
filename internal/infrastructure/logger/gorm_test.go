package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewGormLogger_Defaults(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Warn)
	assert.Equal(t, 200*time.Millisecond, gl.slowThreshold)
	assert.True(t, gl.skipNotFound)
}

func TestGormLogger_Options(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Warn,
		WithSlowThreshold(time.Second),
		WithIgnoreRecordNotFoundError(false),
	)
	assert.Equal(t, time.Second, gl.slowThreshold)
	assert.False(t, gl.skipNotFound)
}

func TestGormLogger_LogMode(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Warn)
	changed := gl.LogMode(gormlogger.Info)

	// LogMode returns a copy, the original is untouched
	assert.NotSame(t, gl, changed)
	assert.Equal(t, gormlogger.Warn, gl.level)
}

func TestGormLogger_TraceDoesNotPanic(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Info)
	ctx := WithRequestID(context.Background(), "req-1")

	fc := func() (string, int64) { return "SELECT 1", 1 }
	gl.Trace(ctx, time.Now(), fc, nil)
	gl.Trace(ctx, time.Now().Add(-time.Second), fc, nil) // slow path
	gl.Trace(ctx, time.Now(), fc, errors.New("db down")) // error path
	gl.Trace(ctx, time.Now(), fc, gormlogger.ErrRecordNotFound)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("other"))
}
