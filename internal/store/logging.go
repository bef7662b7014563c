package store

import (
	"context"
	"time"

	"go.uber.org/zap"
)

var _ KV = (*Logging)(nil)

// Logging wraps a KV and records every call at debug level. Calls slower
// than SlowThreshold are logged at warn.
type Logging struct {
	inner         KV
	logger        *zap.Logger
	SlowThreshold time.Duration
}

func NewLogging(inner KV, logger *zap.Logger) *Logging {
	return &Logging{
		inner:         inner,
		logger:        logger.Named("kv"),
		SlowThreshold: 250 * time.Millisecond,
	}
}

func (l *Logging) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	value, ok, err := l.inner.Get(ctx, key)
	l.record("get", key, start, err, zap.Bool("found", ok))
	return value, ok, err
}

func (l *Logging) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := l.inner.Set(ctx, key, value)
	l.record("set", key, start, err, zap.Int("bytes", len(value)))
	return err
}

func (l *Logging) Close(ctx context.Context) error {
	return l.inner.Close(ctx)
}

func (l *Logging) record(op, key string, start time.Time, err error, extra ...zap.Field) {
	duration := time.Since(start)
	fields := append([]zap.Field{
		zap.String("operation", op),
		zap.String("key", key),
		zap.Duration("duration", duration),
	}, extra...)

	if err != nil {
		l.logger.Debug("kv operation failed", append(fields, zap.Error(err))...)
		return
	}

	level := zap.DebugLevel
	message := "kv operation completed"
	if l.SlowThreshold > 0 && duration > l.SlowThreshold {
		level = zap.WarnLevel
		message = "slow kv operation completed"
	}
	l.logger.Check(level, message).Write(fields...)
}
