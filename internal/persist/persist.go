// Package persist reads and writes mood records through a store.KV on a
// best-effort basis: failures are logged as warnings and never returned.
package persist

import (
	"context"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"drift/internal/mood"
	"drift/internal/store"
)

type Adapter struct {
	kv     store.KV
	logger *zap.Logger
}

func New(kv store.KV, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{kv: kv, logger: logger.Named("persist")}
}

// Load returns the record stored under key. ok is false when nothing usable
// is stored: the key is absent, the read failed, or the value is not an
// object with numeric x and y. Partial records are rejected whole.
func (a *Adapter) Load(ctx context.Context, key string) (mood.Coords, bool) {
	raw, ok, err := a.kv.Get(ctx, key)
	if err != nil {
		a.logger.Warn("failed to read stored drift mood", zap.String("key", key), zap.Error(err))
		return mood.Coords{}, false
	}
	if !ok || raw == "" {
		return mood.Coords{}, false
	}

	c, err := decode(raw)
	if err != nil {
		a.logger.Warn("failed to parse stored drift mood", zap.String("key", key), zap.Error(err))
		return mood.Coords{}, false
	}
	return c, true
}

// Save writes c under key. A failed write leaves the caller's in-memory
// state authoritative.
func (a *Adapter) Save(ctx context.Context, key string, c mood.Coords) {
	raw, err := encode(c)
	if err == nil {
		err = a.kv.Set(ctx, key, raw)
	}
	if err != nil {
		a.logger.Warn("failed to save drift mood", zap.String("key", key), zap.Error(err))
	}
}

func decode(raw string) (mood.Coords, error) {
	if !gjson.Valid(raw) {
		return mood.Coords{}, fmt.Errorf("invalid json")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return mood.Coords{}, fmt.Errorf("expected object, got %s", doc.Type)
	}

	x, y := doc.Get("x"), doc.Get("y")
	if x.Type != gjson.Number || y.Type != gjson.Number {
		return mood.Coords{}, fmt.Errorf("x and y must be numbers")
	}
	return mood.Coords{X: x.Float(), Y: y.Float()}, nil
}

func encode(c mood.Coords) (string, error) {
	if !finite(c.X) || !finite(c.Y) {
		return "", fmt.Errorf("coordinates must be finite: (%v, %v)", c.X, c.Y)
	}
	raw, err := sjson.Set(`{}`, "x", c.X)
	if err != nil {
		return "", fmt.Errorf("encoding x: %w", err)
	}
	raw, err = sjson.Set(raw, "y", c.Y)
	if err != nil {
		return "", fmt.Errorf("encoding y: %w", err)
	}
	return raw, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
