package logging

import (
	"go.uber.org/zap"

	"tinyfox/internal/app/links"
)

// KV adapts a zap logger to the key/value logger used by the application layer.
type KV struct {
	l *zap.SugaredLogger
}

func NewKV(l *zap.Logger) KV {
	if l == nil {
		l = zap.NewNop()
	}

	return KV{l: l.Sugar()}
}

var _ links.Logger = KV{}

func (k KV) With(kv ...any) links.Logger {
	return KV{l: k.l.With(kv...)}
}

func (k KV) Info(msg string, kv ...any)  { k.l.Infow(msg, kv...) }
func (k KV) Warn(msg string, kv ...any)  { k.l.Warnw(msg, kv...) }
func (k KV) Error(msg string, kv ...any) { k.l.Errorw(msg, kv...) }
