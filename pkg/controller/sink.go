package controller

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-tokensale/pkg/sale"
)

// Sink receives every configuration accepted by Submit. It is an
// observability hook; nothing downstream depends on it.
type Sink interface {
	Emit(ctx context.Context, cfg sale.Configuration) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, cfg sale.Configuration) error

func (fn SinkFunc) Emit(ctx context.Context, cfg sale.Configuration) error {
	return fn(ctx, cfg)
}

// LogSink writes accepted configurations to a zap logger together with the
// derived summary.
type LogSink struct {
	Logger *zap.Logger
}

// NewLogSink returns a LogSink writing to logger (a no-op logger when nil).
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{Logger: logger}
}

func (s *LogSink) Emit(_ context.Context, cfg sale.Configuration) error {
	fields := []zap.Field{zap.Object("sale", cfg)}

	summary, err := sale.Summarize(cfg)
	if err != nil {
		fields = append(fields, zap.NamedError("summaryError", err))
	}
	if summary.SupplyBaseUnits != nil {
		fields = append(fields, zap.Stringer("supplyBaseUnits", summary.SupplyBaseUnits))
	}
	fields = append(fields,
		zap.Stringer("softCapWei", summary.SoftCapWei),
		zap.Stringer("hardCapWei", summary.HardCapWei),
	)

	s.Logger.Info("token sale configuration generated", fields...)
	return nil
}

type discardSink struct{}

func (discardSink) Emit(context.Context, sale.Configuration) error { return nil }
