package logger_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/logger"
)

func TestZapLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.NewFromZap(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "rid-1")
	ctx = ctxmeta.WithOrigin(ctx, ctxmeta.OriginWeb)
	l.Warnf(ctx, "cart line %d removed", 7)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.Message != "cart line 7 removed" {
		t.Fatalf("unexpected entry: level=%v msg=%q", e.Level, e.Message)
	}
	fields := e.ContextMap()
	if fields["request_id"] != "rid-1" || fields["origin"] != "web" {
		t.Fatalf("context fields missing: %v", fields)
	}
}

func TestZapLogger_NoFieldsWithoutMetadata(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.NewFromZap(zap.New(core))

	l.Debugf(context.Background(), "plain")
	l.Infof(context.Background(), "plain")
	l.Errorf(context.Background(), "plain")

	if logs.Len() != 3 {
		t.Fatalf("want 3 entries, got %d", logs.Len())
	}
	for _, e := range logs.All() {
		if len(e.Context) != 0 {
			t.Fatalf("unexpected fields: %v", e.Context)
		}
	}
}
