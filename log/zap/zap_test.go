package zap

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/nanowire"
)

func TestLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := New(zap.New(core))

	l.Debug("hidden", nanowire.Fields{"k": 1})
	l.Info("self-healed entry", nanowire.Fields{"key": "entry:u:1", "reason": "corrupt"})
	l.Warn("warn", nil)
	l.Error("failed", nanowire.Fields{"err": errors.New("boom")})

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3 (debug filtered)", len(entries))
	}
	if entries[0].Message != "self-healed entry" || entries[0].Level != zapcore.InfoLevel {
		t.Fatalf("first entry = %+v", entries[0])
	}
	ctx := entries[0].Context
	if len(ctx) != 2 || ctx[0].Key != "key" || ctx[1].Key != "reason" {
		t.Fatalf("fields not in key order: %+v", ctx)
	}
	if got := entries[0].ContextMap()["reason"]; got != "corrupt" {
		t.Fatalf("reason = %v", got)
	}
	if entries[1].Level != zapcore.WarnLevel || len(entries[1].Context) != 0 {
		t.Fatalf("warn entry = %+v", entries[1])
	}
	if entries[2].Level != zapcore.ErrorLevel {
		t.Fatalf("error entry level = %v", entries[2].Level)
	}
}
