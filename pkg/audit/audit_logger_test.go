package audit_test

import (
	"context"
	"testing"

	"ats-backend/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMasking(t *testing.T) {
	assert.Equal(t, "j***@example.com", audit.MaskEmail("jane@example.com"))
	assert.Equal(t, "***", audit.MaskEmail("a@"))
	assert.Equal(t, "******7890", audit.MaskPhone("1234567890"))
	assert.Equal(t, "***", audit.MaskPhone("123"))
}

func TestCandidateCreatedIsMasked(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := audit.NewWithZap(zap.New(core), "ats", "test")

	ctx := audit.WithRequestID(context.Background(), "req-1")
	l.CandidateCreated(ctx, 7, "jane@example.com", "1234567890")

	entries := logs.FilterMessage(string(audit.EventCandidateCreated)).All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(7), fields["candidate_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.NotContains(t, fields["details"], "jane@example.com")
	assert.Contains(t, fields["details"], "j***@example.com")
}

func TestRejectedPayloadIsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := audit.NewWithZap(zap.New(core), "ats", "test")

	l.PayloadRejected(context.Background(), "'email' is a required property", "")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.NotContains(t, logs.All()[0].ContextMap()["details"], "email_hash")
}

func TestRejectedPayloadHashesEmail(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := audit.NewWithZap(zap.New(core), "ats", "test")

	l.PayloadRejected(context.Background(), "bad phone", " Jane@Example.com ")

	require.Equal(t, 1, logs.Len())
	details := logs.All()[0].ContextMap()["details"]
	assert.NotContains(t, details, "jane@example.com")
	assert.NotContains(t, details, "Jane@Example.com")
	assert.Contains(t, details, audit.HashValue("jane@example.com"))
	assert.Len(t, audit.HashValue("jane@example.com"), 16)
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *audit.Logger
	assert.NotPanics(t, func() {
		l.StatusChanged(context.Background(), 1, "APPLIED", "SHORTLISTED")
		_ = l.Sync()
	})
}
