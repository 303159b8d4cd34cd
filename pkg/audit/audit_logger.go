package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of candidate lifecycle event
type EventType string

const (
	EventCandidateCreated       EventType = "candidate_created"
	EventCandidateStatusChanged EventType = "candidate_status_changed"
	EventPayloadRejected        EventType = "candidate_rejected_payload"
)

// Event is one audit record.
type Event struct {
	Timestamp   time.Time
	Event       EventType
	CandidateID int64
	RequestID   string
	Details     map[string]interface{}
}

// Logger writes candidate lifecycle events as structured JSON. A nil *Logger
// discards everything.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New builds a production zap logger writing to stdout.
func New(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	return &Logger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// NewWithZap wraps an existing zap logger, mainly for tests with zaptest/observer.
func NewWithZap(z *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{zapLogger: z, serviceName: serviceName, environment: environment}
}

func NewNop() *Logger {
	return &Logger{zapLogger: zap.NewNop()}
}

// Log writes event at a level chosen by its type.
func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil || l.zapLogger == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = requestIDFrom(ctx)
	}

	level := zapcore.InfoLevel
	if event.Event == EventPayloadRejected {
		level = zapcore.WarnLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.CandidateID != 0 {
		fields = append(fields, zap.Int64("candidate_id", event.CandidateID))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// CandidateCreated records a new candidate. Contact details are masked.
func (l *Logger) CandidateCreated(ctx context.Context, id int64, email, phone string) {
	l.Log(ctx, Event{
		Event:       EventCandidateCreated,
		CandidateID: id,
		Details: map[string]interface{}{
			"email":        MaskEmail(email),
			"phone_number": MaskPhone(phone),
		},
	})
}

// StatusChanged records a completed status transition.
func (l *Logger) StatusChanged(ctx context.Context, id int64, from, to string) {
	l.Log(ctx, Event{
		Event:       EventCandidateStatusChanged,
		CandidateID: id,
		Details:     map[string]interface{}{"from": from, "to": to},
	})
}

// PayloadRejected records a creation payload that failed validation. A
// non-empty email is logged only as a hash.
func (l *Logger) PayloadRejected(ctx context.Context, reason, email string) {
	details := map[string]interface{}{"reason": reason}
	if email != "" {
		details["email_hash"] = HashValue(strings.ToLower(strings.TrimSpace(email)))
	}
	l.Log(ctx, Event{
		Event:   EventPayloadRejected,
		Details: details,
	})
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l == nil || l.zapLogger == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := -1
	for i, c := range email {
		if c == '@' {
			atIndex = i
			break
		}
	}
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// MaskPhone keeps the last four digits.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return "***"
	}
	return "******" + phone[len(phone)-4:]
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

type requestIDKey struct{}

// WithRequestID stores the request id so events logged under ctx carry it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
