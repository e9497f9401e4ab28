package bootstrap

import (
	"context"

	"go-hotel/internal/shared/contextutil"

	"go.uber.org/zap"
)

// AuditLog is one operational event worth keeping apart from debug output.
type AuditLog struct {
	Action  string
	Actor   string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// ZapAuditLogger writes audit entries on a dedicated "audit" logger so they
// can be routed separately by the log shipper.
type ZapAuditLogger struct {
	logger *zap.Logger
}

func NewZapAuditLogger(logger *zap.Logger) *ZapAuditLogger {
	if logger == nil {
		logger = zap.L()
	}
	return &ZapAuditLogger{logger: logger.Named("audit")}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
	}
	if entry.Actor != "" {
		fields = append(fields, zap.String("actor", entry.Actor))
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	for k, v := range entry.Meta {
		fields = append(fields, zap.Any(k, v))
	}
	l.logger.Info("audit", fields...)
}
