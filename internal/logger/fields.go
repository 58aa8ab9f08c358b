package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldOperation is the structured log field key for the API operation name.
	FieldOperation = "operation"
	// FieldRequestID is the structured log field key for the per-call request id.
	FieldRequestID = "request_id"
	// FieldResumeID is the structured log field key for a résumé identifier.
	FieldResumeID = "resume_id"
	// FieldJobID is the structured log field key for a job posting identifier.
	FieldJobID = "job_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// RequestFields returns the fields that identify a single API call.
func RequestFields(operation, requestID string) []zap.Field {
	return StringFields(
		StringField{Key: FieldOperation, Value: operation},
		StringField{Key: FieldRequestID, Value: requestID},
	)
}

// WithRequest attaches the call identification fields to the logger.
func WithRequest(logger *zap.Logger, operation, requestID string) *zap.Logger {
	return WithFields(logger, RequestFields(operation, requestID)...)
}
