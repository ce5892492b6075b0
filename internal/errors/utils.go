package errors

import (
	"context"
	"errors"
	"os"
	"strings"
)

// returns a client-safe message for an error. In production internal
// detail is replaced with a generic phrase; in development the raw
// message helps debugging.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	isProduction := os.Getenv("ENVIRONMENT") == "production"
	if !isProduction {
		return err.Error()
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}

	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "request timed out"
	case strings.Contains(msg, "database") || strings.Contains(msg, "sql") ||
		strings.Contains(msg, "postgres") || strings.Contains(msg, "pgx"):
		return "database operation failed"
	case strings.Contains(msg, "connection") || strings.Contains(msg, "dial") ||
		strings.Contains(msg, "network"):
		return "connection error occurred"
	case strings.Contains(msg, "validation") || strings.Contains(msg, "binding") ||
		strings.Contains(msg, "invalid") || strings.Contains(msg, "required"):
		return "validation failed"
	default:
		return "an error occurred"
	}
}
