package services

import "context"

type contextKey string

const jobIDKey contextKey = "job_id"

// WithJobID annotates context with a correlation identifier for one unit of
// work (one triggered file in watch mode). Loggers downstream pick it up via
// JobIDFromContext so one file's records share an id.
func WithJobID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, jobIDKey, id)
}

// JobIDFromContext extracts the correlation identifier if present.
func JobIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(jobIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
