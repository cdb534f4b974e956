package ports

import "context"

// DiagnosticsPort is a write-only sink for human-readable progress and
// failure messages. The resolution logic writes to it but never reads
// from it and never changes behavior based on it.
type DiagnosticsPort interface {
	Info(ctx context.Context, msg string)
	Error(ctx context.Context, msg string, err error)
}
