package page

import (
	"context"
	"fmt"
	"io"

	"github.com/conneroisu/shelfpage/internal/logging"
)

// Notifier shows a short message to the visitor, like a browser alert.
type Notifier interface {
	Alert(ctx context.Context, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string)

// Alert calls f.
func (f NotifierFunc) Alert(ctx context.Context, message string) {
	f(ctx, message)
}

// LogNotifier writes alerts to a structured log.
type LogNotifier struct {
	Logger logging.Logger
}

// Alert logs message at info level.
func (n LogNotifier) Alert(ctx context.Context, message string) {
	if n.Logger == nil {
		return
	}
	n.Logger.Info(ctx, "Alert shown", "message", message)
}

// WriterNotifier prints each alert on its own line.
type WriterNotifier struct {
	W io.Writer
}

// Alert writes message followed by a newline.
func (n WriterNotifier) Alert(_ context.Context, message string) {
	fmt.Fprintln(n.W, message)
}

// RecordingNotifier keeps alerts in memory.
type RecordingNotifier struct {
	Messages []string
}

// Alert records message.
func (n *RecordingNotifier) Alert(_ context.Context, message string) {
	n.Messages = append(n.Messages, message)
}

// Last returns the most recent alert, or "".
func (n *RecordingNotifier) Last() string {
	if len(n.Messages) == 0 {
		return ""
	}
	return n.Messages[len(n.Messages)-1]
}
