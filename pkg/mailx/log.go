package mailx

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/seodesk/pkg/idx"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// LogMailer writes messages to the structured log instead of sending them.
// It is the default transport for local development.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) (string, error) {
	if len(msg.To) == 0 {
		return "", ErrNoRecipients
	}

	id := idx.New().String()
	slogx.FromContext(ctx).Info("mail captured",
		slog.String("message_id", id),
		slog.Any("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)
	return id, nil
}
