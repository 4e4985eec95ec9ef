// Package mailx sends transactional e-mail.
package mailx

import (
	"context"
	"errors"
)

// Message is a single e-mail with an HTML body and a plain-text fallback.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

var ErrNoRecipients = errors.New("mailx: message has no recipients")

// Mailer delivers messages and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}
