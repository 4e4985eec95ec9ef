package service

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/mailx"
	"github.com/aussiebroadwan/seodesk/pkg/metrics"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

const (
	inviteSubject        = "You've Been Invited to Join Our Team"
	DefaultFrontendURL   = "http://localhost:3000"
	DefaultNotifyTimeout = 10 * time.Second
	acceptInvitePath     = "/dashboard/website-settings/accept-invite"
)

// Notifier delivers the invite e-mail. Implementations must not fail the
// caller: delivery problems are logged only.
type Notifier interface {
	NotifyInvite(ctx context.Context, inv domain.Invite)
}

var inviteHTML = template.Must(template.New("invite").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">You've Been Invited to Join a Team</h2>
  <p>Hello,</p>
  <p>{{.Inviter}} has invited you to join their team on SEODesk.</p>
  {{- if .Message}}
  <blockquote style="border-left: 3px solid #ddd; margin: 16px 0; padding-left: 12px; color: #555;">{{.Message}}</blockquote>
  {{- end}}
  <p>Click the button below to accept the invitation and join the team:</p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="{{.Link}}" style="background-color: #007bff; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">Accept Invitation</a>
  </div>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">{{.Link}}</p>
  <p><strong>This invitation will expire in 7 days.</strong></p>
  <p>If you didn't expect this invitation, you can safely ignore this email.</p>
  <hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
  <p style="color: #666; font-size: 12px;">This is an automated message, please do not reply.</p>
</div>`))

type inviteEmail struct {
	Inviter string
	Message string
	Link    string
}

// InviteNotifier renders the invite e-mail and hands it to a mailx.Mailer.
type InviteNotifier struct {
	Store       store.Store
	Mailer      mailx.Mailer
	FrontendURL string
	Timeout     time.Duration
}

// AcceptLink is the frontend page that consumes the invite token.
func (n *InviteNotifier) AcceptLink(token string) string {
	base := strings.TrimRight(n.FrontendURL, "/")
	if base == "" {
		base = DefaultFrontendURL
	}
	return base + acceptInvitePath + "?token=" + url.QueryEscape(token)
}

// NotifyInvite sends the e-mail for inv, which must carry its raw token.
func (n *InviteNotifier) NotifyInvite(ctx context.Context, inv domain.Invite) {
	log := slogx.FromContext(ctx).With(slog.String("invite_id", inv.ID))

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data := inviteEmail{
		Inviter: n.inviterName(ctx, inv.InvitedBy),
		Message: inv.Message,
		Link:    n.AcceptLink(inv.Token),
	}

	var html bytes.Buffer
	if err := inviteHTML.Execute(&html, data); err != nil {
		log.Error("failed to render invite email", slog.Any("error", err))
		metrics.InviteNotification("failed")
		return
	}

	msgID, err := n.Mailer.Send(ctx, mailx.Message{
		To:      []string{inv.Email},
		Subject: inviteSubject,
		HTML:    html.String(),
		Text:    inviteText(data),
	})
	if err != nil {
		log.Warn("failed to send invite email", slog.Any("error", err))
		metrics.InviteNotification("failed")
		return
	}

	metrics.InviteNotification("sent")
	log.Debug("invite email sent", slog.String("message_id", msgID))
}

// inviterName falls back from full name to e-mail to "Someone".
func (n *InviteNotifier) inviterName(ctx context.Context, userID string) string {
	if userID == "" || n.Store == nil {
		return "Someone"
	}
	u, err := n.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "Someone"
	}
	if name := u.FullName(); name != "" {
		return name
	}
	if u.Email != "" {
		return u.Email
	}
	return "Someone"
}

func inviteText(d inviteEmail) string {
	var b strings.Builder
	b.WriteString(d.Inviter + " has invited you to join their team on SEODesk.\n\n")
	if d.Message != "" {
		b.WriteString(d.Message + "\n\n")
	}
	b.WriteString("Accept the invitation: " + d.Link + "\n\n")
	b.WriteString("This invitation will expire in 7 days.\n")
	return b.String()
}
