package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/cryptox"
	"github.com/aussiebroadwan/seodesk/pkg/idx"
	"github.com/aussiebroadwan/seodesk/pkg/metrics"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// InviteService issues invites and moves them through their lifecycle:
// PENDING, then exactly one of ACCEPTED, REJECTED, REVOKED or EXPIRED.
type InviteService struct {
	Store    store.Store
	Access   *Access
	Notifier Notifier
	Resolver MembershipResolver

	// Clock returns the current time; nil means time.Now.
	Clock func() time.Time
}

func (s *InviteService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// Issue creates a PENDING invite for email on websiteID and sends the invite
// e-mail. The returned invite carries the raw token.
func (s *InviteService) Issue(
	ctx context.Context,
	websiteID string,
	email string,
	invitedBy string,
	message string,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the address.
	email, err := normalizeInviteEmail(email)
	if err != nil {
		return domain.Invite{}, err
	}

	// 2. The issuer must be able to administer the website.
	if _, err := s.Access.RequireWebsite(ctx, invitedBy, websiteID); err != nil {
		return domain.Invite{}, err
	}

	// 3. Check the latest invite for this pair.
	latest, err := s.Store.Invites().GetLatestInvite(ctx, email, websiteID)
	switch {
	case err == nil && latest.Status == domain.InviteStatusPending:
		log.Warn("invite already pending",
			slog.String("website_id", websiteID),
			slog.String("invite_id", latest.ID),
		)
		return domain.Invite{}, ErrPendingInviteExists
	case err == nil && latest.Status == domain.InviteStatusAccepted:
		log.Warn("invitee already accepted an invite",
			slog.String("website_id", websiteID),
			slog.String("invite_id", latest.ID),
		)
		return domain.Invite{}, ErrEmailAlreadyMember
	case err != nil && !errors.Is(err, store.ErrNotFound):
		log.Error("failed to fetch latest invite", slog.Any("error", err))
		return domain.Invite{}, err
	}

	// 4. Generate the bearer token; only its fingerprint is stored.
	token, err := cryptox.GenerateHexToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return domain.Invite{}, err
	}

	now := s.now()
	inv := domain.Invite{
		ID:        idx.NewAt(now).String(),
		WebsiteID: websiteID,
		Email:     email,
		TokenHash: cryptox.FingerprintToken(token),
		Status:    domain.InviteStatusPending,
		InvitedBy: invitedBy,
		Message:   strings.TrimSpace(message),
		ExpiresAt: now.Add(domain.InviteTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 5. Persist. The partial unique index catches a concurrent issue.
	if err := s.Store.Invites().CreateInvite(ctx, inv); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invite{}, ErrPendingInviteExists
		}
		log.Error("failed to create invite", slog.Any("error", err))
		return domain.Invite{}, err
	}
	inv.Token = token
	metrics.InviteIssued()

	log.Info("invite issued",
		slog.String("invite_id", inv.ID),
		slog.String("website_id", websiteID),
		slog.String("invited_by", invitedBy),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 6. Best effort e-mail.
	if s.Notifier != nil {
		s.Notifier.NotifyInvite(ctx, inv)
	}

	return inv, nil
}

// BulkIssue invites email to every website in websiteIDs. Failures for a
// single website are logged and skipped; only the created invites are
// returned.
func (s *InviteService) BulkIssue(
	ctx context.Context,
	email string,
	websiteIDs []string,
	invitedBy string,
	message string,
) ([]domain.Invite, error) {
	log := slogx.FromContext(ctx)

	if _, err := normalizeInviteEmail(email); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(websiteIDs))
	out := make([]domain.Invite, 0, len(websiteIDs))
	for _, websiteID := range websiteIDs {
		if _, dup := seen[websiteID]; dup {
			continue
		}
		seen[websiteID] = struct{}{}

		inv, err := s.Issue(ctx, websiteID, email, invitedBy, message)
		if err != nil {
			log.Warn("skipping website in bulk invite",
				slog.String("website_id", websiteID),
				slog.String("reason", err.Error()),
			)
			continue
		}
		out = append(out, inv)
	}

	log.Info("bulk invite completed",
		slog.Int("requested", len(websiteIDs)),
		slog.Int("created", len(out)),
	)
	return out, nil
}

// GetByToken returns the invite behind a public link while it can still be
// accepted. Looking up an expired invite does not change its status.
func (s *InviteService) GetByToken(ctx context.Context, token string) (domain.Invite, error) {
	inv, err := s.lookupToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return domain.Invite{}, ErrInviteNotFoundOrExpired
		}
		return domain.Invite{}, err
	}
	if !inv.IsPending() {
		return domain.Invite{}, ErrInvitationNotValid
	}
	if inv.IsExpired(s.now()) {
		return domain.Invite{}, ErrInvitationExpired
	}
	return inv, nil
}

// Accept redeems token for the account registered under the invite's e-mail.
// The membership and the status change are written in one transaction.
func (s *InviteService) Accept(ctx context.Context, token string) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	// 1. Look up the invite.
	inv, err := s.lookupToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInviteNotFound) {
			return domain.Member{}, ErrInviteNotFoundOrExpired
		}
		return domain.Member{}, err
	}
	log = log.With(slog.String("invite_id", inv.ID))

	// 2. Only PENDING invites can be accepted.
	if !inv.IsPending() {
		log.Warn("accept attempted on processed invite", slog.String("status", string(inv.Status)))
		return domain.Member{}, &InviteStateError{Status: inv.Status}
	}

	// 3. Expiry is detected here, lazily.
	now := s.now()
	if inv.IsExpired(now) {
		if err := s.Store.Invites().MarkInviteExpired(ctx, inv.ID, now); err != nil {
			if !errors.Is(err, store.ErrPreconditionFailed) {
				log.Error("failed to mark invite expired", slog.Any("error", err))
				return domain.Member{}, err
			}
		} else {
			metrics.InviteTransition(string(domain.InviteStatusExpired))
			log.Info("invite expired on accept")
		}
		return domain.Member{}, ErrInviteExpired
	}

	// 4. Resolve the membership and flip the status atomically.
	var member domain.Member
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := s.Resolver.Resolve(ctx, tx, inv, now)
		if err != nil {
			return err
		}
		if err := tx.Invites().MarkInviteAccepted(ctx, inv.ID, m.ID, now); err != nil {
			if errors.Is(err, store.ErrPreconditionFailed) {
				log.Warn("invite changed state during accept")
				return ErrInviteAlreadyProcessed
			}
			log.Error("failed to mark invite accepted", slog.Any("error", err))
			return err
		}
		member = m
		return nil
	})
	if err != nil {
		return domain.Member{}, err
	}

	metrics.InviteTransition(string(domain.InviteStatusAccepted))
	log.Info("invite accepted",
		slog.String("member_id", member.ID),
		slog.String("website_id", member.WebsiteID),
		slog.String("user_id", member.UserID),
	)
	return member, nil
}

// Reject declines an invite by token, recording an optional reason.
func (s *InviteService) Reject(ctx context.Context, token, reason string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.lookupToken(ctx, token)
	if err != nil {
		return err
	}
	if !inv.IsPending() {
		return &InviteStateError{Status: inv.Status}
	}

	if err := s.Store.Invites().MarkInviteRejected(ctx, inv.ID, strings.TrimSpace(reason), s.now()); err != nil {
		if errors.Is(err, store.ErrPreconditionFailed) {
			return ErrInviteAlreadyProcessed
		}
		log.Error("failed to reject invite", slog.Any("error", err))
		return err
	}

	metrics.InviteTransition(string(domain.InviteStatusRejected))
	log.Info("invite rejected", slog.String("invite_id", inv.ID))
	return nil
}

// Revoke withdraws a PENDING invite by id. actorID must be able to
// administer the invite's website.
func (s *InviteService) Revoke(ctx context.Context, inviteID, actorID string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.getForAdmin(ctx, inviteID, actorID)
	if err != nil {
		return err
	}
	if !inv.IsPending() {
		return ErrOnlyPendingRevocable
	}

	if err := s.Store.Invites().MarkInviteRevoked(ctx, inv.ID, s.now()); err != nil {
		if errors.Is(err, store.ErrPreconditionFailed) {
			return ErrOnlyPendingRevocable
		}
		log.Error("failed to revoke invite", slog.Any("error", err))
		return err
	}

	metrics.InviteTransition(string(domain.InviteStatusRevoked))
	log.Info("invite revoked",
		slog.String("invite_id", inv.ID),
		slog.String("revoked_by", actorID),
	)
	return nil
}

// Resend rotates the token of a PENDING invite, restarts its validity window
// and sends a new e-mail. The returned invite carries the new raw token.
func (s *InviteService) Resend(ctx context.Context, inviteID, actorID string) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.getForAdmin(ctx, inviteID, actorID)
	if err != nil {
		return domain.Invite{}, err
	}
	if !inv.IsPending() {
		return domain.Invite{}, ErrOnlyPendingResend
	}

	token, err := cryptox.GenerateHexToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return domain.Invite{}, err
	}

	now := s.now()
	hash := cryptox.FingerprintToken(token)
	expiresAt := now.Add(domain.InviteTTL)
	if err := s.Store.Invites().RotateInviteToken(ctx, inv.ID, hash, expiresAt, now); err != nil {
		if errors.Is(err, store.ErrPreconditionFailed) {
			return domain.Invite{}, ErrOnlyPendingResend
		}
		log.Error("failed to rotate invite token", slog.Any("error", err))
		return domain.Invite{}, err
	}

	inv.TokenHash = hash
	inv.Token = token
	inv.ExpiresAt = expiresAt
	inv.UpdatedAt = now

	log.Info("invite resent",
		slog.String("invite_id", inv.ID),
		slog.Time("expires_at", expiresAt),
	)

	if s.Notifier != nil {
		s.Notifier.NotifyInvite(ctx, inv)
	}
	return inv, nil
}

// List returns one page of a website's invites, newest first. status is
// case-insensitive; empty matches every status.
func (s *InviteService) List(
	ctx context.Context,
	websiteID, actorID string,
	req domain.PageRequest,
	status string,
) (domain.Page[domain.Invite], error) {
	var filter domain.InviteStatus
	if status != "" {
		st, ok := domain.ParseInviteStatus(status)
		if !ok {
			return domain.Page[domain.Invite]{}, ErrInvalidStatus
		}
		filter = st
	}

	if _, err := s.Access.RequireWebsite(ctx, actorID, websiteID); err != nil {
		return domain.Page[domain.Invite]{}, err
	}

	items, err := s.Store.Invites().ListInvitesByWebsite(ctx, websiteID, filter, req.Limit, req.Offset())
	if err != nil {
		return domain.Page[domain.Invite]{}, err
	}
	total, err := s.Store.Invites().CountInvitesByWebsite(ctx, websiteID, filter)
	if err != nil {
		return domain.Page[domain.Invite]{}, err
	}
	return domain.NewPage(items, total, req), nil
}

func (s *InviteService) lookupToken(ctx context.Context, token string) (domain.Invite, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Invite{}, ErrInviteNotFound
	}
	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch invite", slog.Any("error", err))
		return domain.Invite{}, err
	}
	return inv, nil
}

func (s *InviteService) getForAdmin(ctx context.Context, inviteID, actorID string) (domain.Invite, error) {
	inv, err := s.Store.Invites().GetInviteByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		return domain.Invite{}, err
	}
	if _, err := s.Access.RequireWebsite(ctx, actorID, inv.WebsiteID); err != nil {
		return domain.Invite{}, err
	}
	return inv, nil
}

// normalizeInviteEmail accepts a bare address only, no display name.
func normalizeInviteEmail(raw string) (string, error) {
	email := domain.NormalizeEmail(raw)
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "", ErrInvalidEmail
	}
	return email, nil
}
