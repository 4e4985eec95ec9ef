package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/aussiebroadwan/seodesk/pkg/jwtx"
)

// devIssuer is used for dev tokens when AUTH_ISSUER is unset.
const devIssuer = "seodesk-dev"

// AuthKeys holds what the router needs to verify access tokens.
type AuthKeys struct {
	KeySet   *jwtx.KeySet
	Verifier jwtx.Verifier
	Issuer   string

	// DevSigner is set only when dev tokens are enabled.
	DevSigner jwtx.Signer
}

// InitAuthKeys loads the verification keys.
//
// Modes:
//   - JWKS: keys are fetched from AUTH_JWKS_URL and refreshed by a
//     JWKSRefresher. Tokens are issued by the identity provider.
//   - dev: an Ed25519 key is generated on startup and served on
//     /.well-known/jwks.json. Tokens are minted by POST /v1/dev/token and
//     become invalid when the service restarts.
func InitAuthKeys(ctx context.Context, cfg Config, client *http.Client, logger *slog.Logger) (*AuthKeys, error) {
	keys := jwtx.NewKeySet()
	out := &AuthKeys{KeySet: keys, Issuer: cfg.Issuer}

	if cfg.DevTokens {
		signer, err := jwtx.NewDevSigner()
		if err != nil {
			return nil, fmt.Errorf("failed to create dev signer: %w", err)
		}
		if err := keys.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("failed to register dev key: %w", err)
		}
		if out.Issuer == "" {
			out.Issuer = devIssuer
		}
		out.DevSigner = signer

		logger.Warn("dev token signer enabled - do not use in production",
			"kid", signer.KID(),
			"issuer", out.Issuer,
		)
	} else {
		set, err := jwtx.FetchJWKS(ctx, client, cfg.JWKSURL)
		if err != nil {
			return nil, fmt.Errorf("failed to load jwks: %w", err)
		}
		if err := keys.ResetFromJWKS(set); err != nil {
			return nil, fmt.Errorf("failed to parse jwks: %w", err)
		}
		logger.Info("jwks loaded", "url", cfg.JWKSURL, "num_keys", len(set.Keys))
	}

	out.Verifier = jwtx.NewVerifier(keys, jwtx.VerifyOptions{
		Issuer:   out.Issuer,
		Audience: cfg.Audience,
		Leeway:   30 * time.Second,
	})
	return out, nil
}

// JWKSRefresher periodically reloads the identity provider's key set so
// rotated keys are picked up. A failed refresh keeps the previous keys.
type JWKSRefresher struct {
	Keys     *jwtx.KeySet
	URL      string
	Client   *http.Client
	Interval time.Duration
	Logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewJWKSRefresher(
	keys *jwtx.KeySet,
	url string,
	client *http.Client,
	interval time.Duration,
	logger *slog.Logger,
) *JWKSRefresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &JWKSRefresher{
		Keys:     keys,
		URL:      url,
		Client:   client,
		Interval: interval,
		Logger:   logger.With(slog.String("component", "jwks")),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the refresher in the background. Call Stop to shut it down.
func (r *JWKSRefresher) Start() {
	go r.run()
	r.Logger.Info("jwks refresher started", slog.Duration("interval", r.Interval))
}

func (r *JWKSRefresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	<-r.doneCh
}

func (r *JWKSRefresher) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Refresh(context.Background())
		case <-r.stopCh:
			return
		}
	}
}

// Refresh fetches the key set once and reports whether it was applied.
func (r *JWKSRefresher) Refresh(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	set, err := jwtx.FetchJWKS(ctx, r.Client, r.URL)
	if err != nil {
		r.Logger.Error("jwks refresh failed", slog.Any("error", err))
		return false
	}
	if err := r.Keys.ResetFromJWKS(set); err != nil {
		r.Logger.Error("jwks refresh rejected", slog.Any("error", err))
		return false
	}
	r.Logger.Debug("jwks refreshed", slog.Int("num_keys", len(set.Keys)))
	return true
}
