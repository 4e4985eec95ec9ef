package httpx

import (
	"math"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/aussiebroadwan/seodesk/pkg/metrics"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// RateLimitConfig is a token bucket refilled at RequestsPerWindow per Window.
type RateLimitConfig struct {
	// Name labels the profile in logs and metrics.
	Name              string
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// perSecond converts the window into a refill rate.
func (c RateLimitConfig) perSecond() rate.Limit {
	if c.Window <= 0 || c.RequestsPerWindow <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// Built-in profiles. Use RateLimitFromEnv to apply operator overrides.
var (
	// StrictLimit guards public invite-token endpoints and LLM-backed calls.
	StrictLimit = RateLimitConfig{Name: "strict", RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit guards authenticated mutations such as issuing invites.
	ModerateLimit = RateLimitConfig{Name: "moderate", RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// LenientLimit guards authenticated reads.
	LenientLimit = RateLimitConfig{Name: "lenient", RequestsPerWindow: 100, Window: time.Minute, Burst: 100}

	// PublicLimit guards health and key discovery endpoints.
	PublicLimit = RateLimitConfig{Name: "public", RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

// RateLimitFromEnv returns base with RATELIMIT_<NAME>_REQUESTS,
// RATELIMIT_<NAME>_WINDOW_SEC and RATELIMIT_<NAME>_BURST applied. Values that
// are missing, malformed or not positive are ignored.
func RateLimitFromEnv(base RateLimitConfig) RateLimitConfig {
	prefix := "RATELIMIT_" + strings.ToUpper(base.Name) + "_"

	if n, ok := positiveEnv(prefix + "REQUESTS"); ok {
		base.RequestsPerWindow = n
	}
	if n, ok := positiveEnv(prefix + "WINDOW_SEC"); ok {
		base.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv(prefix + "BURST"); ok {
		base.Burst = n
	}
	return base
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyFunc groups requests into buckets. An empty key bypasses the limiter.
type KeyFunc func(*http.Request) string

// ClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then the
// host of RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ByIP keys requests on the client address.
func ByIP(r *http.Request) string {
	if ip := ClientIP(r); ip != "" {
		return "ip:" + ip
	}
	return ""
}

// ByUser keys authenticated requests on the subject and falls back to ByIP.
func ByUser(r *http.Request) string {
	if id := UserID(r.Context()); id != "" {
		return "user:" + id
	}
	return ByIP(r)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore hands out one limiter per key and forgets keys that have been
// idle for longer than idleTTL.
type limiterStore struct {
	cfg     RateLimitConfig
	idleTTL time.Duration
	now     func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

func newLimiterStore(cfg RateLimitConfig) *limiterStore {
	// A bucket idle for two windows is full again, so dropping it is lossless.
	ttl := max(2*cfg.Window, time.Minute)
	return &limiterStore{
		cfg:      cfg,
		idleTTL:  ttl,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.idleTTL {
		for k, v := range s.visitors {
			if now.Sub(v.lastSeen) >= s.idleTTL {
				delete(s.visitors, k)
			}
		}
		s.lastSweep = now
	}

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.cfg.perSecond(), s.cfg.Burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (s *limiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RateLimit rejects requests with 429 once the bucket for keyFn(r) is empty.
// Every response carries X-RateLimit-Limit and X-RateLimit-Remaining;
// rejections also carry Retry-After in whole seconds.
func RateLimit(cfg RateLimitConfig, keyFn KeyFunc) Middleware {
	return newRateLimit(newLimiterStore(cfg), keyFn)
}

func newRateLimit(store *limiterStore, keyFn KeyFunc) Middleware {
	cfg := store.cfg
	limit := strconv.Itoa(cfg.RequestsPerWindow)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			lim := store.get(key)
			now := store.now()
			allowed := lim.AllowN(now, 1)
			tokens := lim.TokensAt(now)

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(int(tokens), 0)))

			if allowed {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := retryAfterSeconds(tokens, lim.Limit())
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			metrics.RateLimited(cfg.Name)

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"profile", cfg.Name,
				"key", key,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)
			WriteError(w, http.StatusTooManyRequests,
				"rate_limit_exceeded", "Too many requests. Please try again later.")
		})
	}
}

// retryAfterSeconds is the time until one token is available, at least 1s.
func retryAfterSeconds(tokens float64, r rate.Limit) int {
	if r <= 0 || r == rate.Inf {
		return 1
	}
	wait := (1 - tokens) / float64(r)
	return max(int(math.Ceil(wait)), 1)
}

// RateLimitByIP limits per client address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, ByIP)
}

// RateLimitByUser limits per authenticated subject, or per address for
// anonymous requests. It must run after AuthnMiddleware.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimit(cfg, ByUser)
}
