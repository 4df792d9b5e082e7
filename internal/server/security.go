package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
)

// ClientGuard holds per-client state for the /api routes, keyed by client
// IP: a token bucket for request rate and a failed API key count. A client
// that reaches FailedAuthLockout bad keys is refused until LockoutWindow has
// passed since its first failure.
type ClientGuard struct {
	mu      sync.Mutex
	clients map[string]*clientState
	proxies []string
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

type clientState struct {
	limiter   *rate.Limiter
	failures  int
	firstFail time.Time
	lastSeen  time.Time
}

func NewClientGuard(trustedProxies []string) *ClientGuard {
	return &ClientGuard{
		clients: make(map[string]*clientState),
		proxies: trustedProxies,
		limit:   rate.Limit(RequestsPerSecond),
		burst:   RequestBurst,
		now:     time.Now,
	}
}

// ClientIP is the request's remote address. X-Forwarded-For is honoured
// only when the request comes from a trusted proxy.
func (g *ClientGuard) ClientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(g.proxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// rightmost entry is the hop that reached the trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}
	return remoteIP
}

// client returns ip's state, dropping idle clients once the table is full.
// Caller must hold the mutex.
func (g *ClientGuard) client(ip string, now time.Time) *clientState {
	st, ok := g.clients[ip]
	if !ok {
		if len(g.clients) >= MaxTrackedClients {
			for key, other := range g.clients {
				if now.Sub(other.lastSeen) > LockoutWindow {
					delete(g.clients, key)
				}
			}
		}
		st = &clientState{limiter: rate.NewLimiter(g.limit, g.burst)}
		g.clients[ip] = st
	}
	st.lastSeen = now
	if st.failures > 0 && now.Sub(st.firstFail) > LockoutWindow {
		st.failures = 0
	}
	return st
}

// Allow spends one request token for ip.
func (g *ClientGuard) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	return g.client(ip, now).limiter.AllowN(now, 1)
}

// LockedOut reports whether ip has used up its bad key attempts.
func (g *ClientGuard) LockedOut(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.client(ip, g.now()).failures >= FailedAuthLockout
}

// FailedAuth counts a bad key for ip and returns the running count.
func (g *ClientGuard) FailedAuth(ip string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	st := g.client(ip, now)
	if st.failures == 0 {
		st.firstFail = now
	}
	st.failures++
	return st.failures
}

// AuthOK clears ip's failure count.
func (g *ClientGuard) AuthOK(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.client(ip, g.now()).failures = 0
}

func isPublic(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func tooManyRequests(w http.ResponseWriter, retryAfter time.Duration, msg string) {
	w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())))
	http.Error(w, msg, http.StatusTooManyRequests)
}

// AuthMiddleware requires the API key on every non-public path. An empty
// apiKey disables the check.
func AuthMiddleware(apiKey string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ip := guard.ClientIP(r)
			if guard.LockedOut(ip) {
				tooManyRequests(w, LockoutWindow, ErrMsgLockedOut)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				failures := guard.FailedAuth(ip)
				log := logger.FromContext(r.Context())
				log.Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip,
					"failures", failures)
				if failures == FailedAuthLockout {
					log.Warn(SecurityAlertLockout, "ip", ip, "window", LockoutWindow)
				}
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			guard.AuthOK(ip)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware throttles non-public paths per client.
func RateLimitMiddleware(guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			if ip := guard.ClientIP(r); !guard.Allow(ip) {
				slog.Debug(LogMsgRateLimited, "ip", ip, "path", r.URL.Path)
				tooManyRequests(w, time.Second, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
