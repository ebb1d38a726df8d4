package middleware

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a client exceeds its request budget.
var ErrRateLimited = errors.New("too many requests, try again later")

// RateLimiter keeps one token bucket per client address.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// idleTTL is how long an address's bucket survives without traffic.
const idleTTL = 10 * time.Minute

// NewRateLimiter allows perMinute requests per address with the given burst.
func NewRateLimiter(perMinute float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(perMinute / 60),
		burst:    burst,
		limiters: make(map[string]*visitor),
	}
}

// Allow reports whether a request from addr may proceed now.
func (l *RateLimiter) Allow(addr string) bool {
	key := addr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		key = host
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = v
		l.evict(now)
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// evict drops buckets idle longer than idleTTL. Caller holds mu.
func (l *RateLimiter) evict(now time.Time) {
	for key, v := range l.limiters {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(l.limiters, key)
		}
	}
}

// Interceptor limits the listed procedures; other procedures pass through.
func (l *RateLimiter) Interceptor(procedures ...string) connect.UnaryInterceptorFunc {
	limited := make(map[string]bool, len(procedures))
	for _, p := range procedures {
		limited[p] = true
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if limited[req.Spec().Procedure] && !l.Allow(req.Peer().Addr) {
				return nil, connect.NewError(connect.CodeResourceExhausted, ErrRateLimited)
			}
			return next(ctx, req)
		}
	}
}
