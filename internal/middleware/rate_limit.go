package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/guttosm/flashe-service/internal/domain/dto"
	"github.com/guttosm/flashe-service/internal/i18n"
)

const (
	defaultNumShards = 16
	cleanupInterval  = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a per-client token bucket limiter. Visitors are spread
// over shards to keep lock contention low and are forgotten once idle.
type RateLimiter struct {
	shards   []*rateLimiterShard
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// NewRateLimiter allows requests per window for each client, with bursts
// up to requests.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(requests, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with a custom shard count.
func NewShardedRateLimiter(requests int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	shards := make([]*rateLimiterShard, numShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards:  shards,
		limit:   rate.Limit(float64(requests) / window.Seconds()),
		burst:   requests,
		idleTTL: 2 * window,
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) shard(key string) *rateLimiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// reserve takes a token for key. When none is available it returns how
// long until one will be.
func (rl *RateLimiter) reserve(key string) (allowed bool, remaining int, retryAfter time.Duration) {
	s := rl.shard(key)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		s.visitors[key] = v
	}
	v.lastSeen = now

	if v.limiter.AllowN(now, 1) {
		return true, int(math.Floor(v.limiter.TokensAt(now))), 0
	}

	r := v.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return false, 0, delay
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.reserve(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	cutoff := rl.now().Add(-rl.idleTTL)
	for _, s := range rl.shards {
		s.mu.Lock()
		for key, v := range s.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(s.visitors, key)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Visitors returns the number of clients currently tracked.
func (rl *RateLimiter) Visitors() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.visitors)
		s.mu.Unlock()
	}
	return total
}
