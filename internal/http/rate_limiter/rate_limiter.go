package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether a client identified by key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps a token bucket per client in process memory.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	limit    rate.Limit
	burst    int
}

// NewMemoryLimiter allows requests per window with the given burst.
func NewMemoryLimiter(requests int, window time.Duration, burst int) *MemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	if burst < requests {
		burst = requests
	}
	return &MemoryLimiter{
		visitors: make(map[string]*clientLimiter),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    burst,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return m.visitor(key).Allow(), nil
}

func (m *MemoryLimiter) visitor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, exists := m.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(m.limit, m.burst)
		m.visitors[key] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartCleanupLoop drops clients idle for longer than idle, every interval,
// until ctx is done.
func (m *MemoryLimiter) StartCleanupLoop(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.cleanup(idle)
		}
	}
}

func (m *MemoryLimiter) cleanup(idle time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, v := range m.visitors {
		if time.Since(v.lastSeen) > idle {
			delete(m.visitors, key)
		}
	}
}

func (m *MemoryLimiter) visitorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.visitors)
}
