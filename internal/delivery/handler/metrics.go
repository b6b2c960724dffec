package handler

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

// Metrics tracks performance data
type Metrics struct {
	totalRequests      uint64
	successfulRequests uint64
	failedRequests     uint64
	totalLatency       time.Duration
	mutex              sync.RWMutex
	startTime          time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

func (m *Metrics) record(latency time.Duration, failed bool) {
	atomic.AddUint64(&m.totalRequests, 1)
	if failed {
		atomic.AddUint64(&m.failedRequests, 1)
		return
	}
	atomic.AddUint64(&m.successfulRequests, 1)

	m.mutex.Lock()
	m.totalLatency += latency
	m.mutex.Unlock()
}

func (m *Metrics) snapshot() map[string]interface{} {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	total := atomic.LoadUint64(&m.totalRequests)
	successful := atomic.LoadUint64(&m.successfulRequests)

	uptime := time.Since(m.startTime)
	var avgLatency time.Duration
	if successful > 0 {
		avgLatency = time.Duration(int64(m.totalLatency) / int64(successful))
	}

	return map[string]interface{}{
		"totalRequests":      total,
		"successfulRequests": successful,
		"failedRequests":     atomic.LoadUint64(&m.failedRequests),
		"avgLatencyMs":       avgLatency.Milliseconds(),
		"uptimeSeconds":      uptime.Seconds(),
		"requestsPerSecond":  float64(total) / uptime.Seconds(),
	}
}

// GetMetrics returns current metrics
func (h *Handler) GetMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.metrics.snapshot())
}

func (h *Handler) trackMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		failed := err != nil || c.Response().Status >= http.StatusBadRequest
		h.metrics.record(time.Since(start), failed)
		return err
	}
}

func (h *Handler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.limiter.Allow() {
			return c.JSON(http.StatusTooManyRequests, echo.Map{"message": "Too many requests"})
		}
		return next(c)
	}
}
