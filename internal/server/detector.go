package server

import (
	"log/slog"
	"sync"
	"time"
)

type activity struct {
	requests   int
	failedAuth int
}

// ActivityDetector counts requests and failed logins per caller over a
// fixed window. Callers are keyed by user id once authenticated, by IP before.
type ActivityDetector struct {
	mu          sync.Mutex
	now         func() time.Time
	window      time.Duration
	limit       int
	counts      map[string]*activity
	windowStart time.Time
}

// NewActivityDetector creates a detector using RequestRateLimit over RateWindow
func NewActivityDetector() *ActivityDetector {
	return newActivityDetector(time.Now, RateWindow, RequestRateLimit)
}

func newActivityDetector(now func() time.Time, window time.Duration, limit int) *ActivityDetector {
	return &ActivityDetector{
		now:         now,
		window:      window,
		limit:       limit,
		counts:      make(map[string]*activity),
		windowStart: now(),
	}
}

// RecordFailedAuth counts a rejected token for key and alerts past the threshold
func (d *ActivityDetector) RecordFailedAuth(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a := d.entry(key)
	a.failedAuth++
	if a.failedAuth >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "caller", key, "count", a.failedAuth)
	}
}

// RecordRequest counts a request for key and reports whether it is within the limit
func (d *ActivityDetector) RecordRequest(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	a := d.entry(key)
	a.requests++
	if a.requests <= d.limit {
		return true
	}
	if a.requests%RateAlertEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "caller", key, "count", a.requests, "window", d.window)
	}
	return false
}

// Counts returns the requests and failed logins recorded for key in the current window
func (d *ActivityDetector) Counts(key string) (requests, failedAuth int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a := d.entry(key)
	return a.requests, a.failedAuth
}

// entry resets expired windows. Caller holds mu.
func (d *ActivityDetector) entry(key string) *activity {
	if now := d.now(); now.Sub(d.windowStart) > d.window {
		d.counts = make(map[string]*activity)
		d.windowStart = now
	}
	a, ok := d.counts[key]
	if !ok {
		a = &activity{}
		d.counts[key] = a
	}
	return a
}
