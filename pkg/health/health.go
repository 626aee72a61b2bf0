// Package health provides Kubernetes-style liveness and readiness endpoints.
// Registered checks run periodically on one background goroutine; endpoint
// handlers only read the cached results.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// CheckFunc reports nil when the checked component is healthy.
type CheckFunc func(ctx context.Context) error

type kind int

const (
	liveness kind = iota
	readiness
)

type check struct {
	name    string
	kind    kind
	timeout time.Duration
	fn      CheckFunc

	// lastErr caches the most recent result; written by the runner
	// goroutine, read by the HTTP handlers.
	lastErr atomic.Pointer[error]
}

func (c *check) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.fn(ctx)
	c.lastErr.Store(&err)
}

func (c *check) failure() (string, bool) {
	p := c.lastErr.Load()
	if p == nil || *p == nil {
		return "", false
	}
	return (*p).Error(), true
}

// Service runs health checks and serves probe endpoints.
type Service struct {
	ready atomic.Bool

	mu     sync.Mutex
	checks []*check
	cancel context.CancelFunc
}

// New creates a Service in the not-ready state; call SetReady(true) once
// initialization finishes.
func New() *Service {
	return &Service{}
}

// AddLivenessCheck registers a process-health check (e.g. goroutine leak
// detection). Register checks before Start.
func (s *Service) AddLivenessCheck(name string, timeout time.Duration, fn CheckFunc) {
	s.add(&check{name: name, kind: liveness, timeout: timeout, fn: fn})
}

// AddReadinessCheck registers a traffic-readiness check.
func (s *Service) AddReadinessCheck(name string, timeout time.Duration, fn CheckFunc) {
	s.add(&check{name: name, kind: readiness, timeout: timeout, fn: fn})
}

func (s *Service) add(c *check) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = append(s.checks, c)
}

// Start runs every registered check once immediately and then at the given
// interval, until ctx is cancelled or Stop is called.
func (s *Service) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	checks := make([]*check, len(s.checks))
	copy(checks, s.checks)
	s.mu.Unlock()

	go func() {
		runAll := func() {
			for _, c := range checks {
				c.run(ctx)
			}
		}
		runAll()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runAll()
			}
		}
	}()
}

// Stop cancels the background runner. Safe to call more than once.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// SetReady flips the manual readiness gate: true after startup, false during
// graceful shutdown to drain traffic.
func (s *Service) SetReady(ready bool) {
	s.ready.Store(ready)
}

func (s *Service) failures(k kind) map[string]string {
	s.mu.Lock()
	checks := make([]*check, len(s.checks))
	copy(checks, s.checks)
	s.mu.Unlock()

	out := make(map[string]string)
	for _, c := range checks {
		if c.kind != k {
			continue
		}
		if msg, failed := c.failure(); failed {
			out[c.name] = msg
		}
	}
	return out
}

type statusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// LiveEndpoint serves /livez: 200 while all liveness checks pass, 503 with
// failure details otherwise.
func (s *Service) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	writeStatus(w, s.failures(liveness))
}

// ReadyEndpoint serves /readyz: 200 only when the service is marked ready
// and all readiness checks pass.
func (s *Service) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	failures := s.failures(readiness)
	if !s.ready.Load() {
		failures["_readiness"] = "service is not ready"
	}
	writeStatus(w, failures)
}

func writeStatus(w http.ResponseWriter, failures map[string]string) {
	resp := statusResponse{Status: "ok"}
	status := http.StatusOK
	if len(failures) > 0 {
		resp = statusResponse{Status: "unhealthy", Checks: failures}
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
