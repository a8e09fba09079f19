package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"finance-tracker/internal/config"
)

// ErrCircuitBreakerOpen is returned without contacting the backend while it
// is considered down.
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

const (
	defaultBreakerThreshold  = 5
	defaultBreakerCooldown   = 30 * time.Second
	defaultBreakerRecoveries = 1
)

// BreakerState is the circuit breaker position.
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	}
	return "unknown"
}

// callOutcome is how a finished backend call counts toward the breaker.
type callOutcome int

const (
	// the backend answered, 4xx included
	outcomeAnswered callOutcome = iota
	// transport error, client timeout or 5xx
	outcomeUnavailable
	// the call never reached the backend or the caller gave up on it
	outcomeAbandoned
)

// outcomeOf classifies a call from the caller's context, the response status
// and the transport error.
func outcomeOf(ctx context.Context, status int, err error) callOutcome {
	switch {
	case errors.Is(err, ErrSessionExpired), errors.Is(err, ErrMissingToken):
		return outcomeAbandoned
	case err != nil && ctx.Err() != nil:
		return outcomeAbandoned
	case err != nil, status >= 500:
		return outcomeUnavailable
	}
	return outcomeAnswered
}

// backendBreaker opens after threshold unavailable calls in a row. Once the
// cooldown has passed it lets calls through again half-open, and closes after
// recoveries answered calls in a row. One unavailable call while half-open
// opens it again.
type backendBreaker struct {
	mu         sync.Mutex
	threshold  int
	cooldown   time.Duration
	recoveries int

	state    BreakerState
	streak   int
	openedAt time.Time
	now      func() time.Time
	onChange func(from, to BreakerState)
}

func newBackendBreaker(cfg *config.APIConfig) *backendBreaker {
	b := &backendBreaker{
		threshold:  cfg.MaxFailures,
		cooldown:   cfg.ResetTimeout,
		recoveries: cfg.HalfOpenMaxSucc,
		now:        time.Now,
	}
	if b.threshold <= 0 {
		b.threshold = defaultBreakerThreshold
	}
	if b.cooldown <= 0 {
		b.cooldown = defaultBreakerCooldown
	}
	if b.recoveries <= 0 {
		b.recoveries = defaultBreakerRecoveries
	}
	return b
}

// allow fails with ErrCircuitBreakerOpen until the cooldown has passed.
func (b *backendBreaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOpen {
		return nil
	}
	if wait := b.cooldown - b.now().Sub(b.openedAt); wait > 0 {
		return fmt.Errorf("%w: retry in %s", ErrCircuitBreakerOpen, wait.Round(time.Second))
	}
	b.moveTo(StateHalfOpen)
	return nil
}

func (b *backendBreaker) record(outcome callOutcome) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch outcome {
	case outcomeAnswered:
		switch b.state {
		case StateClosed:
			b.streak = 0
		case StateHalfOpen:
			b.streak++
			if b.streak >= b.recoveries {
				b.moveTo(StateClosed)
			}
		}
	case outcomeUnavailable:
		switch b.state {
		case StateClosed:
			b.streak++
			if b.streak >= b.threshold {
				b.trip()
			}
		case StateHalfOpen:
			b.trip()
		}
	}
}

// trip must be called with b.mu held.
func (b *backendBreaker) trip() {
	b.openedAt = b.now()
	b.moveTo(StateOpen)
}

// moveTo must be called with b.mu held.
func (b *backendBreaker) moveTo(to BreakerState) {
	from := b.state
	b.state = to
	b.streak = 0
	if b.onChange != nil && from != to {
		b.onChange(from, to)
	}
}

func (b *backendBreaker) current() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// failures is the current run of unavailable calls while closed.
func (b *backendBreaker) failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateClosed {
		return 0
	}
	return b.streak
}
