package resilience

import (
	"cmp"
	"time"

	"github.com/kirillkom/brandboost/internal/config"
)

// Config controls the circuit breaker around provider calls. Every call is a
// single attempt; a failed one is answered with fallback copy, never retried.
type Config struct {
	BreakerEnabled          bool
	BreakerMinRequests      uint32
	BreakerFailureRatio     float64
	BreakerOpenTimeout      time.Duration
	BreakerHalfOpenMaxCalls uint32

	// OnStateChange is invoked with the operation name and the old and new
	// breaker states.
	OnStateChange func(operation, from, to string)
}

// DefaultConfig trips after 5 calls with at least 60% failures and probes
// the provider again with one call after 30 seconds.
func DefaultConfig() Config {
	return Config{
		BreakerEnabled:          true,
		BreakerMinRequests:      5,
		BreakerFailureRatio:     0.6,
		BreakerOpenTimeout:      30 * time.Second,
		BreakerHalfOpenMaxCalls: 1,
	}
}

// FromSettings builds the breaker policy from the service configuration.
// Negative or out-of-range settings fall back to DefaultConfig values.
func FromSettings(cfg config.Config, onStateChange func(operation, from, to string)) Config {
	policy := Config{
		BreakerEnabled:      cfg.BreakerEnabled,
		BreakerFailureRatio: cfg.BreakerFailureRatio,
		OnStateChange:       onStateChange,
	}
	if cfg.BreakerMinRequests > 0 {
		policy.BreakerMinRequests = uint32(cfg.BreakerMinRequests)
	}
	if cfg.BreakerOpenTimeoutSeconds > 0 {
		policy.BreakerOpenTimeout = time.Duration(cfg.BreakerOpenTimeoutSeconds) * time.Second
	}
	return policy.normalize()
}

func (c Config) normalize() Config {
	def := DefaultConfig()
	c.BreakerMinRequests = cmp.Or(c.BreakerMinRequests, def.BreakerMinRequests)
	c.BreakerHalfOpenMaxCalls = cmp.Or(c.BreakerHalfOpenMaxCalls, def.BreakerHalfOpenMaxCalls)
	if c.BreakerOpenTimeout <= 0 {
		c.BreakerOpenTimeout = def.BreakerOpenTimeout
	}
	if c.BreakerFailureRatio <= 0 || c.BreakerFailureRatio > 1 {
		c.BreakerFailureRatio = def.BreakerFailureRatio
	}
	return c
}
