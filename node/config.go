package node

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/r-moraru/single-value-raft/timer"
)

// TimingConfig holds the election and heartbeat parameters.
type TimingConfig struct {
	ElectionTimeoutBase time.Duration `yaml:"election_timeout_base"`
	ElectionJitter      time.Duration `yaml:"election_jitter"`
	HeartbeatInterval   time.Duration `yaml:"heartbeat_interval"`
	TickInterval        time.Duration `yaml:"tick_interval"`

	// ResetOnStaleHeartbeat makes heartbeats from a lower term reset the
	// election timer too. This can keep a partitioned ex-leader suppressing
	// elections, so it is off by default.
	ResetOnStaleHeartbeat bool `yaml:"reset_on_stale_heartbeat"`
}

func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		ElectionTimeoutBase: 2 * time.Second,
		ElectionJitter:      time.Second,
		HeartbeatInterval:   time.Second,
		TickInterval:        100 * time.Millisecond,
	}
}

func (c TimingConfig) Validate() error {
	if c.ElectionTimeoutBase <= 0 {
		return fmt.Errorf("%w: election timeout base must be positive", ErrInvalidConfig)
	}
	if c.ElectionJitter < 0 {
		return fmt.Errorf("%w: election jitter must not be negative", ErrInvalidConfig)
	}
	if c.HeartbeatInterval <= 0 {
		return fmt.Errorf("%w: heartbeat interval must be positive", ErrInvalidConfig)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalidConfig)
	}
	if c.HeartbeatInterval >= c.ElectionTimeoutBase {
		return fmt.Errorf("%w: heartbeat interval %s must be below election timeout base %s",
			ErrInvalidConfig, c.HeartbeatInterval, c.ElectionTimeoutBase)
	}
	return nil
}

// Config describes one node. Peers lists the other members and must not
// contain ID.
type Config struct {
	ID     string
	Peers  []string
	Timing TimingConfig

	// Optional. Deterministic tests inject their own clock and random source.
	Clock  timer.Clock
	Rand   *rand.Rand
	Logger *slog.Logger
}

func (c *Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: node id is required", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Peers))
	for _, peerId := range c.Peers {
		if peerId == "" {
			return fmt.Errorf("%w: empty peer id", ErrInvalidConfig)
		}
		if peerId == c.ID {
			return fmt.Errorf("%w: peer list contains the node itself (%s)", ErrInvalidConfig, peerId)
		}
		if _, dup := seen[peerId]; dup {
			return fmt.Errorf("%w: duplicate peer %s", ErrInvalidConfig, peerId)
		}
		seen[peerId] = struct{}{}
	}
	return c.Timing.Validate()
}
