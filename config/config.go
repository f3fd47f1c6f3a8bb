// Package config reads the cluster description shared by every node process.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/r-moraru/single-value-raft/node"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid cluster configuration")

// NodeConfig describes one cluster member. ID is the UDP address the node
// listens on and is known by. HTTP and GRPC are optional front-end addresses.
type NodeConfig struct {
	ID   string `yaml:"id"`
	HTTP string `yaml:"http"`
	GRPC string `yaml:"grpc"`
}

type Config struct {
	Nodes  []NodeConfig      `yaml:"nodes"`
	Timing node.TimingConfig `yaml:"timing"`
}

// Default is the three node localhost cluster.
func Default() *Config {
	return &Config{
		Nodes: []NodeConfig{
			{ID: "localhost:8000", HTTP: "localhost:8080", GRPC: "localhost:9000"},
			{ID: "localhost:8001", HTTP: "localhost:8081", GRPC: "localhost:9001"},
			{ID: "localhost:8002", HTTP: "localhost:8082", GRPC: "localhost:9002"},
		},
		Timing: node.DefaultTimingConfig(),
	}
}

// Parse decodes a YAML cluster file. Timing fields that are left out keep
// their default values. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Timing: node.DefaultTimingConfig()}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

func (c *Config) Validate() error {
	if len(c.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidConfig)
	}
	ids := make(map[string]struct{}, len(c.Nodes))
	addrs := make(map[string]struct{}, 2*len(c.Nodes))
	for i, n := range c.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node %d has no id", ErrInvalidConfig, i)
		}
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("%w: duplicate node id %s", ErrInvalidConfig, n.ID)
		}
		ids[n.ID] = struct{}{}

		for _, addr := range []string{n.HTTP, n.GRPC} {
			if addr == "" {
				continue
			}
			if _, dup := addrs[addr]; dup {
				return fmt.Errorf("%w: address %s is used twice", ErrInvalidConfig, addr)
			}
			addrs[addr] = struct{}{}
		}
	}
	if err := c.Timing.Validate(); err != nil {
		return fmt.Errorf("%w: timing: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Lookup(id string) (NodeConfig, bool) {
	for _, n := range c.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeConfig{}, false
}

// PeersOf lists every node id except id, in file order.
func (c *Config) PeersOf(id string) []string {
	peers := make([]string, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		if n.ID != id {
			peers = append(peers, n.ID)
		}
	}
	return peers
}

// NodeConfig builds the node configuration for member id.
func (c *Config) NodeConfig(id string) (node.Config, error) {
	if _, ok := c.Lookup(id); !ok {
		return node.Config{}, fmt.Errorf("%w: %s is not a cluster member", ErrInvalidConfig, id)
	}
	return node.Config{
		ID:     id,
		Peers:  c.PeersOf(id),
		Timing: c.Timing,
	}, nil
}
