package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/r-moraru/single-value-raft/config"
	"github.com/r-moraru/single-value-raft/network/udp_network"
	"github.com/r-moraru/single-value-raft/node/raft_node"
	"github.com/r-moraru/single-value-raft/raft_server"
)

func main() {
	configPath := flag.String("config", "", "cluster YAML file; the built-in three node localhost cluster when empty")
	nodeId := flag.String("id", "", "id of this node (host:port, or just a port on localhost)")
	logLevel := flag.String("log_level", "info", "debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log_level %q\n", *logLevel)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*configPath, *nodeId, logger); err != nil {
		slog.Error("node failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, nodeId string, logger *slog.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	id := resolveID(nodeId, cfg)
	if err := runNode(ctx, cfg, id, os.Stdin, os.Stdout, logger); err != nil {
		return err
	}
	fmt.Printf("\nShutting down node %s\n", id)
	return nil
}

// runNode serves node id until ctx is done. The prompt reads commands from in;
// once in is exhausted the node keeps serving its peers and front ends.
func runNode(ctx context.Context, cfg *config.Config, id string, in io.Reader, out io.Writer, logger *slog.Logger) error {
	member, ok := cfg.Lookup(id)
	if !ok {
		return fmt.Errorf("node %q is not in the cluster configuration", id)
	}
	nodeCfg, err := cfg.NodeConfig(id)
	if err != nil {
		return err
	}
	nodeCfg.Logger = logger

	transport, err := udp_network.New(id, logger)
	if err != nil {
		return err
	}
	raftNode, err := raft_node.StartNode(ctx, nodeCfg, transport)
	if err != nil {
		transport.Close()
		return err
	}
	defer raftNode.Shutdown()

	server := raft_server.New(raftNode, logger)
	var wg sync.WaitGroup
	if member.HTTP != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := server.Run(ctx, member.HTTP); err != nil {
				logger.Error("http server stopped", "error", err)
			}
		}()
	}
	if member.GRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := server.RunGRPC(ctx, member.GRPC); err != nil {
				logger.Error("grpc server stopped", "error", err)
			}
		}()
	}

	go func() {
		runPrompt(in, out, raftNode)
		logger.Debug("prompt input closed, still serving")
	}()

	<-ctx.Done()
	wg.Wait()
	return nil
}

// resolveID accepts a bare port for nodes on localhost. An empty id picks the
// first configured node.
func resolveID(nodeId string, cfg *config.Config) string {
	switch {
	case nodeId == "":
		return cfg.Nodes[0].ID
	case !strings.Contains(nodeId, ":"):
		return "localhost:" + nodeId
	default:
		return nodeId
	}
}
