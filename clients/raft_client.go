package clients

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/r-moraru/single-value-raft/node"
	"github.com/r-moraru/single-value-raft/raft_server"
)

const (
	valuePath   = "/value"
	statusPath  = "/status"
	healthzPath = "/healthz"
)

// RaftClient talks to the HTTP front-end of one node.
type RaftClient Client

func NewRaftClient(url string, timeout uint64) *RaftClient {
	return &RaftClient{
		url: strings.TrimSuffix(url, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Millisecond,
		},
	}
}

func (c *RaftClient) SubmitValue(ctx context.Context, value string) (node.ReplicationResponse, error) {
	res := node.ReplicationResponse{}
	err := (*Client)(c).post(ctx, c.url+valuePath, &raft_server.ReplicationRequest{Value: value}, &res)
	return res, err
}

func (c *RaftClient) GetStatus(ctx context.Context) (node.Status, error) {
	status := node.Status{}
	err := (*Client)(c).get(ctx, c.url+statusPath, &status)
	return status, err
}

func (c *RaftClient) Healthy(ctx context.Context) error {
	return (*Client)(c).get(ctx, c.url+healthzPath, nil)
}
