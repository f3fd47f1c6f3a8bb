package raft_server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/r-moraru/single-value-raft/node"
)

// maxRequestBodySize leaves room for a fully escaped value of datagram size.
const maxRequestBodySize = 1 << 20

// HandleReplicationRequest submits value to the local node. A follower
// answers NotLeader with its best guess of the leader; it does not forward.
func (s *RaftServer) HandleReplicationRequest(ctx context.Context, value string) (node.ReplicationResponse, error) {
	res := node.ReplicationResponse{}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	err := s.Node.SubmitValue(value)
	switch {
	case errors.Is(err, node.ErrNotLeader):
		res.ReplicationStatus = node.NotLeader
		// best effort, might be stale
		res.LeaderID = s.Node.GetCurrentLeaderID()
		return res, nil
	case err != nil:
		return res, err
	}

	res.ReplicationStatus = node.Replicated
	res.LeaderID = s.Node.GetId()
	res.Result = value
	return res, nil
}

func (s *RaftServer) CreateReplicationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		replicationRequest := new(ReplicationRequest)
		body := http.MaxBytesReader(w, req.Body, maxRequestBodySize)
		if err := json.NewDecoder(body).Decode(replicationRequest); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				http.Error(w, "Replication request too large.", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "Unable to decode replication request.", http.StatusBadRequest)
			return
		}

		replicationResponse, err := s.HandleReplicationRequest(req.Context(), replicationRequest.Value)
		if errors.Is(err, node.ErrNodeStopped) {
			http.Error(w, "Node is stopped.", http.StatusServiceUnavailable)
			return
		}
		if errors.Is(err, node.ErrValueTooLarge) {
			http.Error(w, "Value does not fit in one datagram.", http.StatusRequestEntityTooLarge)
			return
		}
		if err != nil {
			s.logger.Error("replication request failed", "error", err)
			http.Error(w, "Internal error retrieving response.", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, replicationResponse)
	}
}

func (s *RaftServer) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Node.Status())
}

func (s *RaftServer) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
