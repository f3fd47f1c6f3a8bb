package clients

import (
	"context"
	"fmt"

	"github.com/r-moraru/single-value-raft/node"
	"github.com/r-moraru/single-value-raft/raft_server"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ControlClient calls the gRPC control service of one node.
type ControlClient struct {
	conn grpc.ClientConnInterface
}

func NewControlClient(conn grpc.ClientConnInterface) *ControlClient {
	return &ControlClient{conn: conn}
}

// DialControl opens a plaintext connection to addr. The caller closes the
// returned connection.
func DialControl(addr string, opts ...grpc.DialOption) (*ControlClient, *grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("dial control service at %s: %w", addr, err)
	}
	return NewControlClient(conn), conn, nil
}

func (c *ControlClient) SubmitValue(ctx context.Context, value string) (node.ReplicationResponse, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, raft_server.ControlSubmitValueMethod, wrapperspb.String(value), out); err != nil {
		return node.ReplicationResponse{}, err
	}

	fields := out.GetFields()
	res := node.ReplicationResponse{
		LeaderID: fields["leader_id"].GetStringValue(),
		Result:   fields["result"].GetStringValue(),
	}
	if err := res.ReplicationStatus.UnmarshalText([]byte(fields["replication_status"].GetStringValue())); err != nil {
		return node.ReplicationResponse{}, err
	}
	return res, nil
}

func (c *ControlClient) Status(ctx context.Context) (node.Status, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, raft_server.ControlStatusMethod, &emptypb.Empty{}, out); err != nil {
		return node.Status{}, err
	}
	return raft_server.StatusFromStruct(out)
}
