package raft_server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/r-moraru/single-value-raft/node"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ControlServiceName       = "singlevalueraft.Control"
	ControlSubmitValueMethod = "/" + ControlServiceName + "/SubmitValue"
	ControlStatusMethod      = "/" + ControlServiceName + "/Status"
)

// ControlServer is the gRPC control surface. Requests and replies use the
// protobuf well-known types so no generated code is needed.
type ControlServer interface {
	SubmitValue(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Status(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

var ControlServiceDesc = grpc.ServiceDesc{
	ServiceName: ControlServiceName,
	HandlerType: (*ControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitValue",
			Handler:    controlSubmitValueHandler,
		},
		{
			MethodName: "Status",
			Handler:    controlStatusHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "singlevalueraft/control.proto",
}

func RegisterControlServer(s grpc.ServiceRegistrar, srv ControlServer) {
	s.RegisterService(&ControlServiceDesc, srv)
}

func controlSubmitValueHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).SubmitValue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ControlSubmitValueMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControlServer).SubmitValue(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func controlStatusHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ControlServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ControlStatusMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ControlServer).Status(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _ ControlServer = (*RaftServer)(nil)

func (s *RaftServer) SubmitValue(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	res, err := s.HandleReplicationRequest(ctx, req.GetValue())
	if err != nil {
		return nil, toStatusError(err)
	}
	return structpb.NewStruct(map[string]any{
		"replication_status": res.ReplicationStatus.String(),
		"leader_id":          res.LeaderID,
		"result":             res.Result,
	})
}

func (s *RaftServer) Status(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	if err := ctx.Err(); err != nil {
		return nil, toStatusError(err)
	}
	return StatusToStruct(s.Node.Status())
}

// StatusToStruct encodes a status snapshot. The term and the fingerprint are
// carried as decimal strings because struct numbers are doubles.
func StatusToStruct(st node.Status) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":                st.ID,
		"incarnation":       st.Incarnation,
		"state":             st.State.String(),
		"term":              strconv.FormatUint(st.Term, 10),
		"leader_id":         st.LeaderID,
		"voted_for":         st.VotedFor,
		"value":             st.Value,
		"value_fingerprint": strconv.FormatUint(st.ValueFingerprint, 10),
	})
}

// StatusFromStruct is the inverse of StatusToStruct.
func StatusFromStruct(s *structpb.Struct) (node.Status, error) {
	fields := s.GetFields()
	st := node.Status{
		ID:          fields["id"].GetStringValue(),
		Incarnation: fields["incarnation"].GetStringValue(),
		LeaderID:    fields["leader_id"].GetStringValue(),
		VotedFor:    fields["voted_for"].GetStringValue(),
		Value:       fields["value"].GetStringValue(),
	}
	if err := st.State.UnmarshalText([]byte(fields["state"].GetStringValue())); err != nil {
		return node.Status{}, err
	}
	term, err := strconv.ParseUint(fields["term"].GetStringValue(), 10, 64)
	if err != nil {
		return node.Status{}, fmt.Errorf("term: %w", err)
	}
	st.Term = term
	fingerprint, err := strconv.ParseUint(fields["value_fingerprint"].GetStringValue(), 10, 64)
	if err != nil {
		return node.Status{}, fmt.Errorf("value fingerprint: %w", err)
	}
	st.ValueFingerprint = fingerprint
	return st, nil
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, node.ErrNodeStopped):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, node.ErrValueTooLarge):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// NewGRPCServer returns a gRPC server with the control service registered.
func (s *RaftServer) NewGRPCServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.logUnary))
	server := grpc.NewServer(opts...)
	RegisterControlServer(server, s)
	return server
}

func (s *RaftServer) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	s.logger.Debug("grpc request", "method", info.FullMethod, "code", status.Code(err))
	return resp, err
}

// RunGRPC serves the control service on listenAddr until ctx is done.
func (s *RaftServer) RunGRPC(ctx context.Context, listenAddr string) error {
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", listenAddr, err)
	}
	return s.ServeGRPC(ctx, lis)
}

func (s *RaftServer) ServeGRPC(ctx context.Context, lis net.Listener) error {
	server := s.NewGRPCServer()
	stop := context.AfterFunc(ctx, server.GracefulStop)
	defer stop()

	s.logger.Info("grpc server listening", "addr", lis.Addr().String())
	if err := server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}
