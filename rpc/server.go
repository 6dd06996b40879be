package rpc // import "go-uiohook.org/rpc"

import (
	"io"

	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"

	"go-uiohook.org/event"
	pb "go-uiohook.org/rpc/proto"
)

// RegisterServer registers the implementation srv with the gRPC instance s.
func RegisterServer(s *grpc.Server, srv Interface) {
	pb.RegisterUiohookServer(s, &server{
		srv: srv,
	})
}

// server implements pb.UiohookServer using srv.
type server struct {
	srv Interface
}

// WatchEvents calls the Subscribe() implementation and streams matching
// events back to the client until the subscription channel is closed.
func (wrap *server) WatchEvents(req *pb.WatchEventsRequest, stream pb.Uiohook_WatchEventsServer) error {
	ch, err := wrap.srv.Subscribe(stream.Context())
	if err != nil {
		return grpc.Errorf(codes.Internal, "Subscribe(): %v", err)
	}

	kinds := make(map[event.Kind]bool)
	for _, k := range req.GetKinds() {
		kinds[event.Kind(k)] = true
	}

	for ev := range ch {
		if len(kinds) != 0 && !kinds[ev.Kind] {
			continue
		}

		pbEvent, err := MarshalEvent(ev)
		if err != nil {
			return err
		}

		res := &pb.WatchEventsResponse{
			Event: pbEvent,
		}
		if err := stream.Send(res); err != nil {
			return err
		}
	}

	return nil
}

// PostEvents reads events from stream and calls the Post() implementation on
// each one. Events the hook rejects are collected and reported once the
// stream ends; the remaining events are still posted.
func (wrap *server) PostEvents(stream pb.Uiohook_PostEventsServer) error {
	var (
		posted   uint64
		postErrs error
	)

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		ev, err := UnmarshalEvent(req.GetEvent())
		if err != nil {
			return err
		}

		if err := wrap.srv.Post(ev); err != nil {
			postErrs = multierr.Append(postErrs, err)
			continue
		}
		posted++
	}

	if postErrs != nil {
		return grpc.Errorf(codes.Internal, "Post(): %v", postErrs)
	}

	return stream.SendAndClose(&pb.PostEventsResponse{
		Posted: posted,
	})
}
