package rpc // import "go-uiohook.org/rpc"

import (
	"io"
	"log"

	"golang.org/x/net/context"
	"google.golang.org/grpc"

	"go-uiohook.org/event"
	pb "go-uiohook.org/rpc/proto"
)

// client is a wrapper around pb.UiohookClient implementing Interface.
type client struct {
	ctx    context.Context
	client pb.UiohookClient
}

// NewClient returns a wrapper around the gRPC client connection that maps
// between the Go interface and the gRPC interface.
func NewClient(ctx context.Context, conn *grpc.ClientConn) Interface {
	return &client{
		ctx:    ctx,
		client: pb.NewUiohookClient(conn),
	}
}

// Subscribe maps its argument to a WatchEventsRequest and calls WatchEvents.
// The response stream is parsed by a goroutine and written to the returned
// channel.
func (c *client) Subscribe(ctx context.Context) (<-chan *event.Event, error) {
	stream, err := c.client.WatchEvents(ctx, &pb.WatchEventsRequest{})
	if err != nil {
		return nil, err
	}

	ch := make(chan *event.Event)

	go func() {
		defer close(ch)

		for {
			res, err := stream.Recv()
			if err == io.EOF {
				break
			}
			if err != nil {
				log.Printf("error while receiving events: %v", err)
				return
			}

			ev, err := UnmarshalEvent(res.GetEvent())
			if err != nil {
				log.Printf("received malformed event: %v", err)
				continue
			}

			ch <- ev
		}
	}()

	return ch, nil
}

// Post maps its argument to a PostEventsRequest and calls PostEvents.
func (c *client) Post(ev *event.Event) error {
	pbEvent, err := MarshalEvent(ev)
	if err != nil {
		return err
	}

	stream, err := c.client.PostEvents(c.ctx)
	if err != nil {
		return err
	}

	req := &pb.PostEventsRequest{
		Event: pbEvent,
	}
	if err := stream.Send(req); err != nil {
		return err
	}

	if _, err := stream.CloseAndRecv(); err != nil && err != io.EOF {
		return err
	}
	return nil
}
