// Package rpc exposes the global input hook over gRPC.
package rpc // import "go-uiohook.org/rpc"

import (
	"golang.org/x/net/context"

	"go-uiohook.org/event"
)

// Interface is the set of hook operations available over the network. The
// server side implements it on top of the hook package, the client side on
// top of a gRPC connection.
type Interface interface {
	// Subscribe returns a channel of captured input events. The channel is
	// closed when ctx is cancelled.
	Subscribe(ctx context.Context) (<-chan *event.Event, error)

	// Post hands a synthetic event to the operating system's event queue.
	Post(ev *event.Event) error
}
