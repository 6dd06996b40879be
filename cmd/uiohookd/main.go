// uiohookd runs the global input hook and serves it over gRPC, so that
// processes without their own native binding can watch and post input
// events.
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/net/context"
	"google.golang.org/grpc"

	"go-uiohook.org/event"
	"go-uiohook.org/hook"
	"go-uiohook.org/hooklog"
	"go-uiohook.org/rpc"
)

var (
	listenAddr string
	verbose    bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "uiohookd",
		Short:        "Serve the global keyboard and mouse hook over gRPC",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return run()
		},
	}
	cmd.Flags().StringVarP(&listenAddr, "listen", "l", ":50051", "address to listen on")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the native library's debug messages")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	hook.SetLogger(hooklog.Logrus(logger))
	defer hook.SetLogger(nil)

	h, err := hook.Start()
	if err != nil {
		return err
	}
	logger.Info("input hook started")

	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		err = multierr.Append(err, h.Stop())
		return err
	}

	srv := grpc.NewServer()
	rpc.RegisterServer(srv, &hookService{logger: logger})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-sig
		logger.WithField("signal", s).Info("shutting down")
		srv.GracefulStop()
	}()

	logger.WithField("address", lis.Addr()).Info("serving")
	err = srv.Serve(lis)

	return multierr.Combine(err, h.Stop())
}

// hookService implements rpc.Interface on top of the process-wide hook.
type hookService struct {
	logger *logrus.Logger
}

// subscriberBufferSize bounds each subscriber's queue. A subscriber that
// cannot keep up loses events rather than stalling the control loop.
const subscriberBufferSize = 64

func (s *hookService) Subscribe(ctx context.Context) (<-chan *event.Event, error) {
	ch := make(chan *event.Event, subscriberBufferSize)

	var id hook.ID
	id = hook.Register(func(ev *event.Event) {
		select {
		case ch <- ev:
		default:
			s.logger.WithField("id", id).Debug("subscriber queue full, dropping event")
		}
	})

	go func() {
		<-ctx.Done()
		// Unregister returns once the handler cannot run anymore, so
		// closing the channel afterwards is safe.
		hook.Unregister(id)
		close(ch)
	}()

	return ch, nil
}

func (s *hookService) Post(ev *event.Event) error {
	return hook.Post(ev)
}
