// uiohookctl talks to a running uiohookd, streaming captured input events to
// stdout or posting synthetic events.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/net/context"
	"google.golang.org/grpc"

	"go-uiohook.org/event"
	"go-uiohook.org/rpc"
)

var address string

func main() {
	root := &cobra.Command{
		Use:   "uiohookctl",
		Short: "Interact with a uiohookd server",
	}
	root.PersistentFlags().StringVarP(&address, "address", "a", "localhost:50051", "uiohookd address")

	watch := &cobra.Command{
		Use:          "watch",
		Short:        "Stream captured input events to stdout",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return runWatch()
		},
	}

	tap := &cobra.Command{
		Use:          "tap <keycode>",
		Short:        "Post a synthetic key press and release",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runTap(args[0])
		},
	}

	root.AddCommand(watch, tap)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func dial(ctx context.Context) (rpc.Interface, *grpc.ClientConn, error) {
	conn, err := grpc.Dial(address, grpc.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	return rpc.NewClient(ctx, conn), conn, nil
}

func runWatch() error {
	ctx := context.Background()

	client, conn, err := dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := client.Subscribe(ctx)
	if err != nil {
		return err
	}
	for ev := range ch {
		fmt.Println(ev)
	}
	return nil
}

func runTap(arg string) error {
	code, err := strconv.ParseUint(arg, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid keycode %q: %w", arg, err)
	}

	ctx := context.Background()

	client, conn, err := dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, ev := range event.KeyTap(event.Key(code)) {
		if err := client.Post(ev); err != nil {
			return err
		}
	}
	return nil
}
