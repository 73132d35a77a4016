// Package client is the public entry point applications use to talk to
// a connected ring: wire up a transport.Device once, then Send commands
// and read decoded replies off one merged stream.
package client

import (
	"context"
	"fmt"

	"github.com/ringctl/colmi/internal/logging"
	"github.com/ringctl/colmi/internal/protocol"
	"github.com/ringctl/colmi/internal/transport"
)

// Client is a connected ring, ready to send commands and receive
// decoded replies.
type Client struct {
	device transport.Device
	cmd    transport.CommandChannels
	stream *protocol.Stream
	cancel context.CancelFunc
}

// Connect resolves dev's GATT characteristics, subscribes to both
// notification channels, and starts the merged reply stream. The
// returned Client owns dev until Disconnect is called.
func Connect(ctx context.Context, dev transport.Device, clock protocol.Clock) (*Client, error) {
	cmd, notify, err := transport.Resolve(ctx, dev)
	if err != nil {
		return nil, fmt.Errorf("resolve characteristics: %w", err)
	}

	uartNotify, err := notify.UART.Subscribe(ctx)
	if err != nil {
		return nil, fmt.Errorf("subscribe UART notify: %w", err)
	}
	v2Notify, err := notify.V2.Subscribe(ctx)
	if err != nil {
		_ = notify.UART.Unsubscribe(ctx)
		return nil, fmt.Errorf("subscribe V2 notify: %w", err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	return &Client{
		device: dev,
		cmd:    cmd,
		stream: protocol.NewStream(streamCtx, uartNotify, v2Notify, clock),
		cancel: cancel,
	}, nil
}

// Send encodes cmd and writes it to whichever characteristic the
// protocol's channel router assigns it to.
func (c *Client) Send(ctx context.Context, cmd protocol.Command) error {
	frame := cmd.Encode()
	route := protocol.Route(cmd)
	ch := c.cmd.UART
	if route == protocol.ChannelV2 {
		ch = c.cmd.V2
	}
	logging.LogFrame("out", route.String(), frame[0], frame[:])
	return ch.WriteCommand(ctx, frame[:])
}

// Replies returns the merged channel of decoded replies. It closes when
// Disconnect is called or the underlying context is cancelled.
func (c *Client) Replies() <-chan protocol.Result {
	return c.stream.Replies()
}

// DeviceDetails reads the device-info service's hardware/firmware
// revision characteristics, if the device exposes one.
func (c *Client) DeviceDetails(ctx context.Context) (transport.DeviceDetails, error) {
	return transport.ReadDeviceDetails(ctx, c.device)
}

// Disconnect stops the reply stream and disconnects the underlying
// device. Safe to call more than once.
func (c *Client) Disconnect(ctx context.Context) error {
	c.cancel()
	return c.device.Disconnect(ctx)
}
