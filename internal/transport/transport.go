// Package transport declares the collaborator the protocol engine needs
// from a BLE stack, without implementing one. The shape mirrors the
// service/characteristic split the reference client (built on the
// bleasy crate) used to talk to the ring: a device exposes services,
// a service exposes characteristics, and a characteristic is either
// subscribed to for notifications or written to for commands.
//
// No concrete BLE implementation lives here or anywhere in this module —
// callers wire in whatever BLE library fits their platform and adapt it
// to these interfaces. The mock subpackage backs this package's own
// tests and the client package's tests.
package transport

import (
	"context"

	"github.com/google/uuid"
)

// Device is a connected BLE peripheral.
type Device interface {
	// Services lists the GATT services the device exposes.
	Services(ctx context.Context) ([]Service, error)
	// Disconnect tears down the connection. Safe to call more than once.
	Disconnect(ctx context.Context) error
}

// Service is one GATT service on a Device.
type Service interface {
	UUID() uuid.UUID
	Characteristics(ctx context.Context) ([]Characteristic, error)
}

// Characteristic is one GATT characteristic on a Service.
type Characteristic interface {
	UUID() uuid.UUID
	// Subscribe begins notification delivery. The returned channel is
	// closed when the subscription ends, whether by Unsubscribe, by
	// context cancellation, or by the device disconnecting.
	Subscribe(ctx context.Context) (<-chan []byte, error)
	Unsubscribe(ctx context.Context) error
	// WriteCommand writes a single 16-byte command frame.
	WriteCommand(ctx context.Context, frame []byte) error
	// Read performs a one-shot characteristic read (device-info fields).
	Read(ctx context.Context) ([]byte, error)
}
