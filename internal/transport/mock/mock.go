// Package mock is an in-memory implementation of internal/transport's
// interfaces, for driving transport and client tests without a real BLE
// stack.
package mock

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ringctl/colmi/internal/transport"
)

// Characteristic is a channel-backed fake of transport.Characteristic.
// Push delivers a notification payload to any active subscriber; Written
// records every WriteCommand call for assertions.
type Characteristic struct {
	id uuid.UUID

	mu      sync.Mutex
	sub     chan []byte
	written [][]byte
	readVal []byte
}

// NewCharacteristic constructs a Characteristic identified by id, whose
// one-shot Read calls return readVal.
func NewCharacteristic(id uuid.UUID, readVal []byte) *Characteristic {
	return &Characteristic{id: id, readVal: readVal}
}

func (c *Characteristic) UUID() uuid.UUID { return c.id }

func (c *Characteristic) Subscribe(ctx context.Context) (<-chan []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sub = make(chan []byte, 16)
	return c.sub, nil
}

func (c *Characteristic) Unsubscribe(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		close(c.sub)
		c.sub = nil
	}
	return nil
}

func (c *Characteristic) WriteCommand(ctx context.Context, frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, append([]byte{}, frame...))
	return nil
}

func (c *Characteristic) Read(ctx context.Context) ([]byte, error) {
	return c.readVal, nil
}

// Push delivers one notification payload to the active subscriber, if
// any. It no-ops if nothing is subscribed.
func (c *Characteristic) Push(payload []byte) {
	c.mu.Lock()
	sub := c.sub
	c.mu.Unlock()
	if sub != nil {
		sub <- payload
	}
}

// Written returns every frame handed to WriteCommand, in order.
func (c *Characteristic) Written() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte{}, c.written...)
}

// Service is a fixed list of Characteristics under one UUID.
type Service struct {
	id    uuid.UUID
	chars []transport.Characteristic
}

// NewService constructs a Service exposing chars.
func NewService(id uuid.UUID, chars ...transport.Characteristic) *Service {
	return &Service{id: id, chars: chars}
}

func (s *Service) UUID() uuid.UUID { return s.id }

func (s *Service) Characteristics(ctx context.Context) ([]transport.Characteristic, error) {
	return s.chars, nil
}

// Device is a fixed list of Services. Disconnect closes every
// characteristic's active subscription.
type Device struct {
	services []transport.Service
}

// NewDevice constructs a Device exposing svcs.
func NewDevice(svcs ...transport.Service) *Device {
	return &Device{services: svcs}
}

func (d *Device) Services(ctx context.Context) ([]transport.Service, error) {
	return d.services, nil
}

func (d *Device) Disconnect(ctx context.Context) error {
	for _, svc := range d.services {
		chars, _ := svc.Characteristics(context.Background())
		for _, c := range chars {
			_ = c.Unsubscribe(context.Background())
		}
	}
	return nil
}
