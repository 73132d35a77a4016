package transport

import (
	"context"
	"fmt"

	"github.com/ringctl/colmi/internal/protocol"
)

// CommandChannels are the two write characteristics the protocol's
// channel router addresses by name: UART RX for most opcodes, V2 command
// for the big-data and notification-bus opcodes.
type CommandChannels struct {
	UART Characteristic
	V2   Characteristic
}

// NotifyChannels are the two subscribe characteristics a client reads
// replies from.
type NotifyChannels struct {
	UART Characteristic
	V2   Characteristic
}

// Resolve walks a connected device's services and picks out the four
// characteristics the protocol engine needs, by UUID. It errors if any
// expected service or characteristic is missing — a ring that doesn't
// expose this shape isn't one this module can talk to.
func Resolve(ctx context.Context, dev Device) (CommandChannels, NotifyChannels, error) {
	services, err := dev.Services(ctx)
	if err != nil {
		return CommandChannels{}, NotifyChannels{}, fmt.Errorf("list services: %w", err)
	}

	var cmd CommandChannels
	var notify NotifyChannels

	for _, svc := range services {
		switch svc.UUID() {
		case protocol.UARTServiceUUID:
			chars, err := svc.Characteristics(ctx)
			if err != nil {
				return CommandChannels{}, NotifyChannels{}, fmt.Errorf("list UART characteristics: %w", err)
			}
			for _, c := range chars {
				switch c.UUID() {
				case protocol.UARTRXCharUUID:
					cmd.UART = c
				case protocol.UARTTXCharUUID:
					notify.UART = c
				}
			}
		case protocol.V2ServiceUUID:
			chars, err := svc.Characteristics(ctx)
			if err != nil {
				return CommandChannels{}, NotifyChannels{}, fmt.Errorf("list V2 characteristics: %w", err)
			}
			for _, c := range chars {
				switch c.UUID() {
				case protocol.V2CommandCharUUID:
					cmd.V2 = c
				case protocol.V2NotifyCharUUID:
					notify.V2 = c
				}
			}
		}
	}

	if cmd.UART == nil || notify.UART == nil {
		return CommandChannels{}, NotifyChannels{}, fmt.Errorf("device does not expose the UART service")
	}
	if cmd.V2 == nil || notify.V2 == nil {
		return CommandChannels{}, NotifyChannels{}, fmt.Errorf("device does not expose the V2 service")
	}
	return cmd, notify, nil
}

// DeviceDetails holds the optional hardware/firmware revision strings
// read from the device-info service, if the device exposes one.
type DeviceDetails struct {
	Hardware string
	Firmware string
}

// ReadDeviceDetails reads the hardware and firmware revision
// characteristics, if present. Either field is left empty if its
// characteristic is missing or unreadable.
func ReadDeviceDetails(ctx context.Context, dev Device) (DeviceDetails, error) {
	services, err := dev.Services(ctx)
	if err != nil {
		return DeviceDetails{}, fmt.Errorf("list services: %w", err)
	}

	var details DeviceDetails
	for _, svc := range services {
		if svc.UUID() != protocol.DeviceInfoServiceUUID {
			continue
		}
		chars, err := svc.Characteristics(ctx)
		if err != nil {
			return details, fmt.Errorf("list device-info characteristics: %w", err)
		}
		for _, c := range chars {
			switch c.UUID() {
			case protocol.DeviceHardwareUUID:
				if b, err := c.Read(ctx); err == nil {
					details.Hardware = string(b)
				}
			case protocol.DeviceFirmwareUUID:
				if b, err := c.Read(ctx); err == nil {
					details.Firmware = string(b)
				}
			}
		}
	}
	return details, nil
}
