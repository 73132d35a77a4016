package config

import "time"

// Registry represents the entire user configuration file. This stores
// user-defined metadata for paired rings and application preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Devices     map[string]*Device `yaml:"devices,omitempty"` // keyed by device MAC address
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Device represents user-defined metadata for a single paired ring. This
// is keyed by the device's BLE MAC address in the Registry.
type Device struct {
	Nickname       string         `yaml:"nickname,omitempty"`      // user-friendly name
	LastAddr       string         `yaml:"last_addr,omitempty"`     // last known BLE address
	LastSeen       time.Time      `yaml:"last_seen,omitempty"`     // last connection time
	HeartRatePrefs *SamplingPrefs `yaml:"heart_rate,omitempty"`    // last-written auto-sampling settings
	StressPrefs    *SamplingPrefs `yaml:"stress,omitempty"`        // last-written auto-sampling settings
}

// SamplingPrefs records the auto-sampling configuration last written to
// a device, for display and quick-restore without a round trip to the
// ring.
type SamplingPrefs struct {
	Enabled  bool  `yaml:"enabled"`
	Interval uint8 `yaml:"interval_minutes"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	AutoConnect    bool   `yaml:"auto_connect"`       // connect to the last-used ring without prompting
	ScanTimeoutSec int    `yaml:"scan_timeout_sec"`   // BLE scan timeout in seconds
	DefaultRing    string `yaml:"default_ring,omitempty"` // MAC address of the ring to use when none is given
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Devices: make(map[string]*Device),
		Preferences: &Preferences{
			AutoConnect:    true,
			ScanTimeoutSec: 10,
		},
	}
}

// GetDevice retrieves device metadata by MAC address. Returns nil if the
// device doesn't exist in the registry.
func (r *Registry) GetDevice(addr string) *Device {
	return r.Devices[addr]
}

// EnsureDevice ensures a device entry exists in the registry. If the
// device doesn't exist, creates a new entry with default values. Returns
// the device entry (existing or newly created).
func (r *Registry) EnsureDevice(addr string) *Device {
	if r.Devices == nil {
		r.Devices = make(map[string]*Device)
	}
	if device, exists := r.Devices[addr]; exists {
		return device
	}
	device := &Device{}
	r.Devices[addr] = device
	return device
}

// UpdateDeviceLastSeen updates the last-seen timestamp for a device.
func (r *Registry) UpdateDeviceLastSeen(addr string) {
	device := r.EnsureDevice(addr)
	device.LastSeen = time.Now()
	device.LastAddr = addr
}

// SetDeviceNickname sets a user-friendly nickname for a device.
func (r *Registry) SetDeviceNickname(addr, nickname string) {
	device := r.EnsureDevice(addr)
	device.Nickname = nickname
}

// RecordHeartRatePrefs records the auto-sampling settings last written
// to a device's heart-rate monitor.
func (r *Registry) RecordHeartRatePrefs(addr string, enabled bool, interval uint8) {
	device := r.EnsureDevice(addr)
	device.HeartRatePrefs = &SamplingPrefs{Enabled: enabled, Interval: interval}
}

// RecordStressPrefs records the auto-sampling settings last written to a
// device's stress monitor.
func (r *Registry) RecordStressPrefs(addr string, enabled bool, interval uint8) {
	device := r.EnsureDevice(addr)
	device.StressPrefs = &SamplingPrefs{Enabled: enabled, Interval: interval}
}
