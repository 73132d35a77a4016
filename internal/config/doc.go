// Package config provides user configuration management for ringctl.
//
// This package manages a YAML-based configuration file that stores
// user-defined metadata for paired rings — nicknames, last-seen
// addresses, and the auto-sampling preferences last written to each
// device — plus application-wide preferences. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/ringctl/config.yaml or $HOME/.config/ringctl/config.yaml
//   - macOS: $HOME/.config/ringctl/config.yaml
//   - Windows: %LOCALAPPDATA%\ringctl\config.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.SetDeviceNickname("aa:bb:cc:dd:ee:ff", "Left hand ring")
//	registry.RecordHeartRatePrefs("aa:bb:cc:dd:ee:ff", true, 5)
//
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
