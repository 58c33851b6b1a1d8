package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppState remembers session details between runs.
type AppState struct {
	LastDeviceID   string `json:"last_device_id,omitempty"`
	LastDeviceName string `json:"last_device_name,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cubesolver")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a state file manager, loading any existing state.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// NewDefaultStateFile creates a state file manager at the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, &sf.state)
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// SetLastDevice records the last connected device.
func (sf *StateFile) SetLastDevice(deviceID, deviceName string) error {
	sf.state.LastDeviceID = deviceID
	sf.state.LastDeviceName = deviceName
	return sf.Save()
}

// LastDeviceID returns the last connected device ID.
func (sf *StateFile) LastDeviceID() string {
	return sf.state.LastDeviceID
}

// LastDeviceName returns the last connected device name.
func (sf *StateFile) LastDeviceName() string {
	return sf.state.LastDeviceName
}
