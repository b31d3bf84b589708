package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ConfigFile is the name of the file holding the saved device address
const ConfigFile = "web_config.json"

// ErrEmptyAddress is returned when saving an empty device address
var ErrEmptyAddress = errors.New("no address provided")

// WebConfig is the on disk format of the config file
type WebConfig struct {
	SavedAddress string `json:"saved_mac_address"`
}

// Store persists the device address as a flat JSON file. Writes are not
// guarded, concurrent saves race and the last write wins.
type Store struct {
	path string
}

// NewStore creates a store for the config file in the given directory
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, ConfigFile)}
}

// Path returns the location of the config file
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the config file with the given address
func (s *Store) Save(address string) error {
	if address == "" {
		return ErrEmptyAddress
	}

	// serialize the config to json and write to a file
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("unable to create config file %s: %w", s.path, err)
	}

	return writeConfig(f, s.path, WebConfig{SavedAddress: address})
}

// writeConfig encodes wc to f and closes it, a failure to close is a failed
// write as buffered data may not have reached the disk
func writeConfig(f io.WriteCloser, path string, wc WebConfig) error {
	ne := json.NewEncoder(f)
	if err := ne.Encode(wc); err != nil {
		f.Close()
		return fmt.Errorf("unable to write config file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close config file %s: %w", path, err)
	}

	return nil
}

// Load returns the saved address, an absent or unreadable file is treated
// as no saved address
func (s *Store) Load() string {
	d, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}

	wc := WebConfig{}
	if err := json.Unmarshal(d, &wc); err != nil {
		return ""
	}

	return wc.SavedAddress
}
