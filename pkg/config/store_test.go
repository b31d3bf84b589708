package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWithNoFileReturnsEmpty(t *testing.T) {
	s := NewStore(t.TempDir())

	require.Equal(t, "", s.Load())
}

func TestSaveThenLoadReturnsAddress(t *testing.T) {
	s := NewStore(t.TempDir())

	err := s.Save("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)

	require.Equal(t, "AA:BB:CC:DD:EE:FF", s.Load())
}

func TestSaveOverwritesPreviousAddress(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save("AA:BB:CC:DD:EE:FF"))
	require.NoError(t, s.Save("11:22:33:44:55:66"))

	require.Equal(t, "11:22:33:44:55:66", s.Load())
}

func TestSaveWritesFlatJSON(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	require.NoError(t, s.Save("AA:BB:CC:DD:EE:FF"))

	d, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	require.NoError(t, err)
	require.JSONEq(t, `{"saved_mac_address": "AA:BB:CC:DD:EE:FF"}`, string(d))
}

func TestSaveEmptyAddressReturnsError(t *testing.T) {
	s := NewStore(t.TempDir())

	err := s.Save("")
	require.ErrorIs(t, err, ErrEmptyAddress)
	require.NoFileExists(t, s.Path())
}

func TestSaveToMissingDirectoryReturnsError(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing"))

	err := s.Save("AA:BB:CC:DD:EE:FF")
	require.Error(t, err)
}

func TestLoadMalformedFileReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("{not json"), 0644)
	require.NoError(t, err)

	require.Equal(t, "", NewStore(dir).Load())
}

type failingFile struct {
	bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
}

func (f *failingFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}

	return f.Buffer.Write(p)
}

func (f *failingFile) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteConfigReturnsCloseError(t *testing.T) {
	f := &failingFile{closeErr: fmt.Errorf("disk full")}

	err := writeConfig(f, "web_config.json", WebConfig{SavedAddress: "AA:BB:CC:DD:EE:FF"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
	require.True(t, f.closed)
}

func TestWriteConfigReturnsWriteErrorAndCloses(t *testing.T) {
	f := &failingFile{writeErr: fmt.Errorf("io error")}

	err := writeConfig(f, "web_config.json", WebConfig{SavedAddress: "AA:BB:CC:DD:EE:FF"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "io error")
	require.True(t, f.closed)
}

func TestWriteConfigClosesOnSuccess(t *testing.T) {
	f := &failingFile{}

	err := writeConfig(f, "web_config.json", WebConfig{SavedAddress: "AA:BB:CC:DD:EE:FF"})
	require.NoError(t, err)
	require.True(t, f.closed)
	require.JSONEq(t, `{"saved_mac_address": "AA:BB:CC:DD:EE:FF"}`, f.String())
}
