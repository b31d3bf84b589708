package certs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jumppad-labs/matrixpanel/pkg/clients/command/types"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func isVersionCheck(c types.CommandConfig) bool {
	return c.Command == "certbot" && len(c.Args) == 1 && c.Args[0] == "--version"
}

func isCertOnly(c types.CommandConfig) bool {
	return c.Command == "certbot" && len(c.Args) > 0 && c.Args[0] == "certonly"
}

func setupProvisioner(t *testing.T) (*Provisioner, *mocks.Command, string, string) {
	dir := t.TempDir()
	le := t.TempDir()
	mc := &mocks.Command{}

	return NewProvisioner(mc, dir, le, logger.NewTestLogger(t)), mc, dir, le
}

func writeLiveCerts(t *testing.T, le, domain string) {
	live := filepath.Join(le, "live", domain)
	require.NoError(t, os.MkdirAll(live, os.ModePerm))
	require.NoError(t, os.WriteFile(filepath.Join(live, "fullchain.pem"), []byte("cert"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(live, "privkey.pem"), []byte("key"), 0600))
}

func TestProvisionWithoutEmailGeneratesSelfSigned(t *testing.T) {
	p, mc, dir, _ := setupProvisioner(t)

	cert, key, err := p.Provision("192.168.1.20", "")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, CertFile), cert)
	require.Equal(t, filepath.Join(dir, KeyFile), key)
	require.FileExists(t, cert)
	require.FileExists(t, key)
	mc.AssertNotCalled(t, "Execute", mock.Anything)
}

func TestProvisionReusesExistingPair(t *testing.T) {
	p, _, dir, _ := setupProvisioner(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, CertFile), []byte("existing cert"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyFile), []byte("existing key"), 0600))

	cert, _, err := p.Provision("192.168.1.20", "")
	require.NoError(t, err)

	d, err := os.ReadFile(cert)
	require.NoError(t, err)
	require.Equal(t, "existing cert", string(d))
}

func TestProvisionWithEmailUsesLetsEncrypt(t *testing.T) {
	p, mc, _, le := setupProvisioner(t)
	writeLiveCerts(t, le, "matrix.example.com")

	mc.On("Execute", mock.MatchedBy(isVersionCheck)).Return(&types.CommandResult{Stdout: "certbot 2.9.0"}, nil)
	mc.On("Execute", mock.MatchedBy(isCertOnly)).Return(&types.CommandResult{}, nil)

	cert, key, err := p.Provision("matrix.example.com", "me@example.com")
	require.NoError(t, err)

	require.Equal(t, filepath.Join(le, "live", "matrix.example.com", "fullchain.pem"), cert)
	require.Equal(t, filepath.Join(le, "live", "matrix.example.com", "privkey.pem"), key)

	cfg := mc.Calls[1].Arguments[0].(types.CommandConfig)
	require.Contains(t, cfg.Args, "me@example.com")
	require.Contains(t, cfg.Args, "matrix.example.com")
	require.True(t, cfg.StreamOutput)
}

func TestProvisionFallsBackWhenCertbotMissing(t *testing.T) {
	p, mc, dir, _ := setupProvisioner(t)

	mc.On("Execute", mock.MatchedBy(isVersionCheck)).Return(nil, fmt.Errorf("executable file not found"))

	cert, _, err := p.Provision("matrix.example.com", "me@example.com")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, CertFile), cert)
	require.FileExists(t, cert)
}

func TestProvisionFallsBackWhenCertbotFails(t *testing.T) {
	p, mc, dir, _ := setupProvisioner(t)

	mc.On("Execute", mock.MatchedBy(isVersionCheck)).Return(&types.CommandResult{}, nil)
	mc.On("Execute", mock.MatchedBy(isCertOnly)).Return(&types.CommandResult{ExitCode: 1, Stderr: "challenge failed"}, nil)

	cert, _, err := p.Provision("matrix.example.com", "me@example.com")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, CertFile), cert)
}

func TestProvisionFallsBackWhenCertificatesMissing(t *testing.T) {
	p, mc, dir, _ := setupProvisioner(t)

	mc.On("Execute", mock.MatchedBy(isVersionCheck)).Return(&types.CommandResult{}, nil)
	mc.On("Execute", mock.MatchedBy(isCertOnly)).Return(&types.CommandResult{}, nil)

	cert, _, err := p.Provision("matrix.example.com", "me@example.com")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, CertFile), cert)
}

func TestProvisionReturnsErrorWhenGenerationFails(t *testing.T) {
	mc := &mocks.Command{}
	p := NewProvisioner(mc, filepath.Join(t.TempDir(), "missing"), "", logger.NewTestLogger(t))

	_, _, err := p.Provision("192.168.1.20", "")
	require.Error(t, err)
}
