package certs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jumppad-labs/matrixpanel/pkg/clients/command"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/command/types"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
)

const (
	CertFile = "server.crt"
	KeyFile  = "server.key"
	CAFile   = "server-ca.crt"

	DefaultLetsEncryptDir = "/etc/letsencrypt"

	certbotTimeout = 5 * time.Minute
)

// Provisioner obtains the certificate and key used to serve HTTPS
type Provisioner struct {
	command        command.Command
	dir            string
	letsEncryptDir string
	log            logger.Logger
}

// NewProvisioner creates a provisioner which writes self signed certificates
// to dir and reads ACME certificates from letsEncryptDir
func NewProvisioner(c command.Command, dir, letsEncryptDir string, l logger.Logger) *Provisioner {
	if letsEncryptDir == "" {
		letsEncryptDir = DefaultLetsEncryptDir
	}

	return &Provisioner{c, dir, letsEncryptDir, l}
}

// Provision returns the paths of the certificate and key for domain. When an
// email is given a certificate is requested from Let's Encrypt with certbot,
// on failure or without an email a self signed pair is generated, or reused
// when one already exists. Only a failure to generate the self signed pair is
// returned as an error.
func (p *Provisioner) Provision(domain, email string) (string, string, error) {
	if email != "" {
		cert, key, err := p.letsEncrypt(domain, email)
		if err == nil {
			p.log.Info("Let's Encrypt certificate obtained", "domain", domain, "cert", cert)
			return cert, key, nil
		}

		p.log.Warn("Unable to obtain Let's Encrypt certificate, falling back to self signed certificate", "error", err)
	}

	return p.SelfSigned(domain)
}

// SelfSigned returns the self signed certificate pair in the provisioners
// directory, generating it when either file is missing
func (p *Provisioner) SelfSigned(domain string) (string, string, error) {
	cert := filepath.Join(p.dir, CertFile)
	key := filepath.Join(p.dir, KeyFile)

	if fileExists(cert) && fileExists(key) {
		p.log.Debug("Using existing certificate", "cert", cert, "key", key)
		return cert, key, nil
	}

	err := GenerateSelfSigned(cert, key, filepath.Join(p.dir, CAFile), domain)
	if err != nil {
		return "", "", fmt.Errorf("unable to create self signed certificate: %w", err)
	}

	p.log.Info("Created self signed certificate", "cert", cert, "key", key)

	return cert, key, nil
}

func (p *Provisioner) letsEncrypt(domain, email string) (string, string, error) {
	// check certbot is installed
	r, err := p.command.Execute(types.CommandConfig{
		Command: "certbot",
		Args:    []string{"--version"},
	})

	if err != nil || r.ExitCode != 0 {
		return "", "", fmt.Errorf("certbot is not installed, install with: sudo apt install certbot")
	}

	r, err = p.command.Execute(types.CommandConfig{
		Command: "certbot",
		Args: []string{
			"certonly", "--standalone",
			"--non-interactive", "--agree-tos",
			"--email", email,
			"-d", domain,
		},
		Timeout:      certbotTimeout,
		StreamOutput: true,
	})

	if err != nil {
		return "", "", fmt.Errorf("unable to run certbot: %w", err)
	}

	if r.ExitCode != 0 {
		return "", "", fmt.Errorf("certbot failed with exit code %d: %s", r.ExitCode, r.Stderr)
	}

	live := filepath.Join(p.letsEncryptDir, "live", domain)
	cert := filepath.Join(live, "fullchain.pem")
	key := filepath.Join(live, "privkey.pem")

	if !fileExists(cert) || !fileExists(key) {
		return "", "", fmt.Errorf("certificate files not found in %s after certbot run", live)
	}

	return cert, key, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
