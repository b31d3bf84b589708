package certs

import (
	"fmt"
	"net"

	"github.com/jumppad-labs/connector/crypto"
)

// GenerateSelfSigned creates a local CA and a leaf certificate signed by it
// for localhost, 127.0.0.1 and the given hosts. The leaf is written to
// certFile and keyFile, the CA certificate to caFile.
func GenerateSelfSigned(certFile, keyFile, caFile string, hosts ...string) error {
	// create the CA
	rk, err := crypto.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("unable to generate CA key: %w", err)
	}

	ca, err := crypto.GenerateCA("Matrix Panel CA", rk.Private)
	if err != nil {
		return fmt.Errorf("unable to generate CA: %w", err)
	}

	err = ca.WriteFile(caFile)
	if err != nil {
		return err
	}

	// generate the leaf cert
	k, err := crypto.GenerateKeyPair()
	if err != nil {
		return fmt.Errorf("unable to generate key: %w", err)
	}

	ips, dnsNames := splitHosts(hosts)

	lc, err := crypto.GenerateLeaf("localhost", ips, dnsNames, ca, rk.Private, k.Private)
	if err != nil {
		return fmt.Errorf("unable to generate certificate: %w", err)
	}

	err = k.Private.WriteFile(keyFile)
	if err != nil {
		return err
	}

	return lc.WriteFile(certFile)
}

func splitHosts(hosts []string) ([]string, []string) {
	ips := []string{"127.0.0.1"}
	dnsNames := []string{"localhost"}

	for _, h := range hosts {
		if h == "" || h == "localhost" || h == "127.0.0.1" {
			continue
		}

		if net.ParseIP(h) != nil {
			ips = append(ips, h)
			continue
		}

		dnsNames = append(dnsNames, h)
	}

	return ips, dnsNames
}
