package cmd

import (
	"path/filepath"

	"github.com/jumppad-labs/matrixpanel/pkg/certs"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
	"github.com/spf13/cobra"
)

func newGenerateCertsCmd(l logger.Logger) *cobra.Command {
	var hosts []string

	generateCertsCmd := &cobra.Command{
		Use:   "generate-certs [output location]",
		Short: "Generate a self signed TLS certificate for the server",
		Long: `Generates a local CA and a certificate signed by it for localhost and any given hosts.
The files server.crt, server.key and server-ca.crt are written to the output location,
replacing any existing files`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := "."
			if len(args) == 1 {
				out = args[0]
			}

			cert := filepath.Join(out, certs.CertFile)
			key := filepath.Join(out, certs.KeyFile)

			err := certs.GenerateSelfSigned(cert, key, filepath.Join(out, certs.CAFile), hosts...)
			if err != nil {
				return err
			}

			l.Info("Created self signed certificate", "cert", cert, "key", key)
			return nil
		},
	}

	generateCertsCmd.Flags().StringSliceVarP(&hosts, "host", "", []string{}, "IP address or DNS name to add to the certificate")

	return generateCertsCmd
}
