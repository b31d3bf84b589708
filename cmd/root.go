package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jumppad-labs/matrixpanel/pkg/bridge"
	"github.com/jumppad-labs/matrixpanel/pkg/certs"
	"github.com/jumppad-labs/matrixpanel/pkg/clients"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
	"github.com/spf13/cobra"
)

var version string // set by build process
var date string    // set by build process
var commit string  // set by build process

func newRootCmd(cl *clients.Clients, l logger.Logger) *cobra.Command {
	opts := &serveOptions{}

	rootCmd := &cobra.Command{
		Use:   "matrixpanel",
		Short: "Web control panel for iDotMatrix displays",
		Long: `Serves the iDotMatrix web controller and relays the commands it sends
to the device control program`,
		Example: `
  # Serve the panel from the current directory on port 8080
  matrixpanel

  # Serve over HTTPS with a Let's Encrypt certificate
  matrixpanel --domain matrix.example.com --email me@example.com --port 443
	`,
		Args:         cobra.NoArgs,
		RunE:         newServeCmdFunc(cl, opts, l),
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVarP(&opts.port, "port", "p", 8080, "Port to run the server on")
	rootCmd.Flags().BoolVarP(&opts.noBrowser, "no-browser", "", false, "When set the browser is not opened automatically")
	rootCmd.Flags().StringVarP(&opts.domain, "domain", "", "", "Domain name or IP address, when set to anything other than localhost the server uses HTTPS")
	rootCmd.Flags().StringVarP(&opts.email, "email", "", "", "Email address used to request a Let's Encrypt certificate")
	rootCmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Directory containing the web interface and device control program")
	rootCmd.Flags().StringVarP(&opts.program, "program", "", "", "Command used to run the device control program, defaults to run_in_venv.sh or app.py in the directory")
	rootCmd.Flags().DurationVarP(&opts.timeout, "timeout", "", bridge.DefaultTimeout, "Maximum time a device command may run")
	rootCmd.Flags().StringVarP(&opts.letsEncryptDir, "letsencrypt-dir", "", certs.DefaultLetsEncryptDir, "Directory certbot writes certificates to")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAddressCmd())
	rootCmd.AddCommand(newGenerateCertsCmd(l))

	return rootCmd
}

func createLogger() logger.Logger {
	// set the log level
	if lev := os.Getenv("LOG_LEVEL"); lev != "" {
		return logger.NewLogger(os.Stdout, lev)
	}

	return logger.NewLogger(os.Stdout, logger.LogLevelInfo)
}

// Execute the root command, ctx is cancelled to stop the server
func Execute(ctx context.Context, v, c, d string) error {
	version = v
	commit = c
	date = d

	l := createLogger()
	cl := clients.GenerateClients(bridge.DefaultTimeout, l)

	rootCmd := newRootCmd(cl, l)
	rootCmd.SilenceErrors = true

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Println("")
		fmt.Println(err)
	}

	return err
}
