package cmd

import (
	"fmt"
	"net"
	"time"

	"github.com/jumppad-labs/matrixpanel/pkg/bridge"
	"github.com/jumppad-labs/matrixpanel/pkg/certs"
	"github.com/jumppad-labs/matrixpanel/pkg/clients"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/browser"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/http"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
	"github.com/jumppad-labs/matrixpanel/pkg/config"
	"github.com/jumppad-labs/matrixpanel/pkg/server"
	"github.com/jumppad-labs/matrixpanel/pkg/utils"
	"github.com/spf13/cobra"
)

// time allowed for the server to start before the browser is opened
const checkDuration = 10 * time.Second

type serveOptions struct {
	port           int
	noBrowser      bool
	domain         string
	email          string
	dir            string
	program        string
	timeout        time.Duration
	letsEncryptDir string
}

// useTLS returns true when the panel should be served over HTTPS
func (o *serveOptions) useTLS() bool {
	return o.domain != "" && o.domain != "localhost"
}

func (o *serveOptions) scheme() string {
	if o.useTLS() {
		return "https"
	}

	return "http"
}

func newServeCmdFunc(cl *clients.Clients, opts *serveOptions, l logger.Logger) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dir := utils.EnsureAbsolute(opts.dir)

		var certFile, keyFile string
		if opts.useTLS() {
			p := certs.NewProvisioner(cl.Command, dir, opts.letsEncryptDir, l)

			var err error
			certFile, keyFile, err = p.Provision(opts.domain, opts.email)
			if err != nil {
				return fmt.Errorf("unable to provision TLS certificate: %w", err)
			}
		}

		b := bridge.New(cl.Command, dir, bridge.ResolveProgram(dir, opts.program), opts.timeout, l)
		l.Debug("Using device program", "program", b.Program(), "dir", dir)

		addr := fmt.Sprintf(":%d", opts.port)
		api := server.New(addr, dir, b, config.NewStore(dir), l)

		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("unable to listen on %s: %w", addr, err)
		}

		printBanner(cmd.OutOrStdout(), opts.scheme(), opts.port)

		errCh := make(chan error, 1)
		go func() {
			errCh <- api.Serve(ln, certFile, keyFile)
		}()

		if !opts.noBrowser {
			uri := fmt.Sprintf("%s://localhost:%d", opts.scheme(), opts.port)
			go openBrowser(cl.HTTP, cl.Browser, uri, l)
		}

		select {
		case <-cmd.Context().Done():
			api.Stop()
			<-errCh

			cmd.Println("")
			cmd.Println("Server stopped by user")

			return nil
		case err := <-errCh:
			return err
		}
	}
}

// openBrowser waits for the server to respond and opens the panel in the
// users browser, failures are logged and not returned
func openBrowser(hc http.HTTP, bc browser.Browser, uri string, l logger.Logger) {
	// the index page may not exist, any response means the server is up
	err := hc.HealthCheckHTTP(uri, []int{200, 404}, checkDuration)
	if err != nil {
		l.Error("Server did not become ready, not opening browser", "uri", uri, "error", err)
		return
	}

	err = bc.Open(uri)
	if err != nil {
		l.Error("Could not open browser automatically", "error", err)
		return
	}

	l.Info("Browser opened automatically", "uri", uri)
}
