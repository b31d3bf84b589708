package clients

import (
	"time"

	"github.com/jumppad-labs/matrixpanel/pkg/clients/browser"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/command"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/http"
	"github.com/jumppad-labs/matrixpanel/pkg/clients/logger"
)

type Clients struct {
	Command command.Command
	HTTP    http.HTTP
	Browser browser.Browser
	Logger  logger.Logger
}

// GenerateClients creates the clients used by the server, commandTimeout
// is the maximum time a device command is allowed to run
func GenerateClients(commandTimeout time.Duration, l logger.Logger) *Clients {
	ec := command.NewCommand(commandTimeout, l)

	hc := http.NewHTTP(200*time.Millisecond, l)

	bc := &browser.BrowserImpl{}

	return &Clients{
		Command: ec,
		HTTP:    hc,
		Browser: bc,
		Logger:  l,
	}
}
