package browser

import (
	"os/exec"
	"runtime"
)

// Browser handles interactions between the server and the users browser
//
//go:generate mockery --name Browser --filename browser.go
type Browser interface {
	Open(string) error
}

// BrowserImpl is a concrete implementation of the Browser interface
type BrowserImpl struct{}

// Open a URI in a new browser window
func (b *BrowserImpl) Open(uri string) error {
	openCommand, args := openerFor(runtime.GOOS)

	cmd := exec.Command(openCommand, append(args, uri)...)
	return cmd.Run()
}

func openerFor(goos string) (string, []string) {
	switch goos {
	case "linux", "freebsd", "openbsd":
		return "xdg-open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	}

	return "open", nil
}
