package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/jumppad-labs/matrixpanel/pkg/utils"
	"github.com/mattn/go-isatty"
)

func bannerText(scheme string, port int, networkIP string) string {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("Local:", fmt.Sprintf("%s://localhost:%d", scheme, port))
	table.AddRow("Network:", fmt.Sprintf("%s://%s:%d", scheme, networkIP, port))

	sb := strings.Builder{}
	sb.WriteString(headerText.Render("iDotMatrix Web Controller"))
	sb.WriteString("\n\n")
	sb.WriteString(greenIcon.Render("✔") + "Server started successfully!")
	sb.WriteString("\n\n")
	sb.WriteString(table.String())
	sb.WriteString("\n\n")
	sb.WriteString(grayText.Render("Press Ctrl+C to stop the server"))

	return bannerBox.Render(sb.String())
}

func printBanner(w io.Writer, scheme string, port int) {
	ip, _ := utils.GetLocalIPAndHostname()

	// plain lines when output is piped to a file or a service log
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintf(w, "Server started at %s://localhost:%d\n", scheme, port)
		fmt.Fprintf(w, "Network access at %s://%s:%d\n", scheme, ip, port)
		return
	}

	fmt.Fprintln(w, bannerText(scheme, port, ip))
}
