package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/jumppad-labs/matrixpanel/pkg/config"
	"github.com/jumppad-labs/matrixpanel/pkg/utils"
	"github.com/spf13/cobra"
)

func newAddressCmd() *cobra.Command {
	var dir string
	var set string
	var jsonOut bool

	addressCmd := &cobra.Command{
		Use:   "address",
		Short: "Show or set the saved device address",
		Long:  `Show or set the device address the web interface stores in web_config.json`,
		Example: `
  # Show the saved address
  matrixpanel address

  # Save a new address
  matrixpanel address --set AA:BB:CC:DD:EE:FF
	`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := config.NewStore(utils.EnsureAbsolute(dir))

			if set != "" {
				if err := s.Save(set); err != nil {
					return err
				}
			}

			if !jsonOut {
				cmd.Println(whiteText.Render("address") + grayText.Render("=") + greenIcon.Render(s.Load()))
				return nil
			}

			formatter := prettyjson.Formatter{
				Indent:          2,
				KeyColor:        color.New(color.FgWhite, color.Bold),
				StringColor:     color.New(color.FgGreen, color.Bold),
				BoolColor:       color.New(color.FgGreen, color.Bold),
				NumberColor:     color.New(color.FgGreen, color.Bold),
				NullColor:       color.New(color.FgBlack, color.Bold),
				DisabledColor:   color.NoColor,
				StringMaxLength: 0,
				Newline:         "\n",
			}

			d, err := formatter.Marshal(config.WebConfig{SavedAddress: s.Load()})
			if err != nil {
				return fmt.Errorf("unable to format config: %w", err)
			}

			cmd.Println(string(d))
			return nil
		},
	}

	addressCmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory containing web_config.json")
	addressCmd.Flags().StringVarP(&set, "set", "", "", "Save the given address before printing it")
	addressCmd.Flags().BoolVarP(&jsonOut, "json", "", false, "Output the config as JSON")

	return addressCmd
}
