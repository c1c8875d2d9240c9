package version

import (
	"fmt"

	"github.com/jongio/rfcurl/cliout"
	"github.com/spf13/cobra"
)

// NewCommand creates a version command that displays build info in the
// current cliout format.
func NewCommand(info *Info) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if quiet && !cliout.IsStructured() {
				fmt.Println(info.Version)
				return nil
			}

			return cliout.Print(info, func() {
				cliout.Header(fmt.Sprintf("%s Version", info.Name))
				cliout.Label("Version", info.Version)
				cliout.Label("Build Date", info.BuildDate)
				cliout.Label("Git Commit", info.GitCommit)
				cliout.Label("Go Version", info.GoVersion)
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
