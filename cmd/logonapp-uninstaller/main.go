// Command logonapp-uninstaller removes the Logon App, its legacy files and
// its registry entries from this machine. It must run elevated.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/crafted-tech/logonapp/internal/uninstall"
)

func newRootCmd(exit func(int)) *cobra.Command {
	return &cobra.Command{
		Use:           "logonapp-uninstaller",
		Short:         "Remove the Logon App and everything it left behind",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, _ []string) {
			fd := os.Stdout.Fd()
			styled := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
			cfg := uninstall.DefaultConfig(cmd.InOrStdin(), cmd.OutOrStdout(), styled)
			exit(uninstall.Run(cfg))
		},
	}
}

func main() {
	if err := newRootCmd(os.Exit).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
