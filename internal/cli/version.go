package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/nightsky/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nightsky version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nightsky version %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
