package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hostsmith/hostsmith/config"
	"github.com/hostsmith/hostsmith/version"
)

func init() {
	config.RootCommand.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.Get())
		},
	})
}
