package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostsmith/hostsmith/commit"
	"github.com/hostsmith/hostsmith/config"
	"github.com/hostsmith/hostsmith/guard"
	"github.com/hostsmith/hostsmith/hostsfile"
	"github.com/hostsmith/hostsmith/ui"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the hosts file and policy configuration without changing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadPolicy(*config.PolicyPath)
			if err != nil {
				return err
			}
			path := *config.HostsPath
			if _, err := os.Stat(commit.TempPath(path)); err == nil {
				return commit.StaleTempFileError{Path: commit.TempPath(path)}
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("unable to read %q: %w", path, err)
			}
			f, err := hostsfile.Parse(data)
			if err != nil {
				return err
			}
			machine, _ := os.Hostname()
			if err := guard.Check(f, f, cfg, machine); err != nil {
				return err
			}
			entries := 0
			for _, line := range f.Lines {
				if line.Kind == hostsfile.KindEntry {
					entries++
				}
			}
			cmd.Println(ui.RenderOkLine(fmt.Sprintf("%s: %d entries, all invariants hold", path, entries)))
			return nil
		},
	}
	config.RootCommand.AddCommand(checkCmd)
}
