package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hostsmith/hostsmith/config"
	"github.com/hostsmith/hostsmith/ui"
)

func init() {
	sampleCmd := &cobra.Command{
		Use:   "sample-config",
		Short: "Generate a sample policy configuration",
		Args:  cobra.NoArgs,
	}
	write := sampleCmd.Flags().BoolP("write", "w", false, "Save to the policy configuration path instead of stdout")
	sampleCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if *write {
			if err := config.WriteSamplePolicy(*config.PolicyPath); err != nil {
				return err
			}
			cmd.Println(ui.RenderOkLine("sample configuration written to " + *config.PolicyPath))
			return nil
		}
		cmd.Print(string(config.SamplePolicy()))
		return nil
	}
	config.RootCommand.AddCommand(sampleCmd)
}
