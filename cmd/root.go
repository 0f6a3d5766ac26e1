package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/hostsmith/hostsmith/apply"
	"github.com/hostsmith/hostsmith/config"
	"github.com/hostsmith/hostsmith/ops"
	"github.com/hostsmith/hostsmith/ui"
	"github.com/hostsmith/hostsmith/version"
	"github.com/hostsmith/hostsmith/xlog"
)

var optDryRun = config.RootCommand.Flags().BoolP(
	"dry-run", "n",
	false,
	"Make no change and print what would have changed",
)

func init() {
	root := config.RootCommand
	root.Use = "hostsmith [actions...]"
	root.Long = `Tool for modifying the system hosts file to simulate arbitrary DNS A and AAAA records.

Intended to be installed setuid root so unprivileged users can update entries,
e.g. after launching a container or while testing virtual hosts locally. The
policy configuration defines a whitelist of hostnames that may be modified;
everything else, including reserved entries like localhost, is refused.

Nothing is persisted until the very end of the run: the new file is staged
next to the original and moved into place in a single rename, so any earlier
error leaves the existing hosts file intact.

Actions are processed in the order provided. There are three forms:

  -HOST        Remove the hostname. Entries left without hostnames are dropped.
  ADDR=HOST    Define exclusively: any other mapping of HOST is vacated first.
  ADDR+=HOST   Define additionally: keeps a mapping in the other address family.

ADDR may be any IPv4 or IPv6 literal; it is checked for valid format only.

Removal actions start with a dash, so prefix the action list with -- to stop
flag parsing:

  hostsmith -n -- -old.example 10.0.0.9=app.example`
	root.Args = cobra.ArbitraryArgs
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *config.Verbose {
			xlog.SetLoggerLevel(xlog.LevelDebug)
		}
	}
	root.RunE = runRoot
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	batch, err := ops.ParseAll(args)
	if err != nil {
		return err
	}
	cfg, err := config.LoadPolicy(*config.PolicyPath)
	if err != nil {
		return err
	}

	dry := *optDryRun
	if !dry && runtime.GOOS != "windows" && os.Geteuid() != 0 {
		xlog.Warn().Msg("not effectively root, forced dry-run mode")
		dry = true
	}

	res, err := apply.Run(*config.HostsPath, batch, cfg, apply.Options{DryRun: dry})
	if err != nil {
		return err
	}
	if dry || *config.Verbose {
		cmd.Println(string(res.Output))
	}
	switch {
	case !res.Changed:
		cmd.Println(ui.RenderOkLine("no changes needed"))
	case dry:
		cmd.Println(ui.RenderOkLine("dry-run, hosts file not modified"))
	default:
		cmd.Println(ui.RenderOkLine("hosts file updated"))
	}
	return nil
}

func Execute() {
	maxprocs.Set()
	config.RootCommand.Short += ui.FaintStyle.Render(" (" + version.Get() + ")")
	if err := config.RootCommand.Execute(); err != nil {
		ui.ExitWithError(err)
	}
}
