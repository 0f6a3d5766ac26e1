// Package apply sequences the mutation pipeline: parse the current file,
// apply the batch against the policy, validate the result, publish it.
// Everything before the commit stage is side-effect free, so any rejection
// leaves the file on disk exactly as it was.
package apply

import (
	"fmt"
	"os"

	"github.com/hostsmith/hostsmith/commit"
	"github.com/hostsmith/hostsmith/guard"
	"github.com/hostsmith/hostsmith/hostsfile"
	"github.com/hostsmith/hostsmith/ops"
	"github.com/hostsmith/hostsmith/policy"
	"github.com/hostsmith/hostsmith/xlog"
)

type Options struct {
	// DryRun renders the result without touching the filesystem.
	DryRun bool
	// Machine overrides the hostname used for the guard's reserved table.
	// Defaults to os.Hostname.
	Machine string
}

type Result struct {
	// Changed is false when the batch reconstructed the existing state.
	Changed bool
	// Output is the rendered file content, or the original content when
	// nothing changed.
	Output []byte
}

// Run executes one batch of operations against the hosts file at path.
func Run(path string, batch []ops.Op, cfg policy.Config, opts Options) (Result, error) {
	if opts.Machine == "" {
		opts.Machine, _ = os.Hostname()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("unable to read %q: %w", path, err)
	}
	orig, err := hostsfile.Parse(data)
	if err != nil {
		return Result{}, err
	}

	// Whole batch is vetted before a single line moves: one forbidden
	// hostname means zero changes.
	if err := cfg.Check(ops.Targets(batch)...); err != nil {
		return Result{}, err
	}

	work := orig.Clone()
	for _, op := range batch {
		xlog.Debug().Stringer("op", op).Msg("applying")
		switch op.Kind {
		case ops.Remove:
			work.RemoveHost(op.Host)
		case ops.Set:
			work.SetHost(op.Addr, op.Host)
		case ops.Add:
			if err := work.AddHost(op.Addr, op.Host); err != nil {
				return Result{}, fmt.Errorf("applying %s: %w", op, err)
			}
		}
	}

	if err := guard.Check(orig, work, cfg, opts.Machine); err != nil {
		return Result{}, err
	}

	if work.Equals(orig) {
		xlog.Debug().Msg("no changes, hosts file left as is")
		return Result{Changed: false, Output: data}, nil
	}

	work.Normalize()
	out := work.Render()
	if opts.DryRun {
		return Result{Changed: true, Output: out}, nil
	}
	if err := commit.Commit(path, out); err != nil {
		return Result{}, err
	}
	xlog.Info().Str("path", path).Msg("hosts file updated")
	return Result{Changed: true, Output: out}, nil
}
