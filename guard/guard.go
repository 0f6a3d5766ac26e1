// Package guard enforces the safety invariants on the mutated hosts model
// before anything reaches disk. Entries that software tends to depend on,
// localhost above all, must survive any batch of operations. The guard is
// deliberately conservative: a suspicious final state is rejected, never
// silently repaired.
package guard

import (
	"fmt"
	"net/netip"

	"github.com/samber/lo"

	"github.com/hostsmith/hostsmith/hostsfile"
	"github.com/hostsmith/hostsmith/policy"
)

const (
	ReservedLocalhost     = "localhost"
	ReservedIP6Localhost  = "ip6-localhost"
	ReservedIP6Loopback   = "ip6-loopback"
	ReservedIP6Allnodes   = "ip6-allnodes"
	ReservedIP6Allrouters = "ip6-allrouters"
)

// Pin constrains which addresses a protected hostname may point at.
type Pin int

const (
	// PinAny: the hostname may be re-pointed freely, just never removed.
	PinAny Pin = iota
	// PinLoopback: every binding must be a loopback address.
	PinLoopback
	// PinExact: every binding must be one fixed address.
	PinExact
)

type Rule struct {
	Host string
	Pin  Pin
	Addr netip.Addr // only for PinExact
}

var ip6Allnodes = netip.MustParseAddr("ff02::1")
var ip6Allrouters = netip.MustParseAddr("ff02::2")

// Rules builds the protected-hostname table: the built-in reserved set,
// the machine's own hostname, and whatever the policy adds, minus any
// hostname the policy explicitly unprotects.
func Rules(cfg policy.Config, machine string) []Rule {
	rules := []Rule{
		{Host: ReservedLocalhost, Pin: PinLoopback},
		{Host: ReservedIP6Localhost, Pin: PinLoopback},
		{Host: ReservedIP6Loopback, Pin: PinLoopback},
		{Host: ReservedIP6Allnodes, Pin: PinExact, Addr: ip6Allnodes},
		{Host: ReservedIP6Allrouters, Pin: PinExact, Addr: ip6Allrouters},
	}
	if machine != "" && machine != ReservedLocalhost {
		rules = append(rules, Rule{Host: machine, Pin: PinAny})
	}
	for _, host := range cfg.Protected {
		rules = append(rules, Rule{Host: host, Pin: PinAny})
	}
	return lo.Filter(rules, func(r Rule, _ int) bool {
		return !cfg.Unprotected(r.Host)
	})
}

// Check validates the tentative result of a batch against the rules.
// The original model is consulted so that a hostname absent both before
// and after does not trip the presence check.
func Check(before, after *hostsfile.File, cfg policy.Config, machine string) error {
	if cfg.EnableDangerousOperations {
		return nil
	}
	for _, r := range Rules(cfg, machine) {
		if before.Has(r.Host) && !after.Has(r.Host) {
			return ViolationError{r.Host, "protected hostname would be removed"}
		}
		for _, line := range after.Lines {
			if line.Kind != hostsfile.KindEntry || !line.Entry.HasHost(r.Host) {
				continue
			}
			switch r.Pin {
			case PinLoopback:
				if !line.Entry.Addr.IsLoopback() {
					return ViolationError{r.Host, fmt.Sprintf("must remain a loopback address, found %s", line.Entry.Addr)}
				}
			case PinExact:
				if line.Entry.Addr != r.Addr {
					return ViolationError{r.Host, fmt.Sprintf("must remain %s, found %s", r.Addr, line.Entry.Addr)}
				}
			}
		}
	}
	return nil
}

// ViolationError reports a safety invariant broken by the batch.
type ViolationError struct {
	Hostname string
	Reason   string
}

func (e ViolationError) Error() string {
	return fmt.Sprintf("invariant violation on %q: %s", e.Hostname, e.Reason)
}
