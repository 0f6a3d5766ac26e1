// Package policy decides which hostnames a caller may modify. The whitelist
// is loaded once per invocation from the YAML policy configuration and is
// immutable afterwards; the mutation pipeline receives it as an explicit
// parameter.
package policy

import (
	"fmt"

	"github.com/samber/lo"
)

// Config is the on-disk policy configuration.
type Config struct {
	// Whitelist of hostnames that may be added, moved or removed.
	Whitelist []Pattern `yaml:"whitelist"`
	// Protected hostnames in addition to the built-in reserved set.
	Protected []string `yaml:"protected,omitempty"`
	// Unprotect removes specific hostnames from the reserved set.
	Unprotect []string `yaml:"unprotect,omitempty"`
	// EnableDangerousOperations disables all safety checks on reserved
	// entries. Never emitted into the sample configuration.
	EnableDangerousOperations bool `yaml:"enable_dangerous_operations,omitempty"`
}

// Permitted reports whether the hostname matches at least one whitelist
// pattern.
func (c Config) Permitted(host string) bool {
	return lo.SomeBy(c.Whitelist, func(p Pattern) bool { return p.Match(host) })
}

// Unprotected reports whether protection was explicitly lifted for the
// hostname.
func (c Config) Unprotected(host string) bool {
	return lo.Contains(c.Unprotect, host)
}

// Check validates every operation target up front, so that a batch with a
// single forbidden hostname results in zero changes.
func (c Config) Check(hosts ...string) error {
	for _, host := range hosts {
		if !c.Permitted(host) {
			return ViolationError{Hostname: host}
		}
	}
	return nil
}

// Sample returns the configuration emitted by `hostsmith sample-config`.
func Sample() Config {
	pat, _ := ParsePattern("somerandomhost.with.tld")
	return Config{Whitelist: []Pattern{pat}}
}

// ViolationError is returned when an operation targets a hostname outside
// the whitelist.
type ViolationError struct {
	Hostname string
}

func (e ViolationError) Error() string {
	return fmt.Sprintf("policy violation: hostname %q is not whitelisted", e.Hostname)
}
