// Package ops models the requested hosts file changes. Action tokens take
// three shapes, processed strictly in the order supplied:
//
//	-HOST       remove the hostname everywhere
//	ADDR=HOST   map the hostname to the address, vacating other mappings
//	ADDR+=HOST  map the hostname to the address, keeping the other family
package ops

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/hostsmith/hostsmith/hostsfile"
)

type Kind int

const (
	Remove Kind = iota
	Set
	Add
)

// Op is a single requested change with exactly one target hostname.
type Op struct {
	Kind Kind
	Addr netip.Addr // unset for Remove
	Host string
}

func (o Op) String() string {
	switch o.Kind {
	case Remove:
		return "-" + o.Host
	case Add:
		return fmt.Sprintf("%s+=%s", o.Addr, o.Host)
	default:
		return fmt.Sprintf("%s=%s", o.Addr, o.Host)
	}
}

// SyntaxError is a malformed action token. An unparseable address is
// rejected here, before the pipeline ever runs, rather than being carried
// along as an opaque string.
type SyntaxError struct {
	Token  string
	Reason string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("invalid action %q: %s", e.Token, e.Reason)
}

// Parse translates one action token.
func Parse(token string) (Op, error) {
	if host, ok := strings.CutPrefix(token, "-"); ok {
		if !hostsfile.ValidHostname(host) {
			return Op{}, SyntaxError{token, "malformed hostname"}
		}
		return Op{Kind: Remove, Host: host}, nil
	}

	kind := Set
	addrStr, host, found := strings.Cut(token, "=")
	if !found {
		return Op{}, SyntaxError{token, "expected -HOST, ADDR=HOST or ADDR+=HOST"}
	}
	if s, ok := strings.CutSuffix(addrStr, "+"); ok {
		kind = Add
		addrStr = s
	}
	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return Op{}, SyntaxError{token, "malformed address"}
	}
	if !hostsfile.ValidHostname(host) {
		return Op{}, SyntaxError{token, "malformed hostname"}
	}
	return Op{Kind: kind, Addr: addr, Host: host}, nil
}

// ParseAll translates an ordered token list, failing on the first bad one.
func ParseAll(tokens []string) ([]Op, error) {
	out := make([]Op, 0, len(tokens))
	for _, token := range tokens {
		op, err := Parse(token)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, nil
}

// Targets lists every hostname the batch touches, in order.
func Targets(ops []Op) []string {
	hosts := make([]string, len(ops))
	for i, op := range ops {
		hosts[i] = op.Host
	}
	return hosts
}
