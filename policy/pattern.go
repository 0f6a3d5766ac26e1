package policy

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type patternKind int

const (
	matchExact patternKind = iota
	matchSuffix            // "*.example" style, leading wildcard
	matchPrefix            // "app.*" style, trailing wildcard
)

// Pattern matches hostnames against a whitelist entry. The supported forms
// are a closed set: exact hostname, leading wildcard ("*.example") and
// trailing wildcard ("app.*"). Anything fancier is rejected at parse time
// so the whitelist stays auditable.
type Pattern struct {
	kind patternKind
	text string
}

func ParsePattern(s string) (p Pattern, err error) {
	switch {
	case s == "":
		return p, fmt.Errorf("empty whitelist pattern")
	case strings.HasPrefix(s, "*"):
		p = Pattern{matchSuffix, s[1:]}
	case strings.HasSuffix(s, "*"):
		p = Pattern{matchPrefix, s[:len(s)-1]}
	default:
		p = Pattern{matchExact, s}
	}
	if strings.Contains(p.text, "*") {
		return Pattern{}, fmt.Errorf("invalid whitelist pattern %q: only a single leading or trailing wildcard is supported", s)
	}
	if p.kind != matchExact && p.text == "" {
		return Pattern{}, fmt.Errorf("invalid whitelist pattern %q: bare wildcard would allow every hostname", s)
	}
	return p, nil
}

func (p Pattern) Match(host string) bool {
	switch p.kind {
	case matchSuffix:
		return strings.HasSuffix(host, p.text)
	case matchPrefix:
		return strings.HasPrefix(host, p.text)
	default:
		return host == p.text
	}
}

func (p Pattern) String() string {
	switch p.kind {
	case matchSuffix:
		return "*" + p.text
	case matchPrefix:
		return p.text + "*"
	default:
		return p.text
	}
}

func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
func (p *Pattern) UnmarshalText(text []byte) (err error) {
	*p, err = ParsePattern(string(text))
	return
}
func (p Pattern) MarshalYAML() (any, error) {
	return p.String(), nil
}
func (p *Pattern) UnmarshalYAML(node *yaml.Node) error {
	var res string
	if err := node.Decode(&res); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(res))
}
