package policy

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParsePattern(t *testing.T) {
	cases := []struct {
		pattern string
		match   []string
		miss    []string
	}{
		{"app.example", []string{"app.example"}, []string{"www.app.example", "app.example2"}},
		{"*.example", []string{"app.example", "a.b.example"}, []string{"example", "app.example2"}},
		{"app.*", []string{"app.example", "app.internal"}, []string{"www.app.example"}},
	}
	for _, c := range cases {
		p, err := ParsePattern(c.pattern)
		if err != nil {
			t.Fatalf("ParsePattern(%q): %v", c.pattern, err)
		}
		if p.String() != c.pattern {
			t.Errorf("String() = %q, want %q", p.String(), c.pattern)
		}
		for _, host := range c.match {
			if !p.Match(host) {
				t.Errorf("%q should match %q", c.pattern, host)
			}
		}
		for _, host := range c.miss {
			if p.Match(host) {
				t.Errorf("%q should not match %q", c.pattern, host)
			}
		}
	}
}

func TestParsePattern_Rejected(t *testing.T) {
	for _, bad := range []string{"", "*", "a*b", "*a*", "**"} {
		if _, err := ParsePattern(bad); err == nil {
			t.Errorf("ParsePattern(%q): expected error", bad)
		}
	}
}

func TestConfig_Check(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte("whitelist: ['*.example', 'onehost']\n"), &cfg); err != nil {
		t.Fatal(err)
	}

	if err := cfg.Check("app.example", "onehost"); err != nil {
		t.Errorf("permitted hosts rejected: %v", err)
	}

	err := cfg.Check("app.example", "forbidden.org")
	var viol ViolationError
	if !errors.As(err, &viol) {
		t.Fatalf("got %v, want ViolationError", err)
	}
	if viol.Hostname != "forbidden.org" {
		t.Errorf("violation names %q", viol.Hostname)
	}
}

func TestConfig_YAMLRejectsBadPattern(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte("whitelist: ['ho*st']\n"), &cfg); err == nil {
		t.Error("expected pattern error from config load")
	}
}

func TestSample(t *testing.T) {
	s := Sample()
	if len(s.Whitelist) != 1 || !s.Permitted("somerandomhost.with.tld") {
		t.Errorf("sample = %+v", s)
	}
	if s.EnableDangerousOperations {
		t.Error("sample must not enable dangerous operations")
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Permitted("somerandomhost.with.tld") {
		t.Error("sample did not survive a config round trip")
	}
}
