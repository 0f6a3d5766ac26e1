package hostsfile

import (
	"net/netip"
	"strings"
	"testing"
)

const realisticFile = `127.0.0.1	localhost
127.0.1.1	thismachine
::1	localhost ip6-localhost ip6-loopback
ff02::1 ip6-allnodes
ff02::2 ip6-allrouters
# comment

198.51.100.11	www.employer.example
10.0.20.4	intranet.someclub.example #  with trailing comment!
# 10.4.79.99	deactivated.host deactivated.host.1

`

func TestParse_Realistic(t *testing.T) {
	f, err := Parse([]byte(realisticFile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	wantKinds := []LineKind{
		KindEntry, KindEntry, KindEntry, KindEntry, KindEntry,
		KindComment, KindBlank, KindEntry, KindEntry, KindDisabled,
		KindBlank, KindBlank,
	}
	if len(f.Lines) != len(wantKinds) {
		t.Fatalf("got %d lines, want %d", len(f.Lines), len(wantKinds))
	}
	for i, want := range wantKinds {
		if f.Lines[i].Kind != want {
			t.Errorf("line %d: kind = %v, want %v", i+1, f.Lines[i].Kind, want)
		}
	}

	if addr, ok := f.Resolve("ip6-loopback"); !ok || addr != netip.MustParseAddr("::1") {
		t.Errorf("ip6-loopback resolved to %v, %v", addr, ok)
	}
	if addr, ok := f.Resolve("localhost"); !ok || addr != netip.MustParseAddr("127.0.0.1") {
		t.Errorf("localhost should resolve to the first match, got %v, %v", addr, ok)
	}
	if f.Has("deactivated.host") {
		t.Error("disabled entries must not resolve")
	}

	entry := f.Lines[8].Entry
	if entry.Comment != "with trailing comment!" {
		t.Errorf("trailing comment = %q", entry.Comment)
	}
	disabled := f.Lines[9].Entry
	if len(disabled.Hostnames) != 2 || disabled.Hostnames[1] != "deactivated.host.1" {
		t.Errorf("disabled entry hostnames = %v", disabled.Hostnames)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		realisticFile,
		"",
		"\n",
		"127.0.0.1 localhost",
		"127.0.0.1 localhost\r\n::1  localhost\r\n",
		"# only a comment\n\n\n",
		"  \t \n10.0.0.1\ta b c # x\n",
	}
	for _, in := range inputs {
		f, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if out := f.String(); out != in {
			t.Errorf("round trip mismatch:\n in: %q\nout: %q", in, out)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		input  string
		line   int
		reason string
	}{
		{"127.0.0.1 localhost\nnot-an-address host\n", 2, "malformed address"},
		{"127.0.0.1\n", 1, "entry has no hostnames"},
		{"300.0.0.1 host\n", 1, "malformed address"},
		{"10.0.0.1 bad!host\n", 1, "invalid hostname"},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.input))
		if err == nil {
			t.Errorf("parse %q: expected error", c.input)
			continue
		}
		perr, ok := err.(ParseError)
		if !ok {
			t.Errorf("parse %q: error %T, want ParseError", c.input, err)
			continue
		}
		if perr.Line != c.line || !strings.Contains(perr.Reason, c.reason) {
			t.Errorf("parse %q: got line %d reason %q, want line %d reason %q",
				c.input, perr.Line, perr.Reason, c.line, c.reason)
		}
	}
}

func TestValidHostname(t *testing.T) {
	for _, ok := range []string{"a", "foo.bar-baz", "under_score", "x9.example."} {
		if !ValidHostname(ok) {
			t.Errorf("ValidHostname(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "white space", "semi;colon", "sla/sh", "bang!"} {
		if ValidHostname(bad) {
			t.Errorf("ValidHostname(%q) = true", bad)
		}
	}
}

func TestNormalize(t *testing.T) {
	f, err := Parse([]byte("127.0.0.1 a\n\n\n\n10.0.0.1 b\n\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	f.Normalize()
	want := "127.0.0.1 a\n\n10.0.0.1 b\n"
	if got := f.String(); got != want {
		t.Errorf("normalized = %q, want %q", got, want)
	}
}

func TestEquals_IgnoresFormattingOfEqualEntries(t *testing.T) {
	a, _ := Parse([]byte("127.0.0.1   localhost\n"))
	b, _ := Parse([]byte("127.0.0.1\tlocalhost\n"))
	if !a.Equals(b) {
		t.Error("structurally identical files should compare equal")
	}
	c, _ := Parse([]byte("127.0.0.2   localhost\n"))
	if a.Equals(c) {
		t.Error("different address should not compare equal")
	}
}
