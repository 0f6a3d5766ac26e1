package ops

import (
	"net/netip"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		token string
		want  Op
	}{
		{"-somehost", Op{Kind: Remove, Host: "somehost"}},
		{"127.1.65.77+=somehost", Op{Kind: Add, Addr: netip.MustParseAddr("127.1.65.77"), Host: "somehost"}},
		{"2003::f+=somehost", Op{Kind: Add, Addr: netip.MustParseAddr("2003::f"), Host: "somehost"}},
		{"::1=somehost", Op{Kind: Set, Addr: netip.MustParseAddr("::1"), Host: "somehost"}},
		{"10.0.0.9=app.example", Op{Kind: Set, Addr: netip.MustParseAddr("10.0.0.9"), Host: "app.example"}},
	}
	for _, c := range cases {
		got, err := Parse(c.token)
		if err != nil {
			t.Errorf("Parse(%q): %v", c.token, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %+v, want %+v", c.token, got, c.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	bad := []string{
		"",
		"somehost",          // no action marker
		"=somehost",         // empty address
		"10.0.0=host",       // truncated address
		"nonsense=host",     // not an address at all
		"10.0.0.1=",         // empty hostname
		"10.0.0.1=ho st",    // whitespace in hostname
		"-",                 // empty removal
		"-bad;host",         // invalid hostname characters
		"10.0.0.1=semi;col", // invalid hostname characters
	}
	for _, token := range bad {
		if _, err := Parse(token); err == nil {
			t.Errorf("Parse(%q): expected error", token)
		} else if _, ok := err.(SyntaxError); !ok {
			t.Errorf("Parse(%q): error %T, want SyntaxError", token, err)
		}
	}
}

func TestParse_Roundtrip(t *testing.T) {
	for _, token := range []string{"-somehost", "127.1.65.77+=somehost", "::1=somehost"} {
		op, err := Parse(token)
		if err != nil {
			t.Fatal(err)
		}
		if op.String() != token {
			t.Errorf("String() = %q, want %q", op.String(), token)
		}
	}
}

func TestParseAll_Order(t *testing.T) {
	batch, err := ParseAll([]string{"-a.example", "10.0.0.9=a.example"})
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 2 || batch[0].Kind != Remove || batch[1].Kind != Set {
		t.Errorf("batch = %+v", batch)
	}
	if got := Targets(batch); got[0] != "a.example" || got[1] != "a.example" {
		t.Errorf("targets = %v", got)
	}

	if _, err := ParseAll([]string{"-ok.example", "bogus"}); err == nil {
		t.Error("expected error for bad token in batch")
	}
}
