// Package hostsfile parses the traditional whitespace-delimited hosts file
// into an ordered line model and renders it back. Lines that were not
// touched by a mutation are re-emitted verbatim, so a parse/render pass
// with no edits reproduces the input byte for byte.
package hostsfile

import (
	"fmt"
	"net/netip"
	"slices"
	"strings"
)

type Hostname = string

type LineKind int

const (
	KindBlank LineKind = iota
	KindComment
	KindEntry
	KindDisabled // entry commented out with a leading '#'
)

// Entry is one active mapping: an address and the hostnames it serves,
// with an optional trailing comment.
type Entry struct {
	Addr      netip.Addr
	Hostnames []Hostname
	Comment   string
}

func (e Entry) HasHost(host Hostname) bool {
	for _, h := range e.Hostnames {
		if h == host {
			return true
		}
	}
	return false
}

func (e Entry) Is4() bool {
	return e.Addr.Is4() || e.Addr.Is4In6()
}

func (e Entry) String() string {
	s := fmt.Sprintf("%-20s\t%s", e.Addr, strings.Join(e.Hostnames, " "))
	if e.Comment != "" {
		s += " # " + e.Comment
	}
	return s
}

// Line is one line of the file. Raw holds the original text and is cleared
// when the line is rewritten; rendering prefers Raw when present.
type Line struct {
	Raw   string
	Kind  LineKind
	Entry *Entry
}

func (l Line) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	switch l.Kind {
	case KindEntry:
		return l.Entry.String()
	case KindDisabled:
		return "# " + l.Entry.String()
	default:
		return ""
	}
}

// Equals compares lines structurally: entries by content rather than by
// their original text, so that a batch which reconstructs the existing
// state is detected as a no-op.
func (l Line) Equals(other Line) bool {
	if l.Kind != other.Kind {
		return false
	}
	switch l.Kind {
	case KindEntry, KindDisabled:
		return l.Entry.Addr == other.Entry.Addr &&
			l.Entry.Comment == other.Entry.Comment &&
			slices.Equal(l.Entry.Hostnames, other.Entry.Hostnames)
	default:
		return l.Raw == other.Raw
	}
}

// EntryLine synthesizes a new active entry line.
func EntryLine(addr netip.Addr, hosts ...Hostname) Line {
	return Line{Kind: KindEntry, Entry: &Entry{Addr: addr, Hostnames: hosts}}
}

// ParseError identifies the offending line when the file cannot be parsed.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ValidHostname reports whether s is acceptable as a hostname or alias:
// alphanumerics plus '.', '-' and '_'.
func ValidHostname(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		case r == '.' || r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// File is the ordered line model of a hosts file. Order is significant:
// the first entry naming a hostname wins on lookup.
type File struct {
	Lines []Line
}

// Parse builds the model from raw file text. Comment and blank lines are
// kept verbatim; a commented-out line whose body still parses as an entry
// is kept as a disabled entry.
func Parse(data []byte) (*File, error) {
	f := &File{}
	for i, raw := range strings.Split(string(data), "\n") {
		line, err := parseLine(i+1, raw)
		if err != nil {
			return nil, err
		}
		f.Lines = append(f.Lines, line)
	}
	return f, nil
}

func parseLine(no int, raw string) (Line, error) {
	text := strings.TrimSuffix(raw, "\r")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Line{Raw: raw, Kind: KindBlank}, nil
	}
	if body, ok := strings.CutPrefix(trimmed, "#"); ok {
		if entry := tryParseEntry(strings.TrimSpace(body)); entry != nil {
			return Line{Raw: raw, Kind: KindDisabled, Entry: entry}, nil
		}
		return Line{Raw: raw, Kind: KindComment}, nil
	}
	entry, reason := parseEntry(trimmed)
	if entry == nil {
		return Line{}, ParseError{Line: no, Text: text, Reason: reason}
	}
	return Line{Raw: raw, Kind: KindEntry, Entry: entry}, nil
}

func parseEntry(body string) (*Entry, string) {
	fields, comment, _ := strings.Cut(body, "#")
	e := &Entry{Comment: strings.TrimSpace(comment)}

	parts := strings.Fields(fields)
	if len(parts) == 0 {
		return nil, "entry has no address"
	}
	addr, err := netip.ParseAddr(parts[0])
	if err != nil {
		return nil, "malformed address"
	}
	e.Addr = addr
	if len(parts) < 2 {
		return nil, "entry has no hostnames"
	}
	for _, host := range parts[1:] {
		if !ValidHostname(host) {
			return nil, fmt.Sprintf("invalid hostname %q", host)
		}
		e.Hostnames = append(e.Hostnames, host)
	}
	return e, ""
}

func tryParseEntry(body string) *Entry {
	entry, _ := parseEntry(body)
	return entry
}

// Resolve returns the address of the first active entry naming the host.
func (f *File) Resolve(host Hostname) (addr netip.Addr, ok bool) {
	for _, line := range f.Lines {
		if line.Kind == KindEntry && line.Entry.HasHost(host) {
			return line.Entry.Addr, true
		}
	}
	return
}

func (f *File) Has(host Hostname) bool {
	_, ok := f.Resolve(host)
	return ok
}

func (f *File) Equals(other *File) bool {
	if len(f.Lines) != len(other.Lines) {
		return false
	}
	for i, line := range f.Lines {
		if !line.Equals(other.Lines[i]) {
			return false
		}
	}
	return true
}

// Clone deep-copies the model so a tentative batch of operations can be
// applied without touching the original.
func (f *File) Clone() *File {
	c := &File{Lines: make([]Line, len(f.Lines))}
	copy(c.Lines, f.Lines)
	for i, line := range c.Lines {
		if line.Entry != nil {
			entry := *line.Entry
			entry.Hostnames = append([]Hostname(nil), entry.Hostnames...)
			c.Lines[i].Entry = &entry
		}
	}
	return c
}

func (f *File) String() string {
	lines := make([]string, len(f.Lines))
	for i, line := range f.Lines {
		lines[i] = line.String()
	}
	return strings.Join(lines, "\n")
}

func (f *File) Render() []byte {
	return []byte(f.String())
}

// Normalize trims trailing blank lines and collapses runs of blank lines
// into one, then terminates the file with a single newline. Only called
// after a mutation so untouched files round-trip unchanged.
func (f *File) Normalize() {
	for len(f.Lines) > 0 && f.Lines[len(f.Lines)-1].Kind == KindBlank {
		f.Lines = f.Lines[:len(f.Lines)-1]
	}
	out := f.Lines[:0]
	blank := false
	for _, line := range f.Lines {
		if line.Kind == KindBlank {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	// Final empty element makes String() terminate with a newline.
	f.Lines = append(out, Line{Kind: KindBlank})
}
