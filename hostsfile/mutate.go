package hostsfile

import (
	"fmt"
	"net/netip"
	"slices"
)

// ConflictError is returned when an add would leave a hostname mapped to
// two addresses of the same family.
type ConflictError struct {
	Hostname Hostname
	V4       bool
}

func (e ConflictError) Error() string {
	family := "IPv6"
	if e.V4 {
		family = "IPv4"
	}
	return fmt.Sprintf("duplicate %s entry for host %q", family, e.Hostname)
}

func dropHost(hosts []Hostname, host Hostname) []Hostname {
	return slices.DeleteFunc(slices.Clone(hosts), func(h Hostname) bool { return h == host })
}

// RemoveHost detaches the hostname from every active entry. Entries left
// without any hostname are removed entirely; aliases sharing the line are
// kept. Removing an absent hostname is a no-op.
func (f *File) RemoveHost(host Hostname) {
	out := f.Lines[:0]
	for _, line := range f.Lines {
		if line.Kind == KindEntry && line.Entry.HasHost(host) {
			hosts := dropHost(line.Entry.Hostnames, host)
			if len(hosts) == 0 {
				continue
			}
			line.Entry.Hostnames = hosts
			line.Raw = ""
		}
		out = append(out, line)
	}
	f.Lines = out
}

// SetHost maps the hostname to the address exclusively: any existing
// mapping for the hostname is vacated first, then a fresh single-host
// entry is inserted where the first old mapping used to live.
func (f *File) SetHost(addr netip.Addr, host Hostname) {
	insert := -1
	out := f.Lines[:0]
	for _, line := range f.Lines {
		if line.Kind == KindEntry && line.Entry.HasHost(host) {
			if insert == -1 {
				insert = len(out)
			}
			hosts := dropHost(line.Entry.Hostnames, host)
			if len(hosts) == 0 {
				continue
			}
			line.Entry.Hostnames = hosts
			line.Raw = ""
		}
		out = append(out, line)
	}
	if insert == -1 {
		insert = f.appendIndex(len(out), out)
	}
	f.Lines = slices.Insert(out, insert, EntryLine(addr, host))
}

// AddHost maps the hostname to the address without disturbing mappings in
// the other address family. Adding an identical mapping is a no-op; a
// second mapping within the same family is a conflict.
func (f *File) AddHost(addr netip.Addr, host Hostname) error {
	is4 := addr.Is4() || addr.Is4In6()
	insert := -1
	for i, line := range f.Lines {
		if line.Kind != KindEntry {
			continue
		}
		e := line.Entry
		if e.Addr != addr && !e.HasHost(host) {
			continue
		}
		if e.Addr == addr && e.HasHost(host) {
			return nil
		}
		if e.HasHost(host) && e.Is4() == is4 {
			return ConflictError{Hostname: host, V4: is4}
		}
		insert = i + 1
	}
	if insert == -1 {
		insert = f.appendIndex(len(f.Lines), f.Lines)
	}
	f.Lines = slices.Insert(f.Lines, insert, EntryLine(addr, host))
	return nil
}

// appendIndex places new entries before the trailing run of blank lines so
// the file keeps ending with its newline.
func (f *File) appendIndex(n int, lines []Line) int {
	for n > 0 && lines[n-1].Kind == KindBlank {
		n--
	}
	return n
}
