package domain

import (
	"bufio"
	"io"
	"strings"
)

// LedgerMarker opens every ledger entry.
const LedgerMarker = "---ENTRY---"

// LedgerEntry is one compiler invocation as persisted in the ledger.
// All units of an entry share the entry's flags.
type LedgerEntry struct {
	Flags []string
	Units []CompileUnit
}

// NewLedgerEntry groups the in-scope sources of one invocation into an entry.
func NewLedgerEntry(flags []string, dir string, sources []string) LedgerEntry {
	entry := LedgerEntry{Flags: flags}
	for _, src := range sources {
		entry.Units = append(entry.Units, CompileUnit{Source: src, Flags: flags, Dir: dir})
	}
	return entry
}

// Encode renders the entry in ledger text form: the marker line, the
// space-joined flags line, then a source line and a directory line per unit.
func (e LedgerEntry) Encode() []byte {
	var b strings.Builder
	b.WriteString(LedgerMarker)
	b.WriteByte('\n')
	b.WriteString(strings.Join(e.Flags, " "))
	b.WriteByte('\n')
	for _, u := range e.Units {
		b.WriteString(u.Source)
		b.WriteByte('\n')
		b.WriteString(u.Dir)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// ParseLedger reads every entry from r. A dangling source line without its
// directory line is dropped.
func ParseLedger(r io.Reader) ([]LedgerEntry, error) {
	var (
		entries []LedgerEntry
		current *LedgerEntry
		lines   []string
	)

	flush := func() {
		if current == nil {
			return
		}
		for i := 0; i+1 < len(lines); i += 2 {
			current.Units = append(current.Units, CompileUnit{
				Source: lines[i],
				Flags:  current.Flags,
				Dir:    lines[i+1],
			})
		}
		entries = append(entries, *current)
		current = nil
		lines = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	expectFlags := false
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == LedgerMarker:
			flush()
			current = &LedgerEntry{}
			expectFlags = true
		case current == nil:
			// Garbage before the first marker.
		case expectFlags:
			current.Flags = strings.Fields(line)
			expectFlags = false
		case line != "":
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return entries, nil
}
