package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ccscope/internal/core/domain"
)

func TestLedgerEntry_Encode(t *testing.T) {
	entry := domain.NewLedgerEntry(
		[]string{"-Iinc", "-DFOO=1"},
		"/repo",
		[]string{"/repo/src/a.c", "/repo/src/b.c"},
	)

	want := "---ENTRY---\n" +
		"-Iinc -DFOO=1\n" +
		"/repo/src/a.c\n/repo\n" +
		"/repo/src/b.c\n/repo\n"
	assert.Equal(t, want, string(entry.Encode()))
}

func TestLedgerEntry_EncodeWithoutFlags(t *testing.T) {
	entry := domain.NewLedgerEntry(nil, "/repo", []string{"/repo/a.c"})
	assert.Equal(t, "---ENTRY---\n\n/repo/a.c\n/repo\n", string(entry.Encode()))
}

func TestParseLedger(t *testing.T) {
	first := domain.NewLedgerEntry([]string{"-Iinc"}, "/repo", []string{"/repo/a.c"})
	second := domain.NewLedgerEntry(nil, "/repo/sub", []string{"/repo/sub/b.c", "/repo/sub/c.c"})

	text := "junk before\n" + string(first.Encode()) + string(second.Encode())
	entries, err := domain.ParseLedger(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, first, entries[0])
	assert.Empty(t, entries[1].Flags)
	assert.Equal(t, []string{"/repo/sub/b.c", "/repo/sub/c.c"}, sources(entries[1]))
	assert.Equal(t, "/repo/sub", entries[1].Units[1].Dir)
}

func TestParseLedger_DanglingSource(t *testing.T) {
	text := "---ENTRY---\n-DX\n/repo/a.c\n/repo\n/repo/torn.c\n"
	entries, err := domain.ParseLedger(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"/repo/a.c"}, sources(entries[0]))
}

func sources(e domain.LedgerEntry) []string {
	out := make([]string, 0, len(e.Units))
	for _, u := range e.Units {
		out = append(out, u.Source)
	}
	return out
}
