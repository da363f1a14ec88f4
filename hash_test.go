package strtable

import (
	"hash/fnv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestFNV1a(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "Single byte", input: "a"},
		{name: "Word", input: "foobar"},
		{name: "Spaces", input: "last name"},
		{name: "Non-ASCII", input: "Ærøskøbing"},
		{name: "Zero bytes", input: "\x00\x00\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := fnv.New64a()
			_, _ = h.Write([]byte(tt.input))

			require.Equal(t, h.Sum64(), FNV1a(tt.input))
		})
	}
}

func TestFNV1a_KnownValues(t *testing.T) {
	require.Equal(t, uint64(0xcbf29ce484222325), FNV1a(""))
	require.Equal(t, uint64(0xaf63dc4c8601ec8c), FNV1a("a"))
	require.Equal(t, uint64(0x85944171f73967e8), FNV1a("foobar"))
}

func TestXXHash(t *testing.T) {
	for _, s := range []string{"", "a", "foobar", "Ærøskøbing"} {
		require.Equal(t, xxhash.Sum64String(s), XXHash(s))
	}

	tt := New(WithHashFunc[int](XXHash))
	tt.Set("foo", 1)

	v, ok := tt.Get("foo")
	require.True(t, ok)
	require.Equal(t, 1, v)
}
