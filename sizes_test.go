package strtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapacities_Ascending(t *testing.T) {
	for i := 1; i < len(capacities); i++ {
		require.Greater(t, capacities[i], capacities[i-1])
	}
	require.Equal(t, DefaultCapacity, capacities[0])
}

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		name    string
		current int
		want    int
	}{
		{"released", 0, 769},
		{"below schedule", 4, 769},
		{"first entry", 769, 1543},
		{"between entries", 1000, 1543},
		{"second to last", 805306457, 1610612741},
		{"last entry", 1610612741, 3221225482},
		{"past schedule", 3221225482, 6442450964},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, nextCapacity(tt.current))
		})
	}
}

func TestNeedsGrow(t *testing.T) {
	tests := []struct {
		length, capacity int
		want             bool
	}{
		{0, 0, true},
		{0, 1, true},
		{0, 2, false},
		{1, 4, false},
		{2, 4, true},
		{537, 769, false},
		{538, 769, true},
	}

	for _, tt := range tests {
		require.Equalf(t, tt.want, needsGrow(tt.length, tt.capacity), "length=%d capacity=%d", tt.length, tt.capacity)
	}
}
