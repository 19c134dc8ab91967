package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCounts(t *testing.T) {
	counts, err := parseCounts([]string{"Na", "Cl", "Cl", "H=4"})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"Na": 1, "Cl": 2, "H": 4}, counts)

	counts, err = parseCounts([]string{"C", "C=1"})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"C": 1}, counts)

	_, err = parseCounts([]string{"H=four"})
	require.Error(t, err)
	_, err = parseCounts([]string{"=2"})
	require.Error(t, err)
}
