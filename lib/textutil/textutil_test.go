package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "hydroxide", NormalizeName(" Hydro-xide\n"))
	require.Equal(t, "organic", NormalizeName("ORGANIC"))
	require.Equal(t, "", NormalizeName(" _ "))
}
