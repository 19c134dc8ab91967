package periodic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	rows := Rows()
	require.Len(t, rows, 17)
	for i, row := range rows {
		require.Len(t, row, len(Valences), "row %d", i)
	}

	require.Len(t, Buttons(), 130)
	require.Len(t, IDs(), 130)

	first := rows[0]
	for i := 0; i < 6; i++ {
		require.True(t, first[i].Empty())
	}
	require.Equal(t, "H", first[6].ID)
	require.Equal(t, "He", first[7].ID)
}

func TestSymbol(t *testing.T) {
	testCases := []struct {
		id        string
		symbol    string
		duplicate bool
	}{
		{id: "K", symbol: "K"},
		{id: "K1", symbol: "K", duplicate: true},
		{id: "Mo1", symbol: "Mo", duplicate: true},
		{id: "Uut", symbol: "Uut"},
		{id: "Uuo", symbol: "Uuo"},
	}

	for _, test := range testCases {
		require.Equal(t, test.symbol, Symbol(test.id))
		require.Equal(t, test.duplicate, IsDuplicate(test.id))
	}
}

func TestDuplicates(t *testing.T) {
	var duplicates []string
	for _, b := range Buttons() {
		if IsDuplicate(b.ID) {
			duplicates = append(duplicates, b.ID)
			_, ok := Lookup(b.Symbol())
			require.True(t, ok, "primary of %s", b.ID)
		}
	}
	require.ElementsMatch(t, []string{
		"K1", "Ca1", "Sc1", "Ti1", "V1", "Cr1",
		"Rb1", "Sr1", "Y1", "Zr1", "Nb1", "Mo1",
	}, duplicates)
}

func TestLookup(t *testing.T) {
	b, ok := Lookup("Uus")
	require.True(t, ok)
	require.Equal(t, "Tennessine", b.Name)
	require.Equal(t, Halogen, b.Group)
	require.Equal(t, "rgb(154, 72, 180)", b.Group.Color())

	_, ok = Lookup("Xx")
	require.False(t, ok)
	_, ok = Lookup("")
	require.False(t, ok)
}
