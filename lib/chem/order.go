package chem

import (
	"cmp"
	"fmt"
	"modchem-backend/lib/periodic"
	"slices"
)

// ionicSeries is the order elements are written in an ionic compound, most
// electropositive first. Elements with a duplicate button appear twice, the
// first occurrence is the primary button and the second is its duplicate.
var ionicSeries = []string{
	"Cs", "Fr", "K", "K", "Rb", "Rb", "Ba", "Ra", "Na", "Sr", "Sr", "Li",
	"Ca", "Ca", "Yb", "La", "Ac", "Ce", "Pr", "Pm", "Nd", "Sm", "Tb", "Gd",
	"Eu", "Dy", "Y", "Y", "Ho", "Er", "Tm", "Lu", "Pu", "No", "Es", "Th",
	"Hf", "Md", "Bk", "Am", "Lr", "Cf", "Cm", "Fm", "Mg", "Zr", "Zr", "Np",
	"Sc", "Sc", "U", "Ta", "Pa", "Ti", "Ti", "Mn", "Be", "Nb", "Nb", "Al",
	"V", "V", "Zn", "Cr", "Cr", "Cd", "In", "Ga", "Fe", "Co", "Si", "Re",
	"Tc", "Cu", "Ni", "Ag", "Sn", "Po", "Hg", "Ge", "Bi", "Tl", "B", "Sb",
	"Te", "Mo", "Mo", "As", "P", "H", "Ir", "Ru", "Os", "At", "Rn", "Pd",
	"Pt", "Rh", "Pb", "W", "Au", "C", "Se", "S", "Xe", "I", "Br", "Kr",
	"N", "Cl", "O", "F", "He", "Ne", "Ar", "Rf", "Db", "Sg", "Bh", "Hs",
	"Mt", "Ds", "Rg", "Cn", "Uut", "Fl", "Uup", "Lv", "Uus", "Uuo",
}

var orderings map[Mode][]string

func init() {
	orderings = map[Mode][]string{
		Organic:   leadingOrder([]string{"C", "H"}),
		Ionic:     seriesOrder(ionicSeries),
		Oxide:     trailingOrder([]string{"O"}),
		Hydroxide: trailingOrder([]string{"O", "H"}),
	}
	for mode, order := range orderings {
		if len(order) != len(periodic.IDs()) {
			panic(fmt.Sprintf("chem: %s ordering covers %d of %d buttons", mode, len(order), len(periodic.IDs())))
		}
	}
}

// Ordering returns the button ids in the order a formula of the given mode
// writes them.
func Ordering(m Mode) []string {
	return slices.Clone(orderings[m])
}

// alphabetical sorts button ids by symbol, with a duplicate placed right
// after its primary.
func alphabetical(ids []string) []string {
	out := slices.Clone(ids)
	slices.SortFunc(out, func(a, b string) int {
		return cmp.Or(
			cmp.Compare(periodic.Symbol(a), periodic.Symbol(b)),
			cmp.Compare(a, b),
		)
	})
	return out
}

func without(ids []string, exclude []string) []string {
	var out []string
	for _, id := range ids {
		if !slices.Contains(exclude, id) {
			out = append(out, id)
		}
	}
	return out
}

func leadingOrder(lead []string) []string {
	rest := alphabetical(without(periodic.IDs(), lead))
	return append(slices.Clone(lead), rest...)
}

func trailingOrder(trail []string) []string {
	rest := alphabetical(without(periodic.IDs(), trail))
	return append(rest, trail...)
}

func seriesOrder(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		id := sym
		if seen[sym] {
			id = sym + "1"
		}
		seen[sym] = true
		if _, ok := periodic.Lookup(id); !ok {
			panic(fmt.Sprintf("chem: ionic series names unknown button %q", id))
		}
		out = append(out, id)
	}
	return out
}
