package chem

import (
	"modchem-backend/lib/periodic"
	"strconv"
	"strings"
)

// Formula is the result of building a formula out of a tally.
type Formula struct {
	// Total is the number of clicks across every button, 0 means there is
	// no formula.
	Total int `json:"total"`
	// Symbols are the symbols of the clicked buttons in formula order.
	Symbols []string `json:"symbols"`
	Text    string   `json:"text"`
}

// Empty reports whether nothing was clicked.
func (f Formula) Empty() bool {
	return f.Total == 0
}

// FirstSymbol is the first symbol written in the formula, or "" if empty.
func (f Formula) FirstSymbol() string {
	if len(f.Symbols) == 0 {
		return ""
	}
	return f.Symbols[0]
}

// fixups rewrites a handful of well known compounds the naive ordering spells
// differently from the dictionary.
var fixups = map[string]string{
	"HN4Cl":      "NH4Cl",
	"AlO3H3":     "Al(OH)3",
	"AlN3O6":     "Al(NO2)3",
	"AlN3O9":     "Al(NO3)3",
	"Al2C3O9":    "Al2(CO3)3",
	"Al2S3O12":   "Al2(SO4)3",
	"Al2Si2O9H4": "Al2Si2O5(OH)4",
	"AuO3H3":     "Au(OH)3",
	"Au2Se3O12":  "Au2(SeO4)3",
	"LiH":        "DLi",
	"HBr":        "DBr",
	"KBr":        "KBR",
}

// Fixup applies the substitution table to a whole formula.
func Fixup(text string) string {
	if fixed, ok := fixups[text]; ok {
		return fixed
	}
	return text
}

// Build writes out the formula of a tally for the given mode. Buttons are
// visited in the mode's ordering, unclicked buttons are skipped and a count of
// 1 is left implicit.
func Build(t *Tally, m Mode) Formula {
	order, ok := orderings[m]
	if !ok {
		order = orderings[Organic]
	}

	var text strings.Builder
	symbols := []string{}
	for _, id := range order {
		n := t.Count(id)
		if n == 0 {
			continue
		}
		sym := periodic.Symbol(id)
		symbols = append(symbols, sym)
		text.WriteString(sym)
		if n != 1 {
			text.WriteString(strconv.Itoa(n))
		}
	}

	return Formula{
		Total:   t.Total(),
		Symbols: symbols,
		Text:    Fixup(text.String()),
	}
}
