package periodic

import (
	"fmt"
	"strings"
)

// Group is the colour group a button is painted with.
type Group int

const (
	Nonmetal Group = iota
	NobleGas
	AlkaliMetal
	AlkalineEarthMetal
	Metalloid
	Halogen
	PostTransitionMetal
	TransitionMetal
	InnerTransitionMetal
)

type groupInfo struct {
	name  string
	color string
}

var groups = map[Group]groupInfo{
	Nonmetal:             {name: "Nonmetal", color: "rgb(103, 179, 221)"},
	NobleGas:             {name: "Noble Gas", color: "rgb(107, 38, 131)"},
	AlkaliMetal:          {name: "Alkali Metal", color: "rgb(252, 48, 45)"},
	AlkalineEarthMetal:   {name: "Alkaline Earth Metal", color: "rgb(253, 169, 71)"},
	Metalloid:            {name: "Metalloid", color: "rgb(77, 156, 199)"},
	Halogen:              {name: "Halogen", color: "rgb(154, 72, 180)"},
	PostTransitionMetal:  {name: "Post-transition Metal", color: "rgb(158, 224, 98)"},
	TransitionMetal:      {name: "Transition Metal", color: "rgb(254, 223, 107)"},
	InnerTransitionMetal: {name: "Inner Transition Metal", color: "rgb(113, 191, 66)"},
}

func (g Group) String() string {
	info, ok := groups[g]
	if !ok {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return info.name
}

// Color is the css background colour of buttons in the group.
func (g Group) Color() string {
	return groups[g].color
}

// Button is a single clickable element on the table.
type Button struct {
	ID    string
	Name  string
	Group Group
}

// Empty reports whether the cell is a blank spacer.
func (b Button) Empty() bool {
	return b.ID == ""
}

// Symbol is the chemical symbol the button contributes to a formula.
func (b Button) Symbol() string {
	return Symbol(b.ID)
}

// duplicateSuffix marks the second button of an element that appears twice.
const duplicateSuffix = "1"

// Symbol strips the duplicate marker off of a button id.
func Symbol(id string) string {
	return strings.TrimSuffix(id, duplicateSuffix)
}

// IsDuplicate reports whether the id is the repeated copy of an element.
func IsDuplicate(id string) bool {
	return strings.HasSuffix(id, duplicateSuffix)
}

// Valences are the labels above each column, the number of electrons the
// column still needs to fill its shell.
var Valences = []int{7, 6, 5, 4, 3, 2, 1, 0}

var (
	buttons []Button
	byID    map[string]Button
)

func init() {
	byID = make(map[string]Button)
	for _, row := range layout {
		for _, b := range row {
			if b.Empty() {
				continue
			}
			if _, exists := byID[b.ID]; exists {
				panic(fmt.Sprintf("periodic: duplicate button id %q", b.ID))
			}
			byID[b.ID] = b
			buttons = append(buttons, b)
		}
	}
}

// Rows returns the table row by row, blank cells included.
func Rows() [][]Button {
	out := make([][]Button, len(layout))
	for i, row := range layout {
		out[i] = append([]Button(nil), row...)
	}
	return out
}

// Buttons returns every non-empty button in table order.
func Buttons() []Button {
	return append([]Button(nil), buttons...)
}

// IDs returns the id of every button in table order.
func IDs() []string {
	ids := make([]string, len(buttons))
	for i, b := range buttons {
		ids[i] = b.ID
	}
	return ids
}

// Lookup finds a button by id.
func Lookup(id string) (Button, bool) {
	b, ok := byID[id]
	return b, ok
}
