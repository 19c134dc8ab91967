package wikidict

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"modchem-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrNoSection = errors.New("no dictionary section for formula")
	ErrNoMatch   = errors.New("formula not in dictionary")
)

// Entry is one row of the dictionary.
type Entry struct {
	Formula  string `json:"formula"`
	Synonyms string `json:"synonyms"`
	CAS      string `json:"cas"`
}

func entryFromRow(row []string) Entry {
	padded := make([]string, 3)
	copy(padded, row)
	return Entry{
		Formula:  padded[0],
		Synonyms: padded[1],
		CAS:      padded[2],
	}
}

// Dictionary holds the parsed per letter tables of the mirror page.
type Dictionary struct {
	profile  Profile
	sections map[string][]Entry
}

// ParseDictionary reads every section table the profile names. Tables that
// are missing from the document are left out, lookups into them report
// ErrNoSection.
func ParseDictionary(ctx context.Context, doc *goquery.Document, profile Profile) *Dictionary {
	_, span := tracer.Start(ctx, "ParseDictionary")
	defer span.End()

	d := &Dictionary{
		profile:  profile,
		sections: map[string][]Entry{},
	}
	entries := 0
	for _, section := range profile.Sections {
		table := doc.Find("#" + section.Table).First()
		if table.Length() == 0 {
			span.AddEvent("missing section table")
			continue
		}
		if !table.Is("table") {
			table = table.Find("table").First()
			if table.Length() == 0 {
				continue
			}
		}

		rows := htmlutil.ParseTable(table)
		list := make([]Entry, len(rows))
		for i, row := range rows {
			list[i] = entryFromRow(row)
		}
		d.sections[section.Key] = list
		entries += len(list)
	}

	span.SetAttributes(
		attribute.Int("sections", len(d.sections)),
		attribute.Int("entries", entries),
	)
	return d
}

func (d *Dictionary) sectionsFor(formula string) ([]Section, error) {
	if formula == "" {
		return nil, ErrNoSection
	}
	var found []Section
	for _, section := range d.profile.SectionsFor(formula[0]) {
		if _, ok := d.sections[section.Key]; ok {
			found = append(found, section)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoSection, formula)
	}
	return found, nil
}

// Entries returns the rows of a section by key.
func (d *Dictionary) Entries(key string) []Entry {
	return d.sections[key]
}

// Len is the total number of rows across all sections.
func (d *Dictionary) Len() int {
	total := 0
	for _, entries := range d.sections {
		total += len(entries)
	}
	return total
}

// Lookup returns every row whose formula cell equals the formula exactly,
// searching all sections of the formula's first letter in order.
func (d *Dictionary) Lookup(formula string) ([]Entry, error) {
	sections, err := d.sectionsFor(formula)
	if err != nil {
		return nil, err
	}
	var matched []Entry
	for _, section := range sections {
		for _, entry := range d.sections[section.Key] {
			if entry.Formula == formula {
				matched = append(matched, entry)
			}
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, formula)
	}
	return matched, nil
}

// Position finds the section and row index a formula's article link is
// aligned to. A formula starting with C is placed in the organic section
// only when its first symbol is carbon itself.
func (d *Dictionary) Position(formula, firstSymbol string) (Section, int, error) {
	sections, err := d.sectionsFor(formula)
	if err != nil {
		return Section{}, 0, err
	}
	section := sections[0]
	if formula[0] == 'C' && len(sections) > 1 && firstSymbol != "C" {
		section = sections[1]
	}

	idx := slices.IndexFunc(d.sections[section.Key], func(e Entry) bool {
		return e.Formula == formula
	})
	if idx < 0 {
		return Section{}, 0, fmt.Errorf("%w: %q", ErrNoMatch, formula)
	}
	return section, idx, nil
}

// Suggest returns up to limit formulas from the formula's sections ordered by
// Jaro-Winkler similarity.
func (d *Dictionary) Suggest(formula string, limit int) []string {
	sections, err := d.sectionsFor(formula)
	if err != nil || limit <= 0 {
		return nil
	}

	type scored struct {
		formula string
		score   float64
	}
	seen := map[string]bool{}
	var candidates []scored
	for _, section := range sections {
		for _, entry := range d.sections[section.Key] {
			if entry.Formula == "" || seen[entry.Formula] {
				continue
			}
			seen[entry.Formula] = true
			candidates = append(candidates, scored{
				formula: entry.Formula,
				score:   matchr.JaroWinkler(formula, entry.Formula, false),
			})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	out := make([]string, 0, limit)
	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		out = append(out, c.formula)
	}
	return out
}
