package modchem

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"modchem-backend/lib/chem"
	"modchem-backend/lib/periodic"
	"modchem-backend/lib/scrapers/wikidict"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("modchem.services.modchem")

//go:embed essay.html
var essay string

// Essay is the page shown in the article frame when no article is found.
func Essay() string {
	return essay
}

const (
	MessageEmpty   = "No data"
	MessageNoMatch = "No data. Either our database is incomplete, the element you entered is physically impossible, or you have discovered a new chemical compound."
	MessageFailed  = "No data."
)

const suggestionLimit = 5

// Scraper is the part of the dictionary client the service needs.
type Scraper interface {
	Dictionary(ctx context.Context) (*wikidict.Dictionary, error)
	ArticleHref(ctx context.Context, formula, firstSymbol string) (string, error)
	FetchArticle(ctx context.Context, href string) (string, error)
}

type Service struct {
	scraper Scraper
}

func NewService(scraper Scraper) Service {
	return Service{scraper: scraper}
}

// Build assembles the formula for the given button counts.
func (s Service) Build(counts map[string]int, mode chem.Mode) (chem.Formula, error) {
	tally, err := chem.TallyFrom(counts)
	if err != nil {
		return chem.Formula{}, err
	}
	return chem.Build(tally, mode), nil
}

type Resolution struct {
	Formula     string           `json:"formula"`
	Entries     []wikidict.Entry `json:"entries"`
	Message     string           `json:"message,omitempty"`
	Text        string           `json:"text"`
	Suggestions []string         `json:"suggestions,omitempty"`
}

// Resolve looks a formula up in the dictionary. The returned resolution
// always carries the text to show, the error is only set when the
// dictionary could not be read at all.
func (s Service) Resolve(ctx context.Context, formula chem.Formula) (Resolution, error) {
	ctx, span := tracer.Start(ctx, "Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("formula", formula.Text))

	res := Resolution{
		Formula: formula.Text,
		Entries: []wikidict.Entry{},
	}
	if formula.Empty() {
		res.Message = MessageEmpty
		res.Text = MessageEmpty
		return res, nil
	}

	dict, err := s.scraper.Dictionary(ctx)
	if err != nil {
		slog.WarnContext(ctx, "read dictionary", "formula", formula.Text, "err", err)
		res.Message = MessageFailed
		res.Text = MessageFailed
		return res, err
	}

	entries, err := dict.Lookup(formula.Text)
	switch {
	case errors.Is(err, wikidict.ErrNoMatch):
		res.Message = MessageNoMatch
		res.Text = MessageNoMatch
		res.Suggestions = dict.Suggest(formula.Text, suggestionLimit)
		return res, nil
	case err != nil:
		res.Message = MessageFailed
		res.Text = MessageFailed
		return res, nil
	}

	res.Entries = entries
	res.Text = FormatEntries(entries)
	span.SetAttributes(attribute.Int("entries", len(entries)))
	return res, nil
}

// FormatEntries renders dictionary rows as a plain text table.
func FormatEntries(entries []wikidict.Entry) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Chemical Formula", "Synonyms", "CAS Number"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Formula, e.Synonyms, e.CAS})
	}
	return t.Render()
}

type Article struct {
	Formula  string `json:"formula"`
	Href     string `json:"href,omitempty"`
	Body     string `json:"body"`
	Fallback bool   `json:"fallback"`
}

// citation markers render as bare numbers, the same way the page always has
var citationBrackets = strings.NewReplacer("[", "", "]", "")

// Article finds the wiki article of a formula. Any failure falls back to the
// essay.
func (s Service) Article(ctx context.Context, formula chem.Formula) Article {
	ctx, span := tracer.Start(ctx, "Article")
	defer span.End()

	out := Article{Formula: formula.Text, Body: essay, Fallback: true}
	if formula.Empty() {
		return out
	}

	href, err := s.scraper.ArticleHref(ctx, formula.Text, formula.FirstSymbol())
	if err != nil {
		slog.InfoContext(ctx, "no article", "formula", formula.Text, "err", err)
		return out
	}
	body, err := s.scraper.FetchArticle(ctx, href)
	if err != nil {
		slog.WarnContext(ctx, "fetch article", "href", href, "err", err)
		return out
	}

	span.SetAttributes(attribute.String("href", href))
	out.Href = href
	out.Body = citationBrackets.Replace(body)
	out.Fallback = false
	return out
}

var leadingSymbol = regexp.MustCompile(`^[A-Z][a-z]*`)

// ParseFormula turns a typed formula into a Formula for callers that have no
// click state. When firstSymbol is empty it is read off the formula text.
func ParseFormula(text, firstSymbol string) chem.Formula {
	text = strings.TrimSpace(text)
	if text == "" {
		return chem.Formula{Symbols: []string{}}
	}
	if firstSymbol == "" {
		firstSymbol = leadingSymbol.FindString(text)
	}
	symbols := []string{}
	if firstSymbol != "" {
		symbols = append(symbols, firstSymbol)
	}
	return chem.Formula{Total: 1, Symbols: symbols, Text: text}
}

type TableCell struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Group string `json:"group,omitempty"`
	Color string `json:"color,omitempty"`
}

type Table struct {
	Valences []int        `json:"valences"`
	Rows     [][]TableCell `json:"rows"`
}

// PeriodicTable describes the button layout of the page.
func PeriodicTable() Table {
	out := Table{Valences: append([]int(nil), periodic.Valences...)}
	for _, row := range periodic.Rows() {
		cells := make([]TableCell, len(row))
		for i, b := range row {
			if b.Empty() {
				continue
			}
			cells[i] = TableCell{
				ID:    b.ID,
				Name:  b.Name,
				Group: b.Group.String(),
				Color: b.Group.Color(),
			}
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}
