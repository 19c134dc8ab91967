package modchem

import (
	"context"
	"strings"
	"testing"

	"modchem-backend/lib/chem"
	"modchem-backend/lib/scrapers/wikidict"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const dictionaryPage = `<html><body>
<table id="org"><tr><td>CH4</td><td>methane</td><td>74-82-8</td></tr></table>
<table id="inorg"><tr><td>CaCO3</td><td>calcium carbonate</td><td>471-34-1</td></tr></table>
<table id="n">
<tr><td>NaCl</td><td>salt</td><td>7647-14-5</td></tr>
<tr><td>NaOH</td><td>lye</td><td>1310-73-2</td></tr>
</table>
</body></html>`

type stubScraper struct {
	dict     *wikidict.Dictionary
	dictErr  error
	hrefs    map[string]string
	articles map[string]string
}

func (s stubScraper) Dictionary(ctx context.Context) (*wikidict.Dictionary, error) {
	return s.dict, s.dictErr
}

func (s stubScraper) ArticleHref(ctx context.Context, formula, firstSymbol string) (string, error) {
	href, ok := s.hrefs[formula+"/"+firstSymbol]
	if !ok {
		return "", wikidict.ErrNoArticle
	}
	return href, nil
}

func (s stubScraper) FetchArticle(ctx context.Context, href string) (string, error) {
	body, ok := s.articles[href]
	if !ok {
		return "", wikidict.ErrUpstream
	}
	return body, nil
}

func newStubScraper(t testing.TB) stubScraper {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(dictionaryPage))
	require.NoError(t, err)
	profile := wikidict.Profile{
		Sections: []wikidict.Section{
			{Key: "C-organic", Letter: "C", Table: "org"},
			{Key: "C-inorganic", Letter: "C", Table: "inorg"},
			{Key: "N", Letter: "N", Table: "n"},
		},
	}
	return stubScraper{
		dict: wikidict.ParseDictionary(context.Background(), doc, profile),
		hrefs: map[string]string{
			"CH4/C":   "/wiki/Methane",
			"CH4O/C":  "/wiki/Methanol",
			"NaCl/Na": "/wiki/Sodium_chloride",
		},
		articles: map[string]string{
			"/wiki/Methane":  "<h1>Methane</h1>",
			"/wiki/Methanol": `<p>Methanol<sup><a href="#cite-1">[1]</a></sup> [edit]</p>`,
		},
	}
}

func TestBuild(t *testing.T) {
	svc := NewService(newStubScraper(t))

	formula, err := svc.Build(map[string]int{"Na": 1, "Cl": 1}, chem.Ionic)
	require.NoError(t, err)
	require.Equal(t, "NaCl", formula.Text)

	_, err = svc.Build(map[string]int{"Xx": 1}, chem.Ionic)
	require.ErrorIs(t, err, chem.ErrUnknownButton)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newStubScraper(t))

	res, err := svc.Resolve(ctx, chem.Formula{})
	require.NoError(t, err)
	require.Equal(t, MessageEmpty, res.Text)
	require.Empty(t, res.Entries)

	res, err = svc.Resolve(ctx, ParseFormula("NaCl", ""))
	require.NoError(t, err)
	require.Empty(t, res.Message)
	if diff := cmp.Diff([]wikidict.Entry{{Formula: "NaCl", Synonyms: "salt", CAS: "7647-14-5"}}, res.Entries); diff != "" {
		t.Fatalf("entries (-want +got):\n%s", diff)
	}
	require.Contains(t, res.Text, "Chemical Formula")
	require.Contains(t, res.Text, "CAS Number")
	require.Contains(t, res.Text, "7647-14-5")

	res, err = svc.Resolve(ctx, ParseFormula("NaCl2", ""))
	require.NoError(t, err)
	require.Equal(t, MessageNoMatch, res.Text)
	require.Equal(t, "NaCl", res.Suggestions[0])

	res, err = svc.Resolve(ctx, ParseFormula("CaCO3", ""))
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)

	res, err = svc.Resolve(ctx, ParseFormula("Xe", ""))
	require.NoError(t, err)
	require.Equal(t, MessageFailed, res.Text)
}

func TestResolveDictionaryDown(t *testing.T) {
	scraper := newStubScraper(t)
	scraper.dict = nil
	scraper.dictErr = wikidict.ErrUpstream
	svc := NewService(scraper)

	res, err := svc.Resolve(context.Background(), ParseFormula("NaCl", ""))
	require.ErrorIs(t, err, wikidict.ErrUpstream)
	require.Equal(t, MessageFailed, res.Text)
}

func TestArticle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newStubScraper(t))

	article := svc.Article(ctx, ParseFormula("CH4", ""))
	require.False(t, article.Fallback)
	require.Equal(t, "/wiki/Methane", article.Href)
	require.Equal(t, "<h1>Methane</h1>", article.Body)

	article = svc.Article(ctx, ParseFormula("CH4O", ""))
	require.False(t, article.Fallback)
	require.Equal(t, `<p>Methanol<sup><a href="#cite-1">1</a></sup> edit</p>`, article.Body)

	cases := map[string]chem.Formula{
		"empty":         {},
		"no article":    ParseFormula("NaOH", ""),
		"fetch failure": ParseFormula("NaCl", ""),
	}
	for name, formula := range cases {
		t.Run(name, func(t *testing.T) {
			article := svc.Article(ctx, formula)
			require.True(t, article.Fallback)
			require.Equal(t, Essay(), article.Body)
		})
	}
}

func TestParseFormula(t *testing.T) {
	require.True(t, ParseFormula("  ", "").Empty())
	require.Equal(t, "Ca", ParseFormula("CaCO3", "").FirstSymbol())
	require.Equal(t, "C", ParseFormula("CH4", "").FirstSymbol())
	require.Equal(t, "Ca", ParseFormula("CH4", "Ca").FirstSymbol())
	require.Equal(t, "", ParseFormula("(OH)2", "").FirstSymbol())
}

func TestEssay(t *testing.T) {
	require.Contains(t, Essay(), "When I was fourteen I learnt modular arithmetic")
	require.Contains(t, Essay(), "/assets/mod-form.png")
}

func TestRenderFrame(t *testing.T) {
	frame, err := RenderFrame(`<p class="x">a & b</p>`)
	require.NoError(t, err)
	require.Contains(t, string(frame), `sandbox=""`)
	require.Contains(t, string(frame), `srcdoc="&lt;p class=&#34;x&#34;&gt;a &amp; b&lt;/p&gt;"`)
	require.Contains(t, string(frame), "height: 520px")
}

func TestPeriodicTable(t *testing.T) {
	table := PeriodicTable()
	require.Equal(t, []int{7, 6, 5, 4, 3, 2, 1, 0}, table.Valences)
	require.Len(t, table.Rows, 17)
	require.Empty(t, table.Rows[0][0].ID)
	require.Equal(t, "H", table.Rows[0][6].ID)
	require.Equal(t, "Nonmetal", table.Rows[0][6].Group)
}
