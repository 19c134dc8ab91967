package wikidict

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"modchem-backend/internal/chrono"
	"modchem-backend/lib/htmlutil"
	"modchem-backend/lib/scrapers/wikidict/db"
	"modchem-backend/lib/telemetry"
	"modchem-backend/lib/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const mirrorPage = `<html><body>
<table id="tblCorg">
<tr><th>Formula</th><th>Synonyms</th><th>CAS</th></tr>
<tr><td>CH4</td><td>methane</td><td>74-82-8</td></tr>
<tr><td>C2H6O</td><td>ethanol</td><td>64-17-5</td></tr>
</table>
<table id="tblCinorg">
<tr><td>CaCO3</td><td>calcium carbonate</td><td>471-34-1</td></tr>
<tr><td>CH4</td><td>marsh gas</td></tr>
</table>
<table id="tblH"><tr><td>HBr</td><td>hydrogen bromide</td><td>10035-10-6</td></tr></table>
<div id="tblN"><table>
<tr><td>NaCl</td><td>salt</td><td>7647-14-5</td></tr>
<tr><td>NaOH</td><td>lye</td><td>1310-73-2</td></tr>
</table></div>
<table id="tblK"><tr><td>KBr</td><td>potassium bromide</td><td>7758-02-3</td></tr></table>
</body></html>`

const linksPage = `<html><body>
<a href="/wiki/Main_Page">0</a>
<a href="/wiki/Methane">1</a>
<a href="/wiki/Ethanol">2</a>
<a name="anchor-without-href">3</a>
<a href="/wiki/Help:Contents">4</a>
<a href="/wiki/Calcium_carbonate">5</a>
<a href="/wiki/Unused">6</a>
<a href="/wiki/Sodium_chloride">7</a>
<a href="https://example.org/elsewhere">8</a>
</body></html>`

const methanePage = `<html><head><title>Methane</title></head><body><h1>Methane</h1><p>CH<sub>4</sub></p></body></html>`

const slowPath = "/wiki/Slow"

type fakeWiki struct {
	server *httptest.Server
	lock   sync.Mutex
	hits   map[string]int

	// requests for slowPath block until release is closed
	release     chan struct{}
	releaseOnce sync.Once
}

func newFakeWiki(t testing.TB) *fakeWiki {
	f := &fakeWiki{
		hits:    map[string]int{},
		release: make(chan struct{}),
	}
	pages := map[string]string{
		"/mirror":       mirrorPage,
		"/links":        linksPage,
		"/wiki/Methane": methanePage,
		slowPath:        methanePage,
	}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		f.hits[r.URL.Path]++
		f.lock.Unlock()

		if r.URL.Path == slowPath {
			select {
			case <-f.release:
			case <-r.Context().Done():
				return
			}
		}

		page, ok := pages[r.URL.Path]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("content-type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	t.Cleanup(f.server.Close)
	t.Cleanup(f.releaseSlow)
	return f
}

func (f *fakeWiki) releaseSlow() {
	f.releaseOnce.Do(func() { close(f.release) })
}

func (f *fakeWiki) count(path string) int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.hits[path]
}

func (f *fakeWiki) profile() Profile {
	return Profile{
		MirrorUrl:      f.server.URL + "/mirror",
		LinksUrl:       f.server.URL + "/links?oldid=1",
		ArticleBaseUrl: f.server.URL,
		Sections: []Section{
			{Key: "C-organic", Letter: "C", Table: "tblCorg", Offset: 0},
			{Key: "C-inorganic", Letter: "C", Table: "tblCinorg", Offset: 3},
			{Key: "H", Letter: "H", Table: "tblH", Offset: 2},
			{Key: "K", Letter: "K", Table: "tblK", Offset: 100},
			{Key: "N", Letter: "N", Table: "tblN", Offset: 5},
			{Key: "Z", Letter: "Z", Table: "tblMissing", Offset: 0},
		},
		// flattened: 1 2 3 5 6 7 8
		LinkRanges: [][]int{{1, 4}, {5, 9}},
	}
}

func newTestCache(t testing.TB, clock chrono.TimeAPI) *Cache {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "lib/scrapers/wikidict/cache",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)
	return NewCache(res.DB, clock)
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	require.Len(t, p.Sections, 24)
	require.Len(t, p.LinkRanges, 55)
	require.Equal(t, []int{0, 245}, p.LinkRanges[0])

	c := p.SectionsFor('C')
	require.Len(t, c, 2)
	require.Equal(t, "mwB1w", c[0].Table)
	require.Equal(t, 337, c[0].Offset)
	require.Equal(t, "mwEtM", c[1].Table)
	require.Equal(t, 675, c[1].Offset)

	require.Empty(t, p.SectionsFor('J'))
	require.Empty(t, p.SectionsFor('Q'))
	require.Empty(t, p.SectionsFor('X'))

	// callers must not be able to edit the built in profile
	p.Sections[0].Offset = -1
	require.Equal(t, 52, DefaultProfile().Sections[0].Offset)
}

func TestParseProfileRejects(t *testing.T) {
	cases := map[string]string{
		"short range":     "link_ranges: [[1]]",
		"reversed range":  "link_ranges: [[5, 2]]",
		"negative range":  "link_ranges: [[-1, 2]]",
		"long letter":     "sections: [{key: a, letter: AB, table: x}]",
		"missing table":   "sections: [{key: a, letter: A}]",
		"duplicate key":   "sections: [{key: a, letter: A, table: x}, {key: a, letter: B, table: y}]",
		"not yaml at all": "sections: {",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProfile([]byte(contents))
			require.Error(t, err)
		})
	}
}

func TestCacheKey(t *testing.T) {
	key := func(raw string) string {
		k, err := CacheKey(raw)
		require.NoError(t, err)
		return k
	}

	same := map[string][2]string{
		"case, port and fragment": {"HTTPS://En.Wikipedia.org:443/wiki/Methane#History", "https://en.wikipedia.org/wiki/Methane"},
		"query order":             {"https://en.wikipedia.org/w/index.php?title=X&oldid=1", "https://en.wikipedia.org/w/index.php?oldid=1&title=X"},
		"dot segment":             {"https://en.wikipedia.org/wiki/./Methane", "https://en.wikipedia.org/wiki/Methane"},
		"parent segment":          {"https://en.wikipedia.org/wiki/foo/../Methane", "https://en.wikipedia.org/wiki/Methane"},
		"unneeded escape":         {"https://en.wikipedia.org/wiki/%7eMethane", "https://en.wikipedia.org/wiki/~Methane"},
		"directory index":         {"http://example.org/mirror/index.html", "http://example.org/mirror/"},
	}
	for name, pair := range same {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, key(pair[1]), key(pair[0]))
		})
	}

	require.NotEqual(t, key("https://en.wikipedia.org/wiki/Methane"), key("https://en.wikipedia.org/wiki/Ethane"))
	require.NotEqual(t, key("https://en.wikipedia.org/w/index.php?oldid=1"), key("https://en.wikipedia.org/w/index.php?oldid=2"))

	_, err := CacheKey("http://[::1")
	require.Error(t, err)
}

func TestCacheExpiry(t *testing.T) {
	ctx := context.Background()
	clock := chrono.NewManualTime(time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC))
	cache := newTestCache(t, clock)

	_, err := cache.Get(ctx, "https://example.org/a")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "https://example.org/a", []byte("first"), time.Hour))
	require.NoError(t, cache.Set(ctx, "https://example.org/b", []byte("other"), 3*time.Hour))

	body, err := cache.Get(ctx, "https://EXAMPLE.org/a#top")
	require.NoError(t, err)
	require.Equal(t, "first", string(body))

	require.NoError(t, cache.Set(ctx, "https://example.org/a", []byte("second"), time.Hour))
	body, err = cache.Get(ctx, "https://example.org/a")
	require.NoError(t, err)
	require.Equal(t, "second", string(body))

	clock.Advance(2 * time.Hour)
	_, err = cache.Get(ctx, "https://example.org/a")
	require.ErrorIs(t, err, ErrCacheMiss)

	body, err = cache.Get(ctx, "https://example.org/b")
	require.NoError(t, err)
	require.Equal(t, "other", string(body))

	clock.Advance(2 * time.Hour)
	purged, err := cache.Purge(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), purged)
}

func TestFlattenLinks(t *testing.T) {
	anchors := []htmlutil.Anchor{
		{Href: "/a", HasHref: true},
		{Href: "/b", HasHref: true},
		{Href: "", HasHref: false},
		{Href: "/d", HasHref: true},
		{Href: "/e", HasHref: true},
		{Href: "/f", HasHref: true},
	}
	got := FlattenLinks(anchors, [][]int{{0, 3}, {4, 4}, {5, 100}, {200, 300}})
	if diff := cmp.Diff([]string{"/a", "/b", "", "/f"}, got); diff != "" {
		t.Fatalf("flattened links (-want +got):\n%s", diff)
	}
}

func TestDictionaryLookup(t *testing.T) {
	wiki := newFakeWiki(t)
	client := NewClient(Options{Profile: wiki.profile()})
	ctx := context.Background()

	dict, err := client.Dictionary(ctx)
	require.NoError(t, err)
	require.Equal(t, 8, dict.Len())

	entries, err := dict.Lookup("CH4")
	require.NoError(t, err)
	want := []Entry{
		{Formula: "CH4", Synonyms: "methane", CAS: "74-82-8"},
		{Formula: "CH4", Synonyms: "marsh gas", CAS: ""},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("lookup (-want +got):\n%s", diff)
	}

	entries, err = dict.Lookup("NaCl")
	require.NoError(t, err)
	require.Equal(t, "salt", entries[0].Synonyms)

	_, err = dict.Lookup("NaCl2")
	require.ErrorIs(t, err, ErrNoMatch)
	_, err = dict.Lookup("Zn")
	require.ErrorIs(t, err, ErrNoSection)
	_, err = dict.Lookup("Xe")
	require.ErrorIs(t, err, ErrNoSection)
	_, err = dict.Lookup("")
	require.ErrorIs(t, err, ErrNoSection)

	suggestions := dict.Suggest("NaCL", 5)
	require.Equal(t, []string{"NaCl", "NaOH"}, suggestions)
	require.Len(t, dict.Suggest("CH5", 1), 1)
	require.Nil(t, dict.Suggest("Zn", 5))

	// parsed pages are memoized
	_, err = client.Dictionary(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, wiki.count("/mirror"))
}

func TestDictionaryPosition(t *testing.T) {
	wiki := newFakeWiki(t)
	client := NewClient(Options{Profile: wiki.profile()})
	dict, err := client.Dictionary(context.Background())
	require.NoError(t, err)

	section, row, err := dict.Position("C2H6O", "C")
	require.NoError(t, err)
	require.Equal(t, "C-organic", section.Key)
	require.Equal(t, 1, row)

	section, row, err = dict.Position("CaCO3", "Ca")
	require.NoError(t, err)
	require.Equal(t, "C-inorganic", section.Key)
	require.Equal(t, 0, row)

	// CaCO3 only lives in the inorganic table
	_, _, err = dict.Position("CaCO3", "C")
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestArticle(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:lib/scrapers/wikidict")
	defer cleanup()

	wiki := newFakeWiki(t)
	client := NewClient(Options{Profile: wiki.profile()})
	ctx := context.Background()

	href, err := client.ArticleHref(ctx, "CH4", "C")
	require.NoError(t, err)
	require.Equal(t, "/wiki/Methane", href)

	href, err = client.ArticleHref(ctx, "C2H6O", "C")
	require.NoError(t, err)
	require.Equal(t, "/wiki/Ethanol", href)

	href, err = client.ArticleHref(ctx, "CaCO3", "Ca")
	require.NoError(t, err)
	require.Equal(t, "/wiki/Calcium_carbonate", href)

	href, err = client.ArticleHref(ctx, "NaCl", "Na")
	require.NoError(t, err)
	require.Equal(t, "/wiki/Sodium_chloride", href)

	body, err := client.Article(ctx, "CH4", "C")
	require.NoError(t, err)
	require.Equal(t, "<h1>Methane</h1><p>CH<sub>4</sub></p>", body)

	require.Equal(t, 1, wiki.count("/links"))
}

func TestArticleFailures(t *testing.T) {
	wiki := newFakeWiki(t)
	client := NewClient(Options{Profile: wiki.profile()})
	ctx := context.Background()

	cases := []struct {
		name    string
		formula string
		first   string
	}{
		{name: "anchor without href", formula: "HBr", first: "H"},
		{name: "external href", formula: "NaOH", first: "Na"},
		{name: "index out of range", formula: "KBr", first: "K"},
		{name: "no match", formula: "NaCl3", first: "Na"},
		{name: "no section", formula: "Zn", first: "Zn"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := client.ArticleHref(ctx, c.formula, c.first)
			require.ErrorIs(t, err, ErrNoArticle)
		})
	}

	_, err := client.Article(ctx, "CaCO3", "Ca")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestClientUsesPageCache(t *testing.T) {
	wiki := newFakeWiki(t)
	clock := chrono.NewManualTime(time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC))
	cache := newTestCache(t, clock)
	ctx := context.Background()

	first := NewClient(Options{Profile: wiki.profile(), Cache: cache, CacheTTL: time.Hour, Time: clock})
	_, err := first.Article(ctx, "CH4", "C")
	require.NoError(t, err)

	second := NewClient(Options{Profile: wiki.profile(), Cache: cache, CacheTTL: time.Hour, Time: clock})
	_, err = second.Article(ctx, "CH4", "C")
	require.NoError(t, err)
	require.Equal(t, 1, wiki.count("/mirror"))
	require.Equal(t, 1, wiki.count("/links"))
	require.Equal(t, 1, wiki.count("/wiki/Methane"))

	clock.Advance(2 * time.Hour)
	_, err = second.Dictionary(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, wiki.count("/mirror"))
}

func TestClientUpstreamDown(t *testing.T) {
	wiki := newFakeWiki(t)
	profile := wiki.profile()
	wiki.server.Close()

	client := NewClient(Options{Profile: profile, Timeout: time.Second})
	_, err := client.Dictionary(context.Background())
	require.True(t, errors.Is(err, ErrUpstream))
}

func TestClientCollapsesConcurrentFetches(t *testing.T) {
	wiki := newFakeWiki(t)
	client := NewClient(Options{Profile: wiki.profile(), Timeout: 5 * time.Second})
	url := wiki.server.URL + slowPath

	const callers = 8
	bodies := make([][]byte, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bodies[i], errs[i] = client.fetch(context.Background(), url)
		}()
	}

	require.Eventually(t, func() bool {
		return wiki.count(slowPath) == 1
	}, time.Second, 5*time.Millisecond)
	// let the remaining callers join the flight
	time.Sleep(100 * time.Millisecond)
	wiki.releaseSlow()
	wg.Wait()

	require.Equal(t, 1, wiki.count(slowPath))
	for i := range callers {
		require.NoError(t, errs[i])
		require.Equal(t, methanePage, string(bodies[i]))
	}
}

func TestClientSharedFetchOutlivesCaller(t *testing.T) {
	wiki := newFakeWiki(t)
	client := NewClient(Options{Profile: wiki.profile(), Timeout: 5 * time.Second})
	url := wiki.server.URL + slowPath

	leaving, cancel := context.WithCancel(context.Background())
	defer cancel()
	leavingErr := make(chan error, 1)
	go func() {
		_, err := client.fetch(leaving, url)
		leavingErr <- err
	}()
	require.Eventually(t, func() bool {
		return wiki.count(slowPath) == 1
	}, time.Second, 5*time.Millisecond)

	type result struct {
		body []byte
		err  error
	}
	staying := make(chan result, 1)
	go func() {
		body, err := client.fetch(context.Background(), url)
		staying <- result{body, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case err := <-leavingErr:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting")
	}

	wiki.releaseSlow()
	res := <-staying
	require.NoError(t, res.err)
	require.Equal(t, methanePage, string(res.body))
	require.Equal(t, 1, wiki.count(slowPath))
}
