package wikidict

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"modchem-backend/internal/chrono"
	"modchem-backend/lib/htmlutil"
	"modchem-backend/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("modchem.lib.scrapers.wikidict")

var ErrUpstream = errors.New("upstream page unavailable")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Options struct {
	Profile Profile
	// Cache is optional, without it only the parsed pages are kept in memory.
	Cache    *Cache
	CacheTTL time.Duration

	BypassCloudflare bool
	UserAgent        string
	Timeout          time.Duration
	InstrumentOutput restyutil.InstrumentOutput
	Time             chrono.TimeAPI
}

type memo[T any] struct {
	value   T
	expires time.Time
}

type Client struct {
	profile Profile
	http    *resty.Client
	cache   *Cache
	ttl     time.Duration
	timeout time.Duration
	time    chrono.TimeAPI
	group   singleflight.Group

	lock       sync.Mutex
	dictionary *memo[*Dictionary]
	links      *memo[[]string]
}

func NewClient(opts Options) *Client {
	if opts.Profile.MirrorUrl == "" {
		opts.Profile = DefaultProfile()
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Time == nil {
		opts.Time = chrono.NewStandardTime()
	}

	client := resty.New()
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	restyutil.InstrumentClient(client, tracer, opts.InstrumentOutput)

	return &Client{
		profile: opts.Profile,
		http:    client,
		cache:   opts.Cache,
		ttl:     opts.CacheTTL,
		timeout: opts.Timeout,
		time:    opts.Time,
	}
}

func (c *Client) Profile() Profile {
	return c.profile
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	if c.cache != nil {
		body, err := c.cache.Get(ctx, url)
		if err == nil {
			span.SetAttributes(attribute.Bool("cached", true))
			return body, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			slog.WarnContext(ctx, "read page cache", "url", url, "err", err)
		}
	}

	key := url
	if normalized, err := CacheKey(url); err == nil {
		key = normalized
	}
	// the request is shared by every caller waiting on this key, so it must
	// outlive whichever caller happened to start it
	ch := c.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		res, err := c.http.R().
			SetContext(fetchCtx).
			Get(url)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		if res.IsError() {
			return nil, fmt.Errorf("%w: %s returned %s", ErrUpstream, url, res.Status())
		}

		body := res.Body()
		if c.cache != nil {
			err = c.cache.Set(fetchCtx, url, body, c.ttl)
			if err != nil {
				slog.WarnContext(fetchCtx, "write page cache", "url", url, "err", err)
			}
		}
		return body, nil
	})

	select {
	case <-ctx.Done():
		err := ctx.Err()
		span.RecordError(err)
		span.SetStatus(codes.Error, "caller gave up waiting for page")
		return nil, err
	case result := <-ch:
		span.SetAttributes(attribute.Bool("shared", result.Shared))
		if result.Err != nil {
			span.RecordError(result.Err)
			span.SetStatus(codes.Error, "failed to fetch page")
			return nil, result.Err
		}
		return result.Val.([]byte), nil
	}
}

func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

// Dictionary returns the parsed mirror page, reusing the last parse until it
// expires.
func (c *Client) Dictionary(ctx context.Context) (*Dictionary, error) {
	ctx, span := tracer.Start(ctx, "Dictionary")
	defer span.End()

	c.lock.Lock()
	cached := c.dictionary
	c.lock.Unlock()
	if cached != nil && c.time.Now().Before(cached.expires) {
		return cached.value, nil
	}

	doc, err := c.fetchDocument(ctx, c.profile.MirrorUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch dictionary")
		return nil, err
	}
	dict := ParseDictionary(ctx, doc, c.profile)

	c.lock.Lock()
	c.dictionary = &memo[*Dictionary]{value: dict, expires: c.time.Now().Add(c.ttl)}
	c.lock.Unlock()
	return dict, nil
}

// ArticleLinks returns the filtered href list of the pinned live page.
func (c *Client) ArticleLinks(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "ArticleLinks")
	defer span.End()

	c.lock.Lock()
	cached := c.links
	c.lock.Unlock()
	if cached != nil && c.time.Now().Before(cached.expires) {
		return cached.value, nil
	}

	doc, err := c.fetchDocument(ctx, c.profile.LinksUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch article links")
		return nil, err
	}
	anchors := htmlutil.GetAnchors(ctx, doc.Find("a"))
	links := FlattenLinks(anchors, c.profile.LinkRanges)
	span.SetAttributes(attribute.Int("links", len(links)))

	c.lock.Lock()
	c.links = &memo[[]string]{value: links, expires: c.time.Now().Add(c.ttl)}
	c.lock.Unlock()
	return links, nil
}
