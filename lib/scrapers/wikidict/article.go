package wikidict

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"modchem-backend/lib/htmlutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var ErrNoArticle = errors.New("no article for formula")

// FlattenLinks keeps the anchors inside the given [start, end) ranges and
// concatenates them. Ranges past the end of the list are clamped. Anchors
// without an href stay in the list as empty strings.
func FlattenLinks(anchors []htmlutil.Anchor, ranges [][]int) []string {
	var out []string
	for _, r := range ranges {
		start := min(r[0], len(anchors))
		end := min(r[1], len(anchors))
		for _, a := range anchors[start:end] {
			out = append(out, a.Href)
		}
	}
	return out
}

// ArticleHref locates the wiki link aligned with the formula's dictionary row.
func (c *Client) ArticleHref(ctx context.Context, formula, firstSymbol string) (string, error) {
	ctx, span := tracer.Start(ctx, "ArticleHref")
	defer span.End()
	span.SetAttributes(attribute.String("formula", formula))

	dict, err := c.Dictionary(ctx)
	if err != nil {
		return "", err
	}
	section, row, err := dict.Position(formula, firstSymbol)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoArticle, err)
	}

	links, err := c.ArticleLinks(ctx)
	if err != nil {
		return "", err
	}
	idx := section.Offset + row
	span.SetAttributes(
		attribute.String("section", section.Key),
		attribute.Int("row", row),
		attribute.Int("link_index", idx),
	)
	if idx >= len(links) {
		return "", fmt.Errorf("%w: link index %d out of range", ErrNoArticle, idx)
	}

	href := links[idx]
	if !strings.HasPrefix(href, "/wiki/") {
		return "", fmt.Errorf("%w: unusable href %q", ErrNoArticle, href)
	}
	return href, nil
}

// FetchArticle returns the markup inside the body of a wiki article.
func (c *Client) FetchArticle(ctx context.Context, href string) (string, error) {
	ctx, span := tracer.Start(ctx, "FetchArticle")
	defer span.End()

	url := strings.TrimSuffix(c.profile.ArticleBaseUrl, "/") + href
	span.SetAttributes(attribute.String("url", url))

	doc, err := c.fetchDocument(ctx, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch article")
		return "", err
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		return "", fmt.Errorf("%w: %s has no body", ErrNoArticle, url)
	}
	return htmlutil.InnerHTML(body)
}

// Article resolves a formula straight to its article markup.
func (c *Client) Article(ctx context.Context, formula, firstSymbol string) (string, error) {
	href, err := c.ArticleHref(ctx, formula, firstSymbol)
	if err != nil {
		return "", err
	}
	return c.FetchArticle(ctx, href)
}
