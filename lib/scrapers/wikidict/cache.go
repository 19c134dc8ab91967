package wikidict

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"time"

	"modchem-backend/internal/chrono"

	"github.com/PuerkitoBio/purell"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ErrCacheMiss = errors.New("webpage not in cache")

// Cache is an expiring store of fetched webpages, keyed by normalized url.
type Cache struct {
	db   *sql.DB
	time chrono.TimeAPI
}

// NewCache wraps a database that already has db.Schema applied.
func NewCache(db *sql.DB, time chrono.TimeAPI) *Cache {
	return &Cache{db: db, time: time}
}

// CacheKey normalizes a url so that trivially different spellings of the
// same page share an entry.
func CacheKey(rawUrl string) (string, error) {
	full, err := url.Parse(rawUrl)
	if err != nil {
		return "", err
	}
	normalized := purell.NormalizeURL(
		full,
		purell.FlagsSafe|
			purell.FlagsUsuallySafeNonGreedy|
			purell.FlagRemoveDirectoryIndex|
			purell.FlagRemoveFragment|
			purell.FlagSortQuery,
	)
	return normalized, nil
}

func (c *Cache) Get(ctx context.Context, rawUrl string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "cache:Get")
	defer span.End()

	key, err := CacheKey(rawUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return nil, err
	}
	span.SetAttributes(attribute.String("cache_key", key))

	var (
		contents  []byte
		expiresAt int64
	)
	err = c.db.QueryRowContext(
		ctx,
		"select contents, expires_at from webpage where key = ?",
		key,
	).Scan(&contents, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read cached webpage")
		return nil, err
	}

	if c.time.Now().Unix() >= expiresAt {
		span.AddEvent("delete expired cache key", trace.WithAttributes(
			attribute.String("key", key),
		))
		_, err = c.db.ExecContext(ctx, "delete from webpage where key = ?", key)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to delete expired key")
		}
		return nil, ErrCacheMiss
	}

	span.SetAttributes(attribute.Int("content_length", len(contents)))
	return contents, nil
}

func (c *Cache) Set(ctx context.Context, rawUrl string, contents []byte, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "cache:Set")
	defer span.End()

	key, err := CacheKey(rawUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create cache key")
		return err
	}
	span.SetAttributes(attribute.String("cache_key", key))

	expiresAt := c.time.Now().Add(ttl).Unix()
	_, err = c.db.ExecContext(
		ctx,
		`insert into webpage(key, contents, expires_at) values (?, ?, ?)
		on conflict(key) do update set contents = excluded.contents, expires_at = excluded.expires_at`,
		key, contents, expiresAt,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to store webpage")
		return err
	}
	return nil
}

// Purge drops every expired entry and returns how many were removed.
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "cache:Purge")
	defer span.End()

	res, err := c.db.ExecContext(
		ctx,
		"delete from webpage where expires_at <= ?",
		c.time.Now().Unix(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to purge expired webpages")
		return 0, err
	}
	return res.RowsAffected()
}
