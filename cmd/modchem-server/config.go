package main

import (
	"fmt"
	"os"
	"time"

	configlibsql "modchem-backend/lib/configutil/libsql"
	"modchem-backend/lib/scrapers/wikidict"
)

type ScraperConfig struct {
	// ProfileFile replaces the built in snapshot profile.
	ProfileFile      string `json:"profile_file"`
	MirrorUrl        string `json:"mirror_url"`
	LinksUrl         string `json:"links_url"`
	ArticleBaseUrl   string `json:"article_base_url"`
	BypassCloudflare bool   `json:"bypass_cloudflare"`
	UserAgent        string `json:"user_agent"`
	Timeout          string `json:"timeout"`
}

type CacheConfig struct {
	Database configlibsql.Struct `json:"database"`
	TTL      string              `json:"ttl"`
}

type Config struct {
	Port         int           `json:"port"`
	LogFile      string        `json:"log_file"`
	AssetsDir    string        `json:"assets_dir"`
	SecureCookie bool          `json:"secure_cookie"`
	SessionTTL   string        `json:"session_ttl"`
	Scraper      ScraperConfig `json:"scraper"`
	Cache        CacheConfig   `json:"cache"`
}

func parseDuration(name, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

func (c ScraperConfig) profile() (wikidict.Profile, error) {
	profile := wikidict.DefaultProfile()
	if c.ProfileFile != "" {
		contents, err := os.ReadFile(c.ProfileFile)
		if err != nil {
			return wikidict.Profile{}, err
		}
		profile, err = wikidict.ParseProfile(contents)
		if err != nil {
			return wikidict.Profile{}, err
		}
	}
	if c.MirrorUrl != "" {
		profile.MirrorUrl = c.MirrorUrl
	}
	if c.LinksUrl != "" {
		profile.LinksUrl = c.LinksUrl
	}
	if c.ArticleBaseUrl != "" {
		profile.ArticleBaseUrl = c.ArticleBaseUrl
	}
	return profile, nil
}
