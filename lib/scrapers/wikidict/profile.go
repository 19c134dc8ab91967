package wikidict

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed snapshot.yaml
var snapshotYaml []byte

// Section is one per-letter table of the dictionary.
type Section struct {
	Key    string `yaml:"key"`
	Letter string `yaml:"letter"`
	// Table is the element id of the table on the mirror.
	Table string `yaml:"table"`
	// Offset is where the table's first row sits in the filtered link list.
	Offset int `yaml:"offset"`
}

// Profile pins the two page snapshots the scraper understands.
type Profile struct {
	MirrorUrl      string    `yaml:"mirror_url"`
	LinksUrl       string    `yaml:"links_url"`
	ArticleBaseUrl string    `yaml:"article_base_url"`
	Sections       []Section `yaml:"sections"`
	// LinkRanges are half open [start, end) pairs.
	LinkRanges [][]int `yaml:"link_ranges"`
}

var defaultProfile Profile

func init() {
	var err error
	defaultProfile, err = ParseProfile(snapshotYaml)
	if err != nil {
		panic(err)
	}
}

// DefaultProfile returns the built in snapshot profile.
func DefaultProfile() Profile {
	p := defaultProfile
	p.Sections = append([]Section(nil), defaultProfile.Sections...)
	p.LinkRanges = append([][]int(nil), defaultProfile.LinkRanges...)
	return p
}

func ParseProfile(contents []byte) (Profile, error) {
	var p Profile
	err := yaml.Unmarshal(contents, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("parse snapshot profile: %w", err)
	}
	for _, r := range p.LinkRanges {
		if len(r) != 2 || r[0] < 0 || r[1] < r[0] {
			return Profile{}, fmt.Errorf("invalid link range %v", r)
		}
	}
	seen := map[string]bool{}
	for _, s := range p.Sections {
		if len(s.Letter) != 1 || s.Table == "" {
			return Profile{}, fmt.Errorf("invalid section %q", s.Key)
		}
		if seen[s.Key] {
			return Profile{}, fmt.Errorf("duplicate section %q", s.Key)
		}
		seen[s.Key] = true
	}
	return p, nil
}

// SectionsFor lists the sections a formula starting with `letter` is searched
// in, in search order.
func (p Profile) SectionsFor(letter byte) []Section {
	var out []Section
	for _, s := range p.Sections {
		if s.Letter[0] == letter {
			out = append(out, s)
		}
	}
	return out
}
