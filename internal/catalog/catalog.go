package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gocarina/gocsv"

	"idx-signal-bot/internal/types"
)

// row mirrors one line of the emiten master CSV. Aliases are
// pipe-delimited in the file.
type row struct {
	Ticker  string `csv:"ticker"`
	Sector  string `csv:"sector"`
	Aliases string `csv:"aliases"`
}

// Catalog is the read-only emiten master: every tracked instrument with
// its sector and precompiled alias matchers.
type Catalog struct {
	emitens  []types.Emiten
	patterns map[string][]*regexp.Regexp
}

// Load reads the emiten master CSV. Any row with a missing required field
// is a load error: the catalog is startup-critical.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var rows []*row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog %s has no rows", path)
	}

	c := &Catalog{patterns: make(map[string][]*regexp.Regexp)}
	for i, r := range rows {
		ticker := strings.TrimSpace(r.Ticker)
		sector := strings.ToUpper(strings.TrimSpace(r.Sector))
		if ticker == "" || sector == "" || strings.TrimSpace(r.Aliases) == "" {
			return nil, fmt.Errorf("catalog %s row %d: ticker, sector and aliases are required", path, i+2)
		}

		var aliases []string
		for _, a := range strings.Split(r.Aliases, "|") {
			a = strings.TrimSpace(a)
			if a == "" {
				continue
			}
			aliases = append(aliases, a)
			// Whole-word match only: an alias must not fire inside a
			// longer token.
			p, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(a) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("catalog %s row %d: alias %q: %w", path, i+2, a, err)
			}
			c.patterns[ticker] = append(c.patterns[ticker], p)
		}
		if len(aliases) == 0 {
			return nil, fmt.Errorf("catalog %s row %d: no usable aliases", path, i+2)
		}

		c.emitens = append(c.emitens, types.Emiten{
			Ticker:  ticker,
			Sector:  sector,
			Aliases: aliases,
		})
	}

	return c, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.emitens)
}

// Emitens returns the catalog entries in file order.
func (c *Catalog) Emitens() []types.Emiten {
	return c.emitens
}
