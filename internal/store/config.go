package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Mode            string   `yaml:"mode"`
	CatalogPath     string   `yaml:"catalog_path"`
	SeenLinksPath   string   `yaml:"seen_links_path"`
	MaxItemsPerFeed int      `yaml:"max_items_per_feed"`
	PollMinutes     int      `yaml:"poll_minutes"`
	ActiveSectors   []string `yaml:"active_sectors"`
	SkipKeywords    []string `yaml:"skip_keywords"`
	Feeds           []Feed   `yaml:"feeds"`
	Scrapes         []Scrape `yaml:"scrapes"`
	Prices          struct {
		Range     string `yaml:"range"`
		RSIPeriod int    `yaml:"rsi_period"`
	} `yaml:"prices"`
	Telegram struct {
		DisablePreview bool `yaml:"disable_preview"`
	} `yaml:"telegram"`
}

// Feed is one RSS/Atom source.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Scrape is one HTML listing source for portals without a usable feed.
type Scrape struct {
	Name            string `yaml:"name"`
	URL             string `yaml:"url"`
	ItemSelector    string `yaml:"item_selector"`
	TitleSelector   string `yaml:"title_selector"`
	LinkSelector    string `yaml:"link_selector"`
	SummarySelector string `yaml:"summary_selector"`
}

func (c *Config) Validate() error {
	if c.Mode != "TRADER" && c.Mode != "INVESTOR" {
		return fmt.Errorf("invalid mode '%s': must be 'TRADER' or 'INVESTOR'", c.Mode)
	}
	if c.CatalogPath == "" {
		return errors.New("catalog_path cannot be empty")
	}
	if len(c.Feeds) == 0 && len(c.Scrapes) == 0 {
		return errors.New("at least one feed or scrape source is required")
	}
	for _, f := range c.Feeds {
		if f.Name == "" || f.URL == "" {
			return fmt.Errorf("feed entries need both name and url, got name='%s' url='%s'", f.Name, f.URL)
		}
	}
	for _, s := range c.Scrapes {
		if s.Name == "" || s.URL == "" || s.ItemSelector == "" {
			return fmt.Errorf("scrape '%s' needs url and item_selector", s.Name)
		}
	}
	if c.Prices.RSIPeriod < 2 {
		return fmt.Errorf("prices.rsi_period must be >= 2, got %d", c.Prices.RSIPeriod)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.MaxItemsPerFeed == 0 {
		c.MaxItemsPerFeed = 5
	}
	if c.SeenLinksPath == "" {
		c.SeenLinksPath = "data/seen_links.txt"
	}
	if c.Prices.Range == "" {
		c.Prices.Range = "3mo"
	}
	if c.Prices.RSIPeriod == 0 {
		c.Prices.RSIPeriod = 14
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
