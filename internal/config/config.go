// internal/config/config.go
//
// This package handles configuration and the .foyer directory structure.
// Every project that runs foyer gets a .foyer/ folder created in its root.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rowanvale/foyer/internal/feed"
)

const (
	// FoyerDir is the name of the directory we create in each project
	FoyerDir = ".foyer"

	configFileName = "config.yaml"
)

const defaultProjectConfigYAML = `# foyer project configuration
version: 1

# Shown in the header bar.
venue: Gallery

# Populate the feed with demo entries on startup.
seed_feed: true

# The active operator. Tasks with no staff recipient selected are assigned
# to this identity.
operator:
  name: Jeremy Bailey
  avatar: JB
  type: staff

# Point-of-sale catalog. Prices are in cents.
catalog:
  - id: ticket
    name: Ticket
    emoji: "🎫"
    price_cents: 2500
  - id: wine
    name: Wine
    emoji: "🍷"
    price_cents: 1200
  - id: beer
    name: Beer
    emoji: "🍺"
    price_cents: 800
  - id: cocktail
    name: Cocktail
    emoji: "🍸"
    price_cents: 1500
  - id: soft-drink
    name: Soft Drink
    emoji: "🥤"
    price_cents: 500
  - id: gift-shop
    name: Gift Shop Item
    emoji: "🛍️"
    price_cents: 2000
`

// OperatorConfig declares the active operator identity.
type OperatorConfig struct {
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar"`
	Type   string `yaml:"type"`
}

// CatalogItem is one sellable point-of-sale entry.
type CatalogItem struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Emoji      string `yaml:"emoji,omitempty"`
	PriceCents int    `yaml:"price_cents"`
}

// ProjectConfig models .foyer/config.yaml.
type ProjectConfig struct {
	Version  int            `yaml:"version"`
	Venue    string         `yaml:"venue"`
	SeedFeed bool           `yaml:"seed_feed"`
	Operator OperatorConfig `yaml:"operator"`
	Catalog  []CatalogItem  `yaml:"catalog"`
}

// projectConfigFile is the parse shape for the config file. seed_feed is a
// pointer so an absent key can be told apart from an explicit false.
type projectConfigFile struct {
	Version  int            `yaml:"version"`
	Venue    string         `yaml:"venue"`
	SeedFeed *bool          `yaml:"seed_feed"`
	Operator OperatorConfig `yaml:"operator"`
	Catalog  []CatalogItem  `yaml:"catalog"`
}

// Config holds the runtime configuration for foyer.
type Config struct {
	// ProjectDir is the directory where the user ran `foyer` from
	ProjectDir string

	// FoyerProjectDir is ProjectDir/.foyer
	FoyerProjectDir string

	Project ProjectConfig
}

// InitFoyerDir creates the .foyer directory structure in the given project
// directory. Called once at startup.
//
// Structure created:
// .foyer/
// ├── logs/    <- Shift activity log
// └── state/   <- Pins/stars persisted between runs
func InitFoyerDir(projectDir string) error {
	foyerDir := filepath.Join(projectDir, FoyerDir)
	for _, sub := range []string{"logs", "state"} {
		if err := os.MkdirAll(filepath.Join(foyerDir, sub), 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", sub, err)
		}
	}
	configPath := filepath.Join(foyerDir, configFileName)
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(configPath, []byte(defaultProjectConfigYAML), 0o644); err != nil {
			return fmt.Errorf("config: write default config: %w", err)
		}
	}
	return nil
}

// NewConfig loads the project configuration, falling back to defaults for
// anything missing.
func NewConfig(projectDir string) (*Config, error) {
	c := &Config{
		ProjectDir:      projectDir,
		FoyerProjectDir: filepath.Join(projectDir, FoyerDir),
		Project:         defaultProjectConfig(),
	}
	if err := c.loadProjectConfig(); err != nil {
		return nil, err
	}
	return c, nil
}

func defaultProjectConfig() ProjectConfig {
	var cfg ProjectConfig
	// The embedded default YAML is the single source of truth.
	if err := yaml.Unmarshal([]byte(defaultProjectConfigYAML), &cfg); err != nil {
		panic(fmt.Sprintf("config: invalid embedded default: %v", err))
	}
	return cfg
}

func (c *Config) loadProjectConfig() error {
	path := filepath.Join(c.FoyerProjectDir, configFileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed projectConfigFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.mergeProjectConfig(parsed)
	return nil
}

// mergeProjectConfig overlays parsed values onto the defaults so a sparse
// config file still yields a usable operator and catalog. Absent keys keep
// their defaults.
func (c *Config) mergeProjectConfig(parsed projectConfigFile) {
	if parsed.Version != 0 {
		c.Project.Version = parsed.Version
	}
	if strings.TrimSpace(parsed.Venue) != "" {
		c.Project.Venue = parsed.Venue
	}
	if parsed.SeedFeed != nil {
		c.Project.SeedFeed = *parsed.SeedFeed
	}
	if strings.TrimSpace(parsed.Operator.Name) != "" {
		c.Project.Operator = parsed.Operator
	}
	if len(parsed.Catalog) > 0 {
		c.Project.Catalog = parsed.Catalog
	}
}

// Operator returns the configured operator as a directory person.
func (c *Config) Operator() feed.Person {
	op := c.Project.Operator
	personType := feed.PersonType(strings.TrimSpace(op.Type))
	if personType == "" {
		personType = feed.PersonStaff
	}
	avatar := op.Avatar
	if avatar == "" && op.Name != "" {
		avatar = string([]rune(op.Name)[0])
	}
	return feed.Person{
		ID:     "operator",
		Name:   op.Name,
		Avatar: avatar,
		Type:   personType,
	}
}

// Catalog returns the sellable items as cart line templates, quantity 1.
func (c *Config) Catalog() []feed.LineItem {
	items := make([]feed.LineItem, 0, len(c.Project.Catalog))
	for _, item := range c.Project.Catalog {
		items = append(items, feed.LineItem{
			ID:        item.ID,
			Name:      item.Name,
			Emoji:     item.Emoji,
			UnitPrice: item.PriceCents,
			Quantity:  1,
		})
	}
	return items
}

// LogPath is where the shift log is written.
func (c *Config) LogPath() string {
	return filepath.Join(c.FoyerProjectDir, "logs", "shift.log")
}

// PinsPath is where starred/pinned entry ids are persisted.
func (c *Config) PinsPath() string {
	return filepath.Join(c.FoyerProjectDir, "state", "pins.yaml")
}
