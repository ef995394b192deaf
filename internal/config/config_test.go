package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rowanvale/foyer/internal/feed"
)

func TestLoadProjectConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if c.Project.Venue != "Gallery" {
		t.Fatalf("expected default venue, got %q", c.Project.Venue)
	}
	if !c.Project.SeedFeed {
		t.Fatal("expected seed_feed on by default")
	}
	if len(c.Project.Catalog) != 6 {
		t.Fatalf("expected 6 default catalog items, got %d", len(c.Project.Catalog))
	}
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	foyerDir := filepath.Join(projectDir, FoyerDir)
	if err := os.MkdirAll(foyerDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 2
venue: Night Market
seed_feed: false
operator:
  name: Rosa Duarte
  avatar: RD
  type: staff
catalog:
  - id: tea
    name: Tea
    emoji: "🍵"
    price_cents: 400
`)
	if err := os.WriteFile(filepath.Join(foyerDir, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Project.Version != 2 {
		t.Fatalf("expected version 2, got %d", c.Project.Version)
	}
	if c.Project.Venue != "Night Market" {
		t.Fatalf("expected venue override, got %q", c.Project.Venue)
	}
	if c.Project.SeedFeed {
		t.Fatal("expected seed_feed disabled")
	}
	if len(c.Project.Catalog) != 1 || c.Project.Catalog[0].ID != "tea" {
		t.Fatalf("expected catalog replaced, got %+v", c.Project.Catalog)
	}
	if c.Project.Operator.Name != "Rosa Duarte" {
		t.Fatalf("expected operator override, got %q", c.Project.Operator.Name)
	}
}

func TestSparseConfigKeepsDefaults(t *testing.T) {
	projectDir := t.TempDir()
	foyerDir := filepath.Join(projectDir, FoyerDir)
	if err := os.MkdirAll(foyerDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(foyerDir, "config.yaml"), []byte("venue: Atrium\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if c.Project.Venue != "Atrium" {
		t.Fatalf("expected venue override, got %q", c.Project.Venue)
	}
	if !c.Project.SeedFeed {
		t.Fatal("sparse config must keep the default seed_feed=true")
	}
	if c.Project.Operator.Name != "Jeremy Bailey" {
		t.Fatalf("sparse config must keep the default operator, got %q", c.Project.Operator.Name)
	}
	if len(c.Project.Catalog) != 6 {
		t.Fatalf("sparse config must keep the default catalog, got %d items", len(c.Project.Catalog))
	}
}

func TestInitFoyerDirCreatesStructure(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitFoyerDir(projectDir); err != nil {
		t.Fatalf("InitFoyerDir returned error: %v", err)
	}
	for _, sub := range []string{"logs", "state"} {
		info, err := os.Stat(filepath.Join(projectDir, FoyerDir, sub))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected %s directory, got err=%v", sub, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(projectDir, FoyerDir, "config.yaml"))
	if err != nil {
		t.Fatalf("expected default config written: %v", err)
	}
	if !strings.Contains(string(data), "venue: Gallery") {
		t.Fatal("default config missing expected content")
	}

	// A second init must not clobber an edited config.
	custom := []byte("venue: Edited\n")
	if err := os.WriteFile(filepath.Join(projectDir, FoyerDir, "config.yaml"), custom, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitFoyerDir(projectDir); err != nil {
		t.Fatalf("second InitFoyerDir returned error: %v", err)
	}
	data, _ = os.ReadFile(filepath.Join(projectDir, FoyerDir, "config.yaml"))
	if string(data) != string(custom) {
		t.Fatal("InitFoyerDir overwrote an existing config")
	}
}

func TestOperatorIdentity(t *testing.T) {
	c := &Config{Project: defaultProjectConfig()}
	op := c.Operator()
	if op.ID != "operator" || op.Name != "Jeremy Bailey" || op.Avatar != "JB" {
		t.Fatalf("unexpected operator %+v", op)
	}
	if op.Type != feed.PersonStaff {
		t.Fatalf("expected staff operator, got %q", op.Type)
	}

	c.Project.Operator = OperatorConfig{Name: "Rosa Duarte"}
	op = c.Operator()
	if op.Avatar != "R" {
		t.Fatalf("expected initial fallback avatar, got %q", op.Avatar)
	}
	if op.Type != feed.PersonStaff {
		t.Fatalf("expected staff fallback type, got %q", op.Type)
	}
}

func TestCatalogLineItems(t *testing.T) {
	c := &Config{Project: defaultProjectConfig()}
	items := c.Catalog()
	if len(items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(items))
	}
	if items[0].ID != "ticket" || items[0].UnitPrice != 2500 || items[0].Quantity != 1 {
		t.Fatalf("unexpected first item %+v", items[0])
	}
}
