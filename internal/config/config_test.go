package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loot-grid/assets"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loot-grid.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Limits.MaxVolume != 1000 || cfg.Limits.MaxMass != 5000 {
		t.Errorf("limits = %+v", cfg.Limits)
	}
	if cfg.Grid.RowSize != 10 || cfg.Grid.MinRows != 4 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if len(cfg.Items) != len(assets.Loot) {
		t.Errorf("items = %d, want %d", len(cfg.Items), len(assets.Loot))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
limits:
  max_volume: 200
grid:
  row_size: 8
items:
  - name: Lantern
    glyph: "🏮"
    volume: 20
    mass: 30
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Limits.MaxVolume != 200 || cfg.Limits.MaxMass != 5000 {
		t.Errorf("limits = %+v", cfg.Limits)
	}
	if cfg.Grid.RowSize != 8 || cfg.Grid.MinRows != 4 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	e, ok := cat.Entry(0)
	if !ok || e.Name != "Lantern" || e.Glyph != "🏮" || e.Volume != 20 || e.Mass != 30 {
		t.Errorf("entry = %+v", e)
	}
	opts := cfg.Options()
	if opts.RowSize != 8 || opts.MaxVolume != 200 {
		t.Errorf("options = %+v", opts)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "limits: [", "failed to parse"},
		{"negative limit", "limits:\n  max_mass: -1\n", "max_mass"},
		{"bad item", "items:\n  - name: Void\n    volume: 0\n    mass: 1\n", "volume must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want mention of %q", err, tc.want)
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}
