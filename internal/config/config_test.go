package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Theme.Name != "default" {
		t.Errorf("theme.name = %q, want %q", cfg.Theme.Name, "default")
	}
	if cfg.Theme.Mode != "auto" {
		t.Errorf("theme.mode = %q, want %q", cfg.Theme.Mode, "auto")
	}
	if cfg.Remote.Addr == "" {
		t.Error("remote.addr should have a default")
	}
	if cfg.History.Disabled {
		t.Error("history should be enabled by default")
	}
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("missing file returns defaults without error", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("values override defaults", func(t *testing.T) {
		t.Parallel()
		path := write(t, "[theme]\nname = \"nord\"\nmode = \"dark\"\n\n[remote]\naddr = \":9000\"\n")
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg.Theme.Name != "nord" || cfg.Theme.Mode != "dark" {
			t.Errorf("theme = %+v, want nord/dark", cfg.Theme)
		}
		if cfg.Remote.Addr != ":9000" {
			t.Errorf("remote.addr = %q, want %q", cfg.Remote.Addr, ":9000")
		}
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		t.Parallel()
		path := write(t, "[history]\ndisabled = true\n")
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if !cfg.History.Disabled {
			t.Error("history.disabled not applied")
		}
		if cfg.Theme.Name != "default" {
			t.Errorf("theme.name = %q, want default kept", cfg.Theme.Name)
		}
	})

	t.Run("invalid toml is an error", func(t *testing.T) {
		t.Parallel()
		path := write(t, "[theme\nname = nope")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom() error = nil, want parse error")
		}
	})

	t.Run("unknown theme name is an error", func(t *testing.T) {
		t.Parallel()
		path := write(t, "[theme]\nname = \"solarized\"\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom() error = nil, want validation error")
		}
	})

	t.Run("unknown theme mode is an error", func(t *testing.T) {
		t.Parallel()
		path := write(t, "[theme]\nmode = \"dim\"\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom() error = nil, want validation error")
		}
	})
}

func TestIsValidThemeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
	}{
		{"default", true},
		{"dracula", true},
		{"nord", true},
		{"none", true},
		{"", false},
		{"Dracula", false},
		{"solarized", false},
	}

	for _, tt := range tests {
		if got := IsValidThemeName(tt.name); got != tt.valid {
			t.Errorf("IsValidThemeName(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestDefaultFileContent(t *testing.T) {
	t.Parallel()

	content := DefaultFileContent()

	// The shipped template must itself parse and validate.
	cfg := Default()
	if err := toml.Unmarshal([]byte(content), &cfg); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if !strings.Contains(content, "[remote]") {
		t.Error("default config missing [remote] section")
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("returns stored config", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		ctx := WithConfig(context.Background(), &cfg)
		if got := FromContext(ctx); got != &cfg {
			t.Error("FromContext did not return the stored config")
		}
	})

	t.Run("returns nil when missing", func(t *testing.T) {
		t.Parallel()
		if got := FromContext(context.Background()); got != nil {
			t.Errorf("FromContext on empty context = %v, want nil", got)
		}
	})
}
