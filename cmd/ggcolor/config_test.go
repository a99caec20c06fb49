package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ggcolor "github.com/gogpu/gg-color"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ggcolor.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
strict = true
named = true
precision = 4
compare = "#000"
format = "hex"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{Strict: true, Named: true, Precision: 4, Compare: "#000", Format: formatHex}
	if cfg != want {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.toml")} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%q) error = %v", path, err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("LoadConfig(%q) = %+v, want defaults", path, cfg)
		}
	}
}

func TestLoadConfigPartial(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "named = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Named || cfg.Format != formatText {
		t.Errorf("LoadConfig() = %+v, want named with text format", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "strict = [")); err == nil {
		t.Error("LoadConfig() with malformed TOML should fail")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"rgba", Config{Format: formatRGBA, Precision: 6}, false},
		{"unknown format", Config{Format: "hsl"}, true},
		{"negative precision", Config{Format: formatText, Precision: -1}, true},
		{"every bit dropped", Config{Format: formatText, Precision: 8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	err := Config{Format: formatText, Precision: 9}.Validate()
	if !errors.Is(err, ggcolor.ErrInvalidPrecision) {
		t.Errorf("Validate() error = %v, want ErrInvalidPrecision", err)
	}
}

func TestConfigParseOptions(t *testing.T) {
	if opts := DefaultConfig().ParseOptions(); len(opts) != 0 {
		t.Errorf("default ParseOptions() has %d options, want 0", len(opts))
	}

	opts := Config{Strict: true, Named: true}.ParseOptions()
	if _, err := ggcolor.Parse("teal", opts...); err != nil {
		t.Errorf("Parse(teal) with named options error = %v", err)
	}
	if _, err := ggcolor.Parse("zzz", opts...); !errors.Is(err, ggcolor.ErrUnknownNotation) {
		t.Errorf("Parse(zzz) with strict options error = %v, want ErrUnknownNotation", err)
	}
}
