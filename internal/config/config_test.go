package config

import (
	"errors"
	"flag"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/paintpad/internal/paint"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("paintpad", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paintpad.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Default(), cfg)
}

func TestLoadFileThenFlags(t *testing.T) {
	path := writeFile(t, `
width = 800
height = 600
tool = "rect"
stroke_width = 3
highlight_color = "blue"
`)
	cfg, err := Load(newFlagSet(), []string{"-config", path, "-height", "500", "-verbose"})
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Width = 800
	want.Height = 500
	want.Tool = "rect"
	want.StrokeWidth = 3
	want.HighlightColor = "blue"
	want.Verbose = true
	diff(t, want, cfg)
}

func TestLoadFileUnknownKey(t *testing.T) {
	path := writeFile(t, "widht = 800\n")
	_, err := Load(newFlagSet(), []string{"-config", path})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("error = %v, want ErrInvalid", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalid},
		{"negative stroke", func(c *Config) { c.StrokeWidth = -1 }, ErrInvalid},
		{"bad tool", func(c *Config) { c.Tool = "lasso" }, paint.ErrUnknownTool},
		{"bad color", func(c *Config) { c.DefaultColor = "blurple" }, ErrUnknownColor},
		{"bad highlight", func(c *Config) { c.HighlightColor = "" }, ErrUnknownColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestStyle(t *testing.T) {
	cfg := Default()
	cfg.DefaultColor = " Navy "
	cfg.StrokeWidth = 2
	style, err := cfg.Style()
	if err != nil {
		t.Fatal(err)
	}
	want := paint.Style{
		Default:   color.RGBA{0x00, 0x00, 0x80, 0xff},
		Highlight: color.RGBA{0xff, 0x00, 0x00, 0xff},
		LineWidth: 2,
	}
	diff(t, want, style)

	tool, err := cfg.InitialTool()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, paint.ToolPath, tool)
}
