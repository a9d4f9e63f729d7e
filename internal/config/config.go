// Package config holds the start-up settings of paintpad. Values come from
// built-in defaults, then an optional TOML file, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"github.com/example/paintpad/internal/paint"
)

var (
	ErrUnknownColor = errors.New("unknown color")
	ErrInvalid      = errors.New("invalid config")
)

type Config struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	Title          string  `toml:"title"`
	Tool           string  `toml:"tool"`
	StrokeWidth    float64 `toml:"stroke_width"`
	DefaultColor   string  `toml:"default_color"`
	HighlightColor string  `toml:"highlight_color"`
	Verbose        bool    `toml:"verbose"`
}

func Default() Config {
	return Config{
		Width:          1280,
		Height:         720,
		Title:          "paintpad",
		Tool:           paint.ToolPath.String(),
		StrokeWidth:    1,
		DefaultColor:   "black",
		HighlightColor: "red",
	}
}

// LoadFile overlays the TOML file at path onto c. Keys the file sets but
// Config does not know are reported as an error.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(names, ", "))
	}
	return nil
}

// Load parses args with fs and returns the resulting configuration. A
// -config flag names a TOML file that is applied before the other flags, so
// flags given explicitly always win.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	path := fs.String("config", "", "TOML `file` with settings")
	flags := Default()
	fs.IntVar(&flags.Width, "width", flags.Width, "window width")
	fs.IntVar(&flags.Height, "height", flags.Height, "window height")
	fs.StringVar(&flags.Title, "title", flags.Title, "window title")
	fs.StringVar(&flags.Tool, "tool", flags.Tool, "initial `tool` (pen, move, rect, circle, select)")
	fs.Float64Var(&flags.StrokeWidth, "stroke", flags.StrokeWidth, "stroke width")
	fs.BoolVar(&flags.Verbose, "verbose", flags.Verbose, "log every select distance")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "title":
			cfg.Title = flags.Title
		case "tool":
			cfg.Tool = flags.Tool
		case "stroke":
			cfg.StrokeWidth = flags.StrokeWidth
		case "verbose":
			cfg.Verbose = flags.Verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("%w: stroke width %g", ErrInvalid, c.StrokeWidth)
	}
	if _, err := c.InitialTool(); err != nil {
		return err
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	return nil
}

func (c Config) InitialTool() (paint.Tool, error) {
	return paint.ParseTool(c.Tool)
}

// Style returns the stroke style the configuration describes. Colors are
// SVG color names.
func (c Config) Style() (paint.Style, error) {
	def, err := lookupColor(c.DefaultColor)
	if err != nil {
		return paint.Style{}, err
	}
	hl, err := lookupColor(c.HighlightColor)
	if err != nil {
		return paint.Style{}, err
	}
	return paint.Style{Default: def, Highlight: hl, LineWidth: c.StrokeWidth}, nil
}

func lookupColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColor, name)
	}
	return c, nil
}
