package app

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"bitlife/internal/session"
	"bitlife/pkg/core"
	"bitlife/pkg/life"

	"gopkg.in/yaml.v3"
)

// Config represents the parameters shared by the host commands.
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Scale   int    `yaml:"scale"`
	TPS     int    `yaml:"tps"`
	Rate    int    `yaml:"rate"`
	Seed    int64  `yaml:"seed"`
	Pattern string `yaml:"pattern"`
	Addr    string `yaml:"addr"`

	// File is the YAML file the config was loaded from, if any.
	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:  life.DefaultWidth,
		Height: life.DefaultHeight,
		Scale:  8,
		TPS:    60,
		Rate:   10,
		Seed:   42,
		Addr:   ":8080",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second (0 = manual stepping)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a named pattern on a dead grid instead of random cells")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address for the websocket server")
	fs.StringVar(&c.File, "config", c.File, "YAML config file; flags override its values")
}

// Load binds c to fs and parses args. When -config names a file, the file
// is applied first and args are parsed again so explicit flags win.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays values from a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	c.File = path
	return nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height))
	}
	if uint64(c.Width) > uint64(^uint32(0)) || uint64(c.Height) > uint64(^uint32(0)) {
		errs = append(errs, fmt.Errorf("grid size %dx%d exceeds 32-bit dimensions", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Rate < 0 {
		errs = append(errs, fmt.Errorf("rate must not be negative, got %d", c.Rate))
	}
	if c.Pattern != "" {
		if _, ok := life.LookupPattern(c.Pattern); !ok {
			errs = append(errs, fmt.Errorf("unknown pattern %q (have %v)", c.Pattern, life.PatternNames()))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// NewSession builds the starting universe described by c and wraps it in
// a session.
func (c *Config) NewSession() (*session.Session, error) {
	u, err := life.NewEmpty(uint32(c.Width), uint32(c.Height))
	if err != nil {
		return nil, err
	}
	s := session.New(u)
	if err := c.Populate(s, c.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Populate resets s to the configured start: the pattern centered on a
// dead grid when Pattern is set, otherwise a random fill from seed.
func (c *Config) Populate(s *session.Session, seed int64) error {
	if c.Pattern == "" {
		s.Randomize(core.NewRNG(seed))
		return nil
	}
	p, ok := life.LookupPattern(c.Pattern)
	if !ok {
		return fmt.Errorf("%w: %q", life.ErrUnknownPattern, c.Pattern)
	}
	size := s.Size()
	rows, cols := p.Size()
	row := uint32(max(size.H-int(rows), 0) / 2)
	col := uint32(max(size.W-int(cols), 0) / 2)
	s.Clear()
	return s.Place(c.Pattern, row, col)
}
