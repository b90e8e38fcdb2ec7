// Package config holds the dataprep configuration. Defaults reproduce the
// reference car scenario; a TOML file overrides them.
package config

import (
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Logging Logging `toml:"logging"`
	Clean   Clean   `toml:"clean"`
	Encode  Encode  `toml:"encode"`
	Scale   Scale   `toml:"scale"`
	Select  Select  `toml:"select"`
}

type Logging struct {
	// One of debug, info, warn or error.
	Level string `toml:"level"`
	// console or json.
	Format string `toml:"format"`
}

type Clean struct {
	// Numeric column whose missing cells get the median.
	ImputeColumn string `toml:"impute-column"`
	// Rows missing this column are removed.
	DropMissing string `toml:"drop-missing"`
	// Rows are kept when OutlierColumn < OutlierThreshold.
	OutlierColumn    string  `toml:"outlier-column"`
	OutlierThreshold float64 `toml:"outlier-threshold"`
	RegroupColumn    string  `toml:"regroup-column"`
	// Old value to new value.
	Regroup map[string]string `toml:"regroup"`
}

type Encode struct {
	OneHot    []string `toml:"one-hot"`
	DropFirst bool     `toml:"drop-first"`
	Label     []string `toml:"label"`
}

type Scale struct {
	Columns []string `toml:"columns"`
}

type Select struct {
	Target string `toml:"target"`
	K      int    `toml:"k"`
	// Identifier columns never scored.
	Exclude []string `toml:"exclude"`
}

// NewConfig returns the reference scenario.
func NewConfig() Config {
	return Config{
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Clean: Clean{
			ImputeColumn:     "EngineSize",
			DropMissing:      "Brand",
			OutlierColumn:    "Mileage",
			OutlierThreshold: 200000,
			RegroupColumn:    "Brand",
			Regroup:          map[string]string{"Daewoo": "Other"},
		},
		Encode: Encode{
			OneHot:    []string{"FuelType"},
			DropFirst: true,
			Label:     []string{"Transmission"},
		},
		Scale: Scale{
			Columns: []string{"Mileage", "EngineSize"},
		},
		Select: Select{
			Target:  "Price",
			K:       3,
			Exclude: []string{"Brand"},
		},
	}
}

// Load decodes the TOML file at path over the defaults. Unknown keys are rejected.
// A regroup table in the file replaces the default mapping as a whole.
func Load(path string) (Config, error) {
	c := NewConfig()
	regroup := c.Clean.Regroup
	c.Clean.Regroup = nil
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to decode %s", path)
	}
	if !md.IsDefined("clean", "regroup") {
		c.Clean.Regroup = regroup
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)

		return Config{}, errors.Wrapf(ErrInvalid, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return c, nil
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "unable to encode config")
}

func (c Logging) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalid, "unknown log level %q", c.Level)
	}
	switch c.Format {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalid, "unknown log format %q", c.Format)
	}

	return nil
}

func nonEmpty(field string, names ...string) error {
	for _, name := range names {
		if name == "" {
			return errors.Wrapf(ErrInvalid, "%s cannot be empty", field)
		}
	}

	return nil
}

func (c Clean) Validate() error {
	if err := nonEmpty("impute-column", c.ImputeColumn); err != nil {
		return err
	}
	if err := nonEmpty("drop-missing", c.DropMissing); err != nil {
		return err
	}
	if err := nonEmpty("outlier-column", c.OutlierColumn); err != nil {
		return err
	}

	return nonEmpty("regroup-column", c.RegroupColumn)
}

func (c Encode) Validate() error {
	if err := nonEmpty("one-hot", c.OneHot...); err != nil {
		return err
	}

	return nonEmpty("label", c.Label...)
}

func (c Scale) Validate() error {
	return nonEmpty("columns", c.Columns...)
}

func (c Select) Validate() error {
	if c.Target == "" {
		return errors.Wrap(ErrInvalid, "target cannot be empty")
	}
	if c.K < 1 {
		return errors.Wrapf(ErrInvalid, "k must be positive, got %d", c.K)
	}
	for _, name := range c.Exclude {
		if name == c.Target {
			return errors.Wrapf(ErrInvalid, "target %q cannot be excluded", name)
		}
	}

	return nonEmpty("exclude", c.Exclude...)
}

// Validate checks every section, then that the target is never transformed.
func (c Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return errors.Wrap(err, "logging")
	}
	if err := c.Clean.Validate(); err != nil {
		return errors.Wrap(err, "clean")
	}
	if err := c.Encode.Validate(); err != nil {
		return errors.Wrap(err, "encode")
	}
	if err := c.Scale.Validate(); err != nil {
		return errors.Wrap(err, "scale")
	}
	if err := c.Select.Validate(); err != nil {
		return errors.Wrap(err, "select")
	}

	target := c.Select.Target
	for _, set := range [][]string{c.Encode.OneHot, c.Encode.Label, c.Scale.Columns} {
		for _, name := range set {
			if name == target {
				return errors.Wrapf(ErrInvalid, "target %q cannot be encoded or scaled", target)
			}
		}
	}

	return nil
}
