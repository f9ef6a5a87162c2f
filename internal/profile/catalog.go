package profile

import (
	"bytes"
	"fmt"
	"strings"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is an immutable table of named role profiles.
type Catalog struct {
	roles map[string]RoleProfile
	names []string
}

type catalogEntry struct {
	Name            string          `mapstructure:"name"`
	RequiredSkills  []string        `mapstructure:"required-skills"`
	PreferredSkills []string        `mapstructure:"preferred-skills"`
	ExperienceAreas []string        `mapstructure:"experience-areas"`
	SeniorityBands  map[string]Band `mapstructure:"seniority-bands"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog, "yaml")
}

// Load reads a catalog file. The format is derived from the file extension.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog %q: %w", path, err)
	}

	return fromViper(v)
}

// Parse reads a catalog from raw data in the given format (yaml, json, toml).
func Parse(data []byte, format string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType(format)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Catalog, error) {
	var entries []catalogEntry

	cfg := &mapstructure.DecoderConfig{
		Result:           &entries,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(v.Get("roles")); err != nil {
		return nil, fmt.Errorf("decoding roles: %w", err)
	}

	return newCatalog(entries)
}

func newCatalog(entries []catalogEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog has no roles")
	}

	c := &Catalog{
		roles: make(map[string]RoleProfile, len(entries)),
		names: make([]string, 0, len(entries)),
	}

	for i, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("role #%d has no name", i+1)
		}
		if _, ok := c.roles[name]; ok {
			return nil, fmt.Errorf("duplicate role %q", name)
		}

		bands := make(map[string]Band, len(entry.SeniorityBands))
		for level, band := range entry.SeniorityBands {
			if band.MaxYears < band.MinYears {
				return nil, fmt.Errorf("role %q: band %q has max-years below min-years", name, level)
			}
			bands[canonicalLevel(level)] = band
		}
		if len(bands) == 0 {
			bands = defaultBands()
		}

		c.roles[name] = RoleProfile{
			Name:            name,
			RequiredSkills:  trimAll(entry.RequiredSkills),
			PreferredSkills: trimAll(entry.PreferredSkills),
			ExperienceAreas: trimAll(entry.ExperienceAreas),
			SeniorityBands:  bands,
		}
		c.names = append(c.names, name)
	}

	return c, nil
}

// Lookup returns the profile registered under name. The match is
// case-sensitive; unknown names yield the generic profile carrying the
// requested name.
func (c *Catalog) Lookup(name string) RoleProfile {
	if c != nil {
		if p, ok := c.roles[name]; ok {
			return p.clone()
		}
	}

	return Generic(name)
}

// Has reports whether name is present in the catalog.
func (c *Catalog) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.roles[name]
	return ok
}

// Names returns role names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.names...)
}

// Len returns the number of roles.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// canonicalLevel restores the display spelling of known levels, since
// configuration keys arrive lower-cased.
func canonicalLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "junior":
		return LevelJunior
	case "mid-level", "mid", "midlevel":
		return LevelMid
	case "senior":
		return LevelSenior
	default:
		return strings.TrimSpace(level)
	}
}

func trimAll(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
