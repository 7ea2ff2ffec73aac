// Package config loads the settings of the collection plugin.
package config

import (
	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"slices"
	"strings"
)

// DefaultHostAPI is the range of analyzer plugin API versions the plugin supports
const DefaultHostAPI = "^1.2"

// DefaultSuppressed are the methods called for their side effects only,
// whose unused result should not be reported
var DefaultSuppressed = []string{
	"Seq::tap",
	"NonEmptySeq::tap",
	"Set::tap",
	"NonEmptySet::tap",
	"Map::tap",
	"NonEmptyMap::tap",
	"Stream::tap",
	"Stream::drain",
}

// Config is read once, when the plugin registers, and never modified afterwards
type Config struct {
	// HostAPI is a semver constraint on the plugin API version of the analyzer
	HostAPI  string   `yaml:"host_api"`
	Refine   Refine   `yaml:"refine"`
	Suppress Suppress `yaml:"suppress"`
}

type Refine struct {
	// Families restricts refinement to the named collection families. Empty means all
	Families []string `yaml:"families"`
}

type Suppress struct {
	// Methods are `Class::method` ids. Entries also apply to the descendants of Class
	Methods []string `yaml:"methods"`

	// ReplaceDefaults drops DefaultSuppressed instead of adding Methods to it
	ReplaceDefaults bool `yaml:"replace_defaults"`
}

func Default() Config {
	return Config{
		HostAPI:  DefaultHostAPI,
		Suppress: Suppress{Methods: DefaultSuppressed},
	}
}

// Load reads the YAML config at path
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not read plugin config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid plugin config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result
func Parse(data []byte) (Config, error) {
	var read Config
	if err := yaml.Unmarshal(data, &read); err != nil {
		return Config{}, errors.Wrap(err, "could not decode YAML")
	}
	cfg := Default()
	if read.HostAPI != "" {
		cfg.HostAPI = read.HostAPI
	}
	cfg.Refine = read.Refine
	if read.Suppress.ReplaceDefaults {
		cfg.Suppress = read.Suppress
	} else {
		cfg.Suppress.Methods = append(slices.Clone(DefaultSuppressed), read.Suppress.Methods...)
	}
	return cfg, cfg.Validate()
}

// Validate reports every malformed setting at once
func (c Config) Validate() error {
	var result *multierror.Error
	if _, err := semver.NewConstraint(c.HostAPI); err != nil {
		result = multierror.Append(result, errors.Wrapf(err, "bad host_api constraint %q", c.HostAPI))
	}
	for _, id := range c.Suppress.Methods {
		class, method, ok := strings.Cut(id, "::")
		if !ok || class == "" || method == "" {
			result = multierror.Append(result, errors.Errorf("suppressed method %q is not of the form Class::method", id))
		}
	}
	return result.ErrorOrNil()
}

// HostConstraint parses HostAPI
func (c Config) HostConstraint() (*semver.Constraints, error) {
	constraint, err := semver.NewConstraint(c.HostAPI)
	return constraint, errors.Wrapf(err, "bad host_api constraint %q", c.HostAPI)
}
