package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/kelseyhightower/envconfig"

	"github.com/frain-dev/oasprobe/internal/pkg/fixture"
	"github.com/frain-dev/oasprobe/internal/pkg/probe"
	"github.com/frain-dev/oasprobe/pkg/log"
)

type LoggerConfiguration struct {
	Level string `json:"level" envconfig:"OASPROBE_LOGGER_LEVEL" valid:"supported_log_level~unsupported log level"`
}

type FixtureConfiguration struct {
	Path   string `json:"path" envconfig:"OASPROBE_FIXTURE_PATH" valid:"required~please provide a fixture path"`
	Format string `json:"format" envconfig:"OASPROBE_FIXTURE_FORMAT" valid:"optional,supported_format~unsupported fixture format"`

	// Validate stays nil until something sets it.
	Validate *bool `json:"validate" envconfig:"OASPROBE_FIXTURE_VALIDATE"`
}

// ShouldValidate reports whether the fixture is validated before it is
// written.
func (f FixtureConfiguration) ShouldValidate() bool {
	return f.Validate != nil && *f.Validate
}

type ProbeConfiguration struct {
	Target string `json:"target" envconfig:"OASPROBE_PROBE_TARGET" valid:"required~please provide a probe target"`
	Member string `json:"member" envconfig:"OASPROBE_PROBE_MEMBER"`
	Value  string `json:"value" envconfig:"OASPROBE_PROBE_VALUE"`
}

type Configuration struct {
	Logger  LoggerConfiguration  `json:"logger"`
	Fixture FixtureConfiguration `json:"fixture"`
	Probe   ProbeConfiguration   `json:"probe"`
}

// DefaultConfiguration is used for every field a config file, the
// environment, or a flag leaves empty.
var DefaultConfiguration = Configuration{
	Logger: LoggerConfiguration{
		Level: "error",
	},
	Fixture: FixtureConfiguration{
		Path: filepath.Join(os.TempDir(), fixture.DefaultFileName),
	},
	Probe: ProbeConfiguration{
		Target: probe.DefaultTarget,
		Member: probe.DefaultMember,
		Value:  probe.DefaultValue,
	},
}

// LoadConfig reads the JSON file at p, when p is not empty, then applies
// OASPROBE_* environment overrides and defaults.
func LoadConfig(p string) (*Configuration, error) {
	c := new(Configuration)

	if p != "" {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := json.NewDecoder(f).Decode(c); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", c); err != nil {
		return nil, err
	}

	c.applyDefaults()

	return c, c.Validate()
}

// Override replaces every non-empty field of c with the one in override.
func (c *Configuration) Override(override *Configuration) error {
	if override.Logger.Level != "" {
		c.Logger.Level = override.Logger.Level
	}

	if override.Fixture.Path != "" {
		c.Fixture.Path = override.Fixture.Path
	}

	if override.Fixture.Format != "" {
		c.Fixture.Format = override.Fixture.Format
	}

	if override.Fixture.Validate != nil {
		v := *override.Fixture.Validate
		c.Fixture.Validate = &v
	}

	if override.Probe.Target != "" {
		c.Probe.Target = override.Probe.Target
	}

	if override.Probe.Member != "" {
		c.Probe.Member = override.Probe.Member
	}

	if override.Probe.Value != "" {
		c.Probe.Value = override.Probe.Value
	}

	return c.Validate()
}

// Validate checks field values. An empty fixture format means the format is
// picked from the fixture path extension.
func (c *Configuration) Validate() error {
	_, err := govalidator.ValidateStruct(c)
	if err == nil {
		return nil
	}

	errs := govalidator.ErrorsByField(err)
	messages := make([]string, 0, len(errs))
	for field, message := range errs {
		messages = append(messages, fmt.Sprintf("%s:%s", field, message))
	}
	sort.Strings(messages)

	return errors.New(strings.Join(messages, ", "))
}

func init() {
	govalidator.TagMap["supported_log_level"] = govalidator.Validator(func(lvl string) bool {
		_, err := log.ParseLevel(lvl)
		return err == nil
	})

	govalidator.TagMap["supported_format"] = govalidator.Validator(func(format string) bool {
		_, err := fixture.ParseFormat(format)
		return err == nil
	})
}

func (c *Configuration) applyDefaults() {
	d := DefaultConfiguration

	if c.Logger.Level == "" {
		c.Logger.Level = d.Logger.Level
	}

	if c.Fixture.Path == "" {
		c.Fixture.Path = d.Fixture.Path
	}

	if c.Probe.Target == "" {
		c.Probe.Target = d.Probe.Target
	}

	if c.Probe.Member == "" {
		c.Probe.Member = d.Probe.Member
	}

	if c.Probe.Value == "" {
		c.Probe.Value = d.Probe.Value
	}
}
