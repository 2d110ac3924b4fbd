package configuration

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = ierrors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, flags).
type Configuration struct {
	config *koanf.Koanf
	// boundParameters keeps track of all parameters that were bound using the BindParameters function.
	boundParameters map[string]*BoundParameter
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config:          koanf.New("."),
		boundParameters: make(map[string]*BoundParameter),
	}
}

// Print writes the loaded configuration as indented JSON to the given writer.
func (c *Configuration) Print(writer io.Writer) error {
	cfg, err := json.MarshalIndent(c.config.Raw(), "", "  ")
	if err != nil {
		return ierrors.Wrap(err, "unable to marshal config")
	}

	_, err = fmt.Fprintf(writer, "Parameters loaded: \n %s\n", cfg)

	return err
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return ierrors.Wrapf(ErrConfigDoesNotExist, "config file %s", filePath)
		}

		return ierrors.Wrapf(err, "unable to access config file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "unable to load config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// Load takes a Provider that either provides a parsed config map[string]interface{}
// in which case pa (Parser) can be nil, or raw bytes to be parsed, where a Parser
// can be provided to parse.
func (c *Configuration) Load(p koanf.Provider, pa koanf.Parser, opts ...koanf.Option) error {
	return c.config.Load(p, pa, opts...)
}

// Exists returns true if the given key exists in the configuration.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// All returns the flattened configuration.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}

// String returns the string value of the given key.
func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

// Strings returns the string slice value of the given key.
func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(strings.ToLower(key))
}

// Int returns the int value of the given key.
func (c *Configuration) Int(key string) int {
	return c.config.Int(strings.ToLower(key))
}

// Int64 returns the int64 value of the given key.
func (c *Configuration) Int64(key string) int64 {
	return c.config.Int64(strings.ToLower(key))
}

// Float64 returns the float64 value of the given key.
func (c *Configuration) Float64(key string) float64 {
	return c.config.Float64(strings.ToLower(key))
}

// Float64s returns the float64 slice value of the given key.
func (c *Configuration) Float64s(key string) []float64 {
	return c.config.Float64s(strings.ToLower(key))
}

// Bool returns the bool value of the given key.
func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(strings.ToLower(key))
}

// parserForFile returns the parser that matches the extension of the file.
func parserForFile(filePath string) (koanf.Parser, error) {
	switch filepath.Ext(filePath) {
	case ".json":
		return &JSONLowerParser{}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "config file %s", filePath)
	}
}
