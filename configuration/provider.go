package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnsupportedProviderMethod is returned by the methods that the flag provider does not implement.
var ErrUnsupportedProviderMethod = ierrors.New("pflag provider does not support this method")

// lowerPosflag implements a pflag command line provider with lower cased keys.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a commandline flags provider that returns a nested map[string]interface{} where the
// nesting hierarchy of keys is defined by delim ("partition.count: 1" becomes {partition: {count: 1}}).
//
// Flags that were not set on the command line only contribute their default value if the key was not provided by
// another source (i.e. a config file) before.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		mp[key] = p.flagValue(f)
	})

	return maps.Unflatten(mp, p.delim), nil
}

// flagValue returns the typed value of the flag.
func (p *lowerPosflag) flagValue(f *pflag.Flag) interface{} {
	switch f.Value.Type() {
	case "int":
		i, _ := p.flagset.GetInt(f.Name)

		return int64(i)
	case "int64":
		i, _ := p.flagset.GetInt64(f.Name)

		return i
	case "float64":
		v, _ := p.flagset.GetFloat64(f.Name)

		return v
	case "bool":
		v, _ := p.flagset.GetBool(f.Name)

		return v
	case "stringSlice":
		v, _ := p.flagset.GetStringSlice(f.Name)

		return v
	case "intSlice":
		v, _ := p.flagset.GetIntSlice(f.Name)

		return v
	case "float64Slice":
		v, _ := p.flagset.GetFloat64Slice(f.Name)

		return v
	default:
		return f.Value.String()
	}
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ErrUnsupportedProviderMethod
}

// Watch is not supported.
func (p *lowerPosflag) Watch(_ func(event interface{}, err error)) error {
	return ErrUnsupportedProviderMethod
}
