// Package main implements the digitise command that assigns values to the subintervals of a uniform or declarative
// partition, either value by value or as a histogram.
package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals/configuration"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "digitise: %s\n", err)
		os.Exit(1)
	}
}

// run parses the arguments, loads the configuration and digitises the values given as positional arguments (or read
// from stdin if there are none).
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	params, values, err := loadParameters(args, stderr)
	if err != nil {
		return err
	}

	container, err := newContainer(params, stdin, stdout, stderr)
	if err != nil {
		return ierrors.Wrap(err, "failed to build components")
	}

	if err = container.Invoke(func(runner *Runner) error {
		return runner.Run(values)
	}); err != nil {
		return dig.RootCause(err)
	}

	return nil
}

// loadParameters binds the Parameters to a FlagSet and fills them from the config file and the command line, where
// flags that were set explicitly take precedence over the config file.
func loadParameters(args []string, stderr io.Writer) (params *Parameters, values []string, err error) {
	params = defaultParameters()
	config := configuration.New()

	flagSet := configuration.NewUnsortedFlagSet("digitise", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	configFilePath := flagSet.StringP("config", "c", "", "path to a json, yaml or toml config file")

	config.BindParameters(flagSet, "partition", &params.Partition)
	config.BindParameters(flagSet, "logger", &params.Logger)
	config.BindParameters(flagSet, "histogram", &params.Histogram)

	if err = flagSet.Parse(args); err != nil {
		return nil, nil, ierrors.Wrap(err, "failed to parse flags")
	}

	if *configFilePath != "" {
		if err = config.LoadFile(*configFilePath); err != nil {
			return nil, nil, err
		}
	}

	if err = config.LoadFlagSet(flagSet); err != nil {
		return nil, nil, ierrors.Wrap(err, "failed to load flags")
	}

	config.UpdateBoundParameters()

	return params, flagSet.Args(), nil
}
