package main

import (
	"io"

	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals/partitions"
	"github.com/iotaledger/hive.go/log"
)

// ErrUnknownPartitionKind is returned if the configured partition kind is neither uniform nor declarative.
var ErrUnknownPartitionKind = ierrors.New("unknown partition kind")

// newContainer creates the dig container that provides the components of the digitise command.
func newContainer(params *Parameters, stdin io.Reader, stdout io.Writer, stderr io.Writer) (*dig.Container, error) {
	container := dig.New()

	providers := []interface{}{
		func() *Parameters {
			return params
		},
		func(params *Parameters) (log.Logger, error) {
			return newLogger(params.Logger, stderr)
		},
		func(params *Parameters) (partitions.Partition[float64], error) {
			return newPartition(params.Partition)
		},
		func(params *Parameters, partition partitions.Partition[float64]) (*partitions.Labeled[float64, string], error) {
			return newLabeled(params.Partition, partition)
		},
		func(params *Parameters, logger log.Logger, partition partitions.Partition[float64], labeled *partitions.Labeled[float64, string]) *Runner {
			return NewRunner(params.Histogram, logger, partition, labeled, stdin, stdout)
		},
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func newLogger(params ParametersLogger, output io.Writer) (log.Logger, error) {
	level, err := log.LevelFromString(params.Level)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to parse log level")
	}

	return log.NewLogger(
		log.WithName("digitise"),
		log.WithLevel(level),
		log.WithOutput(output),
	), nil
}

func newPartition(params ParametersPartition) (partitions.Partition[float64], error) {
	switch params.Kind {
	case partitionKindUniform:
		uniform, err := partitions.NewUniform(params.Count, params.Left, params.Right)
		if err != nil {
			return nil, ierrors.Wrap(err, "failed to create uniform partition")
		}

		return uniform, nil
	case partitionKindDeclarative:
		declarative, err := partitions.NewDeclarative(params.Breakpoints...)
		if err != nil {
			return nil, ierrors.Wrap(err, "failed to create declarative partition")
		}

		return declarative, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownPartitionKind, "kind '%s'", params.Kind)
	}
}

// newLabeled returns nil if no labels were configured.
func newLabeled(params ParametersPartition, partition partitions.Partition[float64]) (*partitions.Labeled[float64, string], error) {
	if len(params.Labels) == 0 {
		return nil, nil
	}

	labeled, err := partitions.NewLabeled[float64, string](partition, params.Labels)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to label partition")
	}

	return labeled, nil
}
