package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cast"
	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/intervals/partitions"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/log"
)

const outOfRange = "out of range"

// Runner digitises values into a Partition and writes the results.
type Runner struct {
	params    ParametersHistogram
	logger    log.Logger
	partition partitions.Partition[float64]
	labeled   *partitions.Labeled[float64, string]
	input     io.Reader
	output    io.Writer
}

// NewRunner creates a new Runner. The labeled partition is optional.
func NewRunner(params ParametersHistogram, logger log.Logger, partition partitions.Partition[float64], labeled *partitions.Labeled[float64, string], input io.Reader, output io.Writer) *Runner {
	return &Runner{
		params:    params,
		logger:    logger,
		partition: partition,
		labeled:   labeled,
		input:     input,
		output:    output,
	}
}

// Run digitises the given values, or the whitespace separated values read from the input if none are given.
func (r *Runner) Run(values []string) error {
	r.logger.LogDebugf("digitising into %d subintervals", r.partition.Len())

	if r.params.Enabled {
		return r.histogram(values)
	}

	return r.forEachValue(values, r.printValue)
}

// printValue writes the index, the subinterval and the label of the value.
func (r *Runner) printValue(value float64) error {
	subInterval, found := partitions.Digitise(r.partition, value)
	if !found {
		_, err := fmt.Fprintf(r.output, "%s\t%s\n", cast.ToString(value), outOfRange)

		return err
	}

	line := fmt.Sprintf("%s\t%d\t%s", cast.ToString(value), subInterval.Index, subInterval.Interval.String())
	if r.labeled != nil {
		if label, exists := r.labeled.Get(value); exists {
			line += "\t" + label
		}
	}

	_, err := fmt.Fprintln(r.output, line)

	return err
}

// histogram counts the values per subinterval on a pool of workers and writes one line per subinterval.
func (r *Runner) histogram(values []string) error {
	logger := r.logger.NewChildLogger("histogram")
	defer logger.UnsubscribeFromParentLogger()

	counts := make([]*atomic.Int64, r.partition.Len())
	for i := range counts {
		counts[i] = atomic.NewInt64(0)
	}
	outOfRangeCount := atomic.NewInt64(0)

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(lo.Max(r.params.Workers, 1), func(task interface{}) {
		defer wg.Done()

		if index, found := r.partition.Index(task.(float64)); found {
			counts[index].Inc()
		} else {
			outOfRangeCount.Inc()
		}
	})
	if err != nil {
		return ierrors.Wrap(err, "failed to create worker pool")
	}
	defer pool.Release()

	if err = r.forEachValue(values, func(value float64) error {
		wg.Add(1)
		if invokeErr := pool.Invoke(value); invokeErr != nil {
			wg.Done()

			return ierrors.Wrap(invokeErr, "failed to submit value")
		}

		return nil
	}); err != nil {
		wg.Wait()

		return err
	}

	wg.Wait()

	logger.LogDebugf("counted %d values outside of the partition", outOfRangeCount.Load())

	for _, subInterval := range partitions.SubIntervals(r.partition) {
		line := subInterval.Interval.String()
		if r.labeled != nil {
			left, _ := subInterval.Edges()
			if label, exists := r.labeled.Get(left); exists {
				line += "\t" + label
			}
		}

		if _, err = fmt.Fprintf(r.output, "%s\t%d\n", line, counts[subInterval.Index].Load()); err != nil {
			return err
		}
	}

	if count := outOfRangeCount.Load(); count > 0 {
		if _, err = fmt.Fprintf(r.output, "%s\t%d\n", outOfRange, count); err != nil {
			return err
		}
	}

	return nil
}

// forEachValue calls the callback for every value that can be parsed. Values that can not be parsed are skipped with a
// warning.
func (r *Runner) forEachValue(values []string, callback func(value float64) error) error {
	handle := func(token string) error {
		value, err := cast.ToFloat64E(token)
		if err != nil {
			r.logger.LogWarnf("skipping invalid value '%s': %s", token, err)

			return nil
		}

		return callback(value)
	}

	if len(values) != 0 {
		for _, value := range values {
			if err := handle(strings.TrimSpace(value)); err != nil {
				return err
			}
		}

		return nil
	}

	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			if err := handle(token); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}
