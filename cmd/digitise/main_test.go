package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/intervals/partitions"
)

func runDigitise(stdin string, args ...string) (stdout string, stderr string, err error) {
	var outBuffer, errBuffer bytes.Buffer
	err = run(args, strings.NewReader(stdin), &outBuffer, &errBuffer)

	return outBuffer.String(), errBuffer.String(), err
}

func TestRun_Declarative(t *testing.T) {
	stdout, stderr, err := runDigitise("",
		"--partition.kind=declarative",
		"--partition.breakpoints=0,18.5,25,30",
		"--partition.labels=under,normal,over",
		"17", "abc", "30", "31",
	)
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		"17\t0\t[0, 18.5)\tunder",
		"30\t2\t[25, 30]\tover",
		"31\tout of range",
		"",
	}, "\n"), stdout)
	require.Contains(t, stderr, "skipping invalid value 'abc'")
}

func TestRun_UniformFromStdin(t *testing.T) {
	stdout, _, err := runDigitise("0.3\n1 -1\n\n",
		"--partition.count=4",
	)
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		"0.3\t1\t[0.25, 0.5)",
		"1\t3\t[0.75, 1]",
		"-1\tout of range",
		"",
	}, "\n"), stdout)
}

func TestRun_Histogram(t *testing.T) {
	stdout, _, err := runDigitise("0.1 0.2\n0.7\n5\n",
		"--partition.count=2",
		"--histogram.enabled",
		"--histogram.workers=3",
	)
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		"[0, 0.5)\t2",
		"[0.5, 1]\t1",
		"out of range\t1",
		"",
	}, "\n"), stdout)
}

func TestRun_HistogramLogging(t *testing.T) {
	stdout, stderr, err := runDigitise("0.1 5 -5\n",
		"--partition.count=2",
		"--histogram.enabled",
		"--logger.level=debug",
	)
	require.NoError(t, err)

	require.Contains(t, stdout, "out of range\t2")
	require.Contains(t, stderr, "counted 2 values outside of the partition")
}

func TestRun_ConfigFile(t *testing.T) {
	configFilePath := filepath.Join(t.TempDir(), "digitise.yml")
	require.NoError(t, os.WriteFile(configFilePath, []byte(strings.Join([]string{
		"partition:",
		"  kind: declarative",
		"  breakpoints: [0, 10, 20]",
		"  labels: [low, high]",
		"histogram:",
		"  enabled: true",
	}, "\n")), 0o600))

	// flags that were set explicitly override the config file
	stdout, _, err := runDigitise("", "-c", configFilePath, "--partition.labels=cold,warm", "5", "15", "20")
	require.NoError(t, err)

	require.Equal(t, strings.Join([]string{
		"[0, 10)\tcold\t1",
		"[10, 20]\twarm\t2",
		"",
	}, "\n"), stdout)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runDigitise("", "--partition.kind=circular")
	require.ErrorIs(t, err, ErrUnknownPartitionKind)

	_, _, err = runDigitise("", "--partition.kind=declarative", "--partition.breakpoints=3,1")
	require.ErrorIs(t, err, partitions.ErrIllFormedBreakpoints)

	_, _, err = runDigitise("", "--partition.count=0")
	require.ErrorIs(t, err, partitions.ErrInvalidCount)

	_, _, err = runDigitise("", "--partition.count=2", "--partition.labels=a,b,c")
	require.ErrorIs(t, err, partitions.ErrLabelCountMismatch)

	_, _, err = runDigitise("", "--logger.level=chatty")
	require.Error(t, err)

	_, _, err = runDigitise("", "--unknown-flag")
	require.Error(t, err)
}
