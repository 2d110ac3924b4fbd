package main

const (
	partitionKindUniform     = "uniform"
	partitionKindDeclarative = "declarative"
)

// ParametersPartition contains the definition of the partition that values are digitised into.
type ParametersPartition struct {
	Kind        string    `usage:"the kind of the partition (uniform|declarative)"`
	Count       int       `usage:"the number of subintervals of a uniform partition"`
	Left        float64   `usage:"the left edge of a uniform partition"`
	Right       float64   `usage:"the right edge of a uniform partition"`
	Breakpoints []float64 `usage:"the ascending breakpoints of a declarative partition"`
	Labels      []string  `usage:"optional labels, one per subinterval"`
}

// ParametersLogger contains the configuration of the logger.
type ParametersLogger struct {
	Level string `usage:"the log level (trace|debug|info|warning|error)"`
}

// ParametersHistogram contains the configuration of the histogram mode.
type ParametersHistogram struct {
	Enabled bool `usage:"count the values per subinterval instead of printing every value"`
	Workers int  `usage:"the number of workers that digitise values in histogram mode"`
}

// Parameters contains all parameters of the digitise command.
type Parameters struct {
	Partition ParametersPartition
	Logger    ParametersLogger
	Histogram ParametersHistogram
}

// defaultParameters returns the Parameters that are used if neither a config file nor a flag overrides them.
func defaultParameters() *Parameters {
	return &Parameters{
		Partition: ParametersPartition{
			Kind:  partitionKindUniform,
			Count: 10,
			Left:  0,
			Right: 1,
		},
		Logger: ParametersLogger{
			Level: "info",
		},
		Histogram: ParametersHistogram{
			Workers: 4,
		},
	}
}
