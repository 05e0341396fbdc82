package types

// OutputFormat selects how an assembled menu is written.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// DefaultWorkers is the number of titles extracted concurrently when
// ParseConfig.Workers is unset.
const DefaultWorkers = 8

// ParseConfig holds settings for assembling a menu from a listing file.
type ParseConfig struct {
	// Location names the restaurant location when the listing file omits it.
	Location string `json:"location" yaml:"location"`

	// Workers bounds the number of concurrent extractions (default 8).
	Workers int `json:"workers" yaml:"workers"`

	// Format selects the output encoding: json or yaml.
	Format OutputFormat `json:"format" yaml:"format"`

	// Pretty indents JSON output.
	Pretty bool `json:"pretty" yaml:"pretty"`

	// MetricsFile is an optional path for a Prometheus textfile export.
	MetricsFile string `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty"`
}

// WorkerLimit returns Workers, or DefaultWorkers when Workers is not positive.
func (c ParseConfig) WorkerLimit() int {
	if c.Workers <= 0 {
		return DefaultWorkers
	}
	return c.Workers
}
