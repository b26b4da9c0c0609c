package slicingdice

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// DefaultEndpoint is the production address of the SlicingDice API.
	DefaultEndpoint = "https://api.slicingdice.com/v1"

	// DefaultTestEndpoint is the test environment under DefaultEndpoint.
	// Data there is volatile and kept apart from production.
	DefaultTestEndpoint = DefaultEndpoint + "/test"

	// DefaultTimeout bounds each API call when Config.Timeout is zero.
	DefaultTimeout = 60 * time.Second
)

// Config defines the configuration for the client.
//
// At least one API key must be set. Which operations the client may perform
// depends on the permission level of the configured keys; see the package
// documentation for the level each operation requires.
type Config struct {
	// MasterKey authorizes every operation on the database.
	MasterKey string `envconfig:"SD_MASTER_KEY"`
	// CustomKey authorizes the operations it was created with.
	CustomKey string `envconfig:"SD_CUSTOM_KEY"`
	// WriteKey authorizes data insertion.
	WriteKey string `envconfig:"SD_WRITE_KEY"`
	// ReadKey authorizes queries.
	ReadKey string `envconfig:"SD_READ_KEY"`

	// Endpoint is the base URL of the SlicingDice API. Defaults to
	// DefaultEndpoint.
	Endpoint string `envconfig:"SD_API_ADDRESS"`

	// UsesTestEndpoint routes calls to the test environment, where data is
	// volatile and kept apart from production. Operations that support a
	// per-call override can still opt out with WithTestMode(false).
	UsesTestEndpoint bool `envconfig:"SD_USE_TEST_ENDPOINT"`

	// Timeout bounds each API call, connection establishment included.
	// Defaults to DefaultTimeout.
	Timeout time.Duration `envconfig:"SD_TIMEOUT"`

	// InsecureSkipVerify disables TLS certificate verification. Only for
	// talking to self-signed staging deployments.
	InsecureSkipVerify bool `envconfig:"SD_INSECURE_SKIP_VERIFY"`
}

// ConfigFromEnv builds a Config from the SD_* environment variables.
func ConfigFromEnv() (*Config, error) {
	config := new(Config)
	if err := envconfig.Process("", config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) withDefaults() *Config {
	out := *c
	if out.Endpoint == "" {
		out.Endpoint = DefaultEndpoint
	}
	if out.Timeout == 0 {
		out.Timeout = DefaultTimeout
	}
	return &out
}

func (c *Config) hasKey() bool {
	return c.MasterKey != "" || c.CustomKey != "" || c.WriteKey != "" || c.ReadKey != ""
}
