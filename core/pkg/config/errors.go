package config

import "fmt"

// ConfigurationError reports invalid or missing run configuration, including
// a dataset root that does not exist. It is fatal and raised before any table
// mutation.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid configuration %q: %s", e.Key, e.Reason)
}
