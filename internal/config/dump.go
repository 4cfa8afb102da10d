package config

import (
	"gopkg.in/yaml.v3"
)

// RedactedPassword replaces the auth password in dumped configuration
const RedactedPassword = "********"

// Dump renders the effective configuration in the same layout the
// loader reads. The auth password is masked.
func (c *Config) Dump() ([]byte, error) {
	redacted := *c
	if redacted.Auth.Password != "" {
		redacted.Auth.Password = RedactedPassword
	}
	return yaml.Marshal(&redacted)
}
