// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml file and MFR_-prefixed environment
// variables. Environment variables take precedence over the file.
package config
