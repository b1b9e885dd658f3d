// Package config defines the application configuration structure and loads
// it from environment variables (ADBOARD_ prefix) or an optional config file.
package config
