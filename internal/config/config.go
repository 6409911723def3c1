// Package config loads diffview configuration from files and environment
// variables.
package config

// Config is the merged diffview configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Render RenderConfig `mapstructure:"render"`
}

// ServerConfig controls the API server.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Port int    `mapstructure:"port"`
}

// RenderConfig controls HTML fragment rendering.
type RenderConfig struct {
	// EmptyMessage is shown in place of the diff table when a diff has no
	// file changes. The dashboard localizes this.
	EmptyMessage string `mapstructure:"emptyMessage"`
}
