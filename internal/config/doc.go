// Package config loads and validates showroom settings from YAML or TOML files and
// turns them into the render context and scroll options the showcase uses.
package config
