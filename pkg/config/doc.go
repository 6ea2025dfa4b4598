// Package config loads owlapi options. Values are layered from the
// embedded defaults, an optional TOML or YAML file, OWLAPI_* environment
// variables and runtime overrides set through Options.Set.
package config
