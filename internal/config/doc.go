// Package config provides configuration loading, merging, and validation
// for the form demo.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON, YAML or TOML config file
//
// Defaults fill whatever no source sets. The main entry point is
// [GetFormConfig], which returns the typed, validated view used by the demo.
package config
