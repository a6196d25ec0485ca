// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the speclust command.
//
// A configuration starts from DefaultConfig, is overlaid by an optional YAML
// file and SPECLUST_* environment variables, and is finally checked by
// Validate. Command-line flags are applied by the caller after Load.
package config
