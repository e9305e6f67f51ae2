// Package config provides configuration loading, merging, and validation
// facilities for the vault.
//
// Configuration is assembled from multiple sources. Earlier sources win over
// later ones for every non-zero field:
//  1. Command-line flags (bound on the cobra flag set with [BindFlags])
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// On top of that, the base directory keeps TOML namespace files: a
// .config.toml listing namespaces and a .<name>.config.toml per namespace
// naming its master key and secrets directory. [Load] resolves both.
package config
