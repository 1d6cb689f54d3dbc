// Package configs holds the process-wide settings for zpass and the TOML
// helpers the vault store is written with.
//
// # Settings
//
// ZpassSettings is initialized at startup from the package constants:
//   - StorageRoot: directory holding one <name>.toml file per vault (./.zpass)
//   - SecretLength: random bytes generated for a new vault secret (256)
//
// Neither is configurable at runtime. Tests replace ZpassSettings with a
// value pointing at a temporary directory and restore it afterwards.
package configs
