// Package audit records zpass operations in the storage root.
//
// The log is JSON Lines at <storage-root>/audit.jsonl, one object per
// operation with an id, a UTC timestamp, the OS user and the operation's
// vault, domain and username. Keys, secrets and passwords are never written.
// The file does not end in .toml and is therefore never read as a vault.
package audit
