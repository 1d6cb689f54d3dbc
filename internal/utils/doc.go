// Package utils provides the terminal and system helpers the zpass CLI
// uses at its edges.
//
// # Terminal Utilities
//
//   - ReadKey: prompts for a vault key without echoing it (x/term)
//   - ReadNewKey: prompts twice and compares, for newly created vaults
//
// # Clipboard
//
//   - CopyToClipboard: hands a derived password to the system clipboard
//
// # System and String Utilities
//
//   - GetUsername: the current OS user, recorded in audit entries
//   - Plural: output helper for the cmd layer
package utils
