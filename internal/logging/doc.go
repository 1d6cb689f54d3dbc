// Package logger provides leveled logging for zpass commands.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything including debug details and errors
//
// Without flags only user-facing warnings are shown.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d vaults", count)
//
// Nothing that passes through the logger may contain a key, decrypted
// secret bytes or a derived password.
package logger
