// Package ui provides semantic text formatting for zpass output.
//
// Each formatter names a kind of content and renders it according to
// terminal capabilities. With color, content is colorized. When NO_COLOR
// is set or the terminal cannot show color, text decorations are used.
//
//	ui.Code.Sprint("zpass vault add -n work")  // Commands
//	ui.Path.Sprint(".zpass/work.toml")         // File paths
//	ui.Highlight.Sprint("github.com")          // Vault names, domains
//	ui.Muted.Sprint("default")                 // Secondary text
//	ui.Succeeded("Vault created")              // "✓ Vault created"
//	ui.Failed("Vault not found")               // "✗ Vault not found"
//	ui.Hint("Run zpass vault list")            // "→ Run zpass vault list"
//
// Without color, Code uses `backticks`, Highlight uses 'single quotes'
// and Muted uses (parentheses). The other formatters are left bare.
package ui
