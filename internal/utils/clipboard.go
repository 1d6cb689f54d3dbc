package utils

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard places text on the system clipboard.
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
