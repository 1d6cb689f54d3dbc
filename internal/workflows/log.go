package workflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/enchanted-engineering/zpass/internal/audit"
	kerrors "github.com/enchanted-engineering/zpass/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// Vault filters entries by vault name.
	Vault string

	// Operations filters entries by operation (comma-separated).
	Operations string

	// Since filters entries on or after this date (YYYY-MM-DD).
	Since string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	Entries []audit.Entry

	// Total is the number of entries before filtering.
	Total int
}

// Log reads and filters the audit log. A missing log yields no entries.
//
// Returns ErrInvalidDateFormat if Since is not a valid date.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var since time.Time
	if opts.Since != "" {
		t, err := time.Parse("2006-01-02", opts.Since)
		if err != nil {
			return nil, fmt.Errorf("%w: use YYYY-MM-DD for --since", kerrors.ErrInvalidDateFormat)
		}
		since = t
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	result := &LogResult{Total: len(entries)}

	var ops map[string]bool
	if opts.Operations != "" {
		ops = make(map[string]bool)
		for _, op := range strings.Split(opts.Operations, ",") {
			ops[strings.ToLower(strings.TrimSpace(op))] = true
		}
	}

	var filtered []audit.Entry
	for _, e := range entries {
		if opts.Vault != "" && e.Vault != opts.Vault {
			continue
		}
		if ops != nil && !ops[strings.ToLower(e.Operation)] {
			continue
		}
		if !since.IsZero() {
			t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
			if err != nil || t.Before(since) {
				continue
			}
		}
		filtered = append(filtered, e)
	}

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[len(filtered)-opts.Limit:]
	}
	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	result.Entries = filtered
	return result, nil
}

// FormatDateTime renders an entry timestamp as "YYYY-MM-DD HH:MM:SS".
func FormatDateTime(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDetails renders the vault, domain and username of an entry.
func FormatDetails(e audit.Entry) string {
	var parts []string
	if e.Vault != "" {
		parts = append(parts, "vault="+e.Vault)
	}
	if e.Domain != "" {
		parts = append(parts, "domain="+e.Domain)
	}
	if e.Username != "" {
		parts = append(parts, "username="+e.Username)
	}
	if e.Length != 0 {
		parts = append(parts, fmt.Sprintf("length=%d", e.Length))
	}
	return strings.Join(parts, " ")
}
