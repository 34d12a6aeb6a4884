package display

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"ssui-theme/internal/notify"
)

func GetSeverityIcon(sev notify.Severity) string {
	switch sev {
	case notify.Success:
		return "✓"
	case notify.Error:
		return "✗"
	case notify.Info:
		return "ℹ"
	default:
		return "?"
	}
}

// marks the active row in lists
func GetCursor(active bool) string {
	if active {
		return "▶ "
	}
	return "  "
}

// FormatAge renders how long ago t was, relative to now.
func FormatAge(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "-"
	}

	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%dd ago", days)
	}

	return humanize.RelTime(t, now, "ago", "from now")
}
