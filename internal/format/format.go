// Package format holds the pure display formatters shared by the tooltip,
// clipboard and settings components.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes &, < and > for safe interpolation into markup.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// EscapeAttr escapes EscapeHTML's set plus both quote characters so the
// result is safe inside an HTML attribute value.
func EscapeAttr(s string) string {
	return attrReplacer.Replace(s)
}

var byteUnits = []string{"B", "KB", "MB", "GB"}

// Bytes renders a byte count with base-1024 scaling and at most one decimal
// place, with a trailing .0 suppressed. Non-positive counts render as "0 B".
func Bytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	v := float64(n)
	unit := 0
	for v >= 1024 && unit < len(byteUnits)-1 {
		v /= 1024
		unit++
	}
	v = math.Round(v*10) / 10
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[unit]
}

// RelativeTime renders how long ago t was relative to now. Bands are
// inclusive at their lower edge: exactly one hour is "1h ago" and exactly
// one day is "yesterday". Anything older than 30 days falls back to a
// calendar date.
func RelativeTime(t, now time.Time) string {
	elapsed := now.Sub(t)
	if elapsed < time.Minute {
		return "just now"
	}
	if elapsed < time.Hour {
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	}
	if elapsed < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	}
	days := int(elapsed.Hours() / 24)
	if days == 1 {
		return "yesterday"
	}
	if days < 7 {
		return fmt.Sprintf("%d days ago", days)
	}
	if days < 30 {
		return fmt.Sprintf("%d weeks ago", days/7)
	}
	return t.Format("Jan 2, 2006")
}
