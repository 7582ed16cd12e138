package display

import (
	"fmt"
	"strings"
)

// listPreviewLen caps how many list elements render before truncation.
const listPreviewLen = 3

// FormatValue formats a property value for display. A nil value renders as
// an empty string, never as a "None" or "null" literal. Lists join with
// commas and truncate past three elements. Specific gravity renders with two
// decimals; other numerics render with up to three decimals, trailing zeros
// trimmed, so an integral hardness shows no decimal point.
func FormatValue(key string, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return joinList(v)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(item)
		}
		return joinList(items)
	case float64:
		return formatNumber(key, v)
	case float32:
		return formatNumber(key, float64(v))
	case int:
		return formatNumber(key, float64(v))
	case int64:
		return formatNumber(key, float64(v))
	default:
		return fmt.Sprint(value)
	}
}

func joinList(items []string) string {
	if len(items) <= listPreviewLen {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:listPreviewLen], ", ") + "..."
}

func formatNumber(key string, f float64) string {
	if key == "sg" {
		return fmt.Sprintf("%.2f", f)
	}
	s := fmt.Sprintf("%.3f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
