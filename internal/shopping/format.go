package shopping

import (
	"fmt"
	"strings"
)

// FormatText renders the list as plain text suitable for sharing or
// printing. Empty categories are omitted.
func FormatText(list List) string {
	var sb strings.Builder
	sb.WriteString("🛒 SHOPPING LIST 🛒\n\n")

	for _, bucket := range Buckets {
		items := list[bucket]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&sb, "== %s ==\n", strings.ToUpper(bucket))
		for _, item := range items {
			line := "- " + item.Name
			if item.Quantity > 0 && item.Unit != "" {
				line += fmt.Sprintf(" (%s %s)", trimFloat(item.Quantity), item.Unit)
			} else if item.Count > 1 {
				line += fmt.Sprintf(" (%d dishes)", item.Count)
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// trimFloat prints quantities without trailing zeros (250, 1.5).
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
