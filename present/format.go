package present

import (
	"fmt"
	"math"
	"strings"
)

// ============================================================================
// FORMATTING
// ============================================================================

// FormatNumber renders a value with thousand separators and two decimals,
// the way KPI cards display it: 1234567.5 → "1,234,567.50".
func FormatNumber(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	intPart := int64(v)
	decPart := int64(math.Round((v - float64(intPart)) * 100))
	if decPart >= 100 {
		intPart++
		decPart -= 100
	}

	intStr := fmt.Sprintf("%d", intPart)
	if len(intStr) > 3 {
		var parts []string
		for len(intStr) > 3 {
			parts = append([]string{intStr[len(intStr)-3:]}, parts...)
			intStr = intStr[:len(intStr)-3]
		}
		parts = append([]string{intStr}, parts...)
		intStr = strings.Join(parts, ",")
	}

	result := fmt.Sprintf("%s.%02d", intStr, decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
