package catalog

import (
	"strconv"
	"strings"
)

// DurationMinutes converte durações livres ("2h", "1h30", "45min") em minutos.
// Texto não reconhecido vale 0.
func DurationMinutes(duration string) int {
	d := strings.ToLower(strings.Join(strings.Fields(duration), ""))

	if strings.Contains(d, "h") {
		parts := strings.SplitN(d, "h", 2)
		hours := leadingInt(parts[0])
		minutes := 0
		if len(parts) > 1 && parts[1] != "" {
			minutes = leadingInt(strings.Replace(parts[1], "min", "", 1))
		}
		return hours*60 + minutes
	}

	if strings.Contains(d, "min") {
		return leadingInt(strings.Replace(d, "min", "", 1))
	}

	return 0
}

func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
