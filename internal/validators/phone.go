package validators

import "strings"

// FormatPhone aplica a máscara brasileira "(DD) NNNNN-NNNN" aos dígitos
// digitados. Entradas parciais recebem a máscara parcial e dígitos além
// do 11º são descartados.
func FormatPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n := b.String()

	switch {
	case len(n) <= 2:
		return n
	case len(n) <= 7:
		return "(" + n[:2] + ") " + n[2:]
	}

	end := len(n)
	if end > 11 {
		end = 11
	}
	return "(" + n[:2] + ") " + n[2:7] + "-" + n[7:end]
}
