package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatQuantity formata uma quantidade de streams de forma legível.
// Abaixo de mil o valor é exibido como está; a partir daí usamos o sufixo
// da próxima escala com o valor completo entre parênteses.
func FormatQuantity(value int64) string {
	switch {
	case value < 1_000:
		return fmt.Sprintf("%d", value)
	case value < 1_000_000:
		return fmt.Sprintf("%.1fK (%s)", float64(value)/1e3, humanize.Comma(value))
	case value < 1_000_000_000:
		return fmt.Sprintf("%.1fM (%s)", float64(value)/1e6, humanize.Comma(value))
	default:
		return fmt.Sprintf("%.1fB (%s)", float64(value)/1e9, humanize.Comma(value))
	}
}
