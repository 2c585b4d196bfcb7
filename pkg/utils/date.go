package utils

import "time"

// UnknownDate é o texto exibido quando o mês de venda não pôde ser interpretado.
const UnknownDate = "Unknown Date"

// salesMonthLayouts são os formatos conhecidos da coluna "Sales Month",
// na ordem em que devem ser tentados.
var salesMonthLayouts = []string{
	"2006/01/02",
	"2006-01-02",
}

// FormatSalesMonth converte o mês de venda bruto ("2024/01/15" ou
// "2024-01-15") para o nome completo do mês com o ano ("January 2024").
// Datas fora dos formatos conhecidos nunca quebram o pipeline.
func FormatSalesMonth(raw string) string {
	for _, layout := range salesMonthLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date.Format("January 2006")
		}
	}

	return UnknownDate
}
