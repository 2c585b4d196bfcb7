package domain

import "github.com/shopspring/decimal"

// CountryRevenue agrega as vendas de um lançamento em um país/região.
type CountryRevenue struct {
	Country           string          `json:"country"`
	Quantity          int64           `json:"quantity"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	PercentageRevenue decimal.Decimal `json:"percentage_revenue"` // Participação sobre os países mantidos, 2 casas
	Streams           string          `json:"streams"`
	PlatformDetails   string          `json:"platform_details"` // Bloco de hover multi-linha separado por <br>
}

// CountryBreakdown é a receita de um lançamento agregada por país/região,
// ordenada por receita decrescente e limitada aos maiores países.
type CountryBreakdown struct {
	ReleaseTitle string            `json:"release_title"`
	TotalRevenue decimal.Decimal   `json:"total_revenue"` // Soma sobre os países mantidos
	Countries    []*CountryRevenue `json:"countries"`
}
