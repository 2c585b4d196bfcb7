package domain

import "github.com/shopspring/decimal"

// PlatformRevenue agrega as vendas de um lançamento em uma plataforma.
type PlatformRevenue struct {
	Platform   string          `json:"platform"`
	Quantity   int64           `json:"quantity"`
	NetRevenue decimal.Decimal `json:"net_revenue"`
	Streams    string          `json:"streams"` // Quantidade formatada (ex: "600.5K (600,500)")
}

// PlatformBreakdown é a receita de um lançamento agregada por plataforma,
// ordenada por receita decrescente.
type PlatformBreakdown struct {
	ReleaseTitle          string             `json:"release_title"`
	TotalRevenue          decimal.Decimal    `json:"total_revenue"`
	TotalStreams          int64              `json:"total_streams"`
	TotalStreamsFormatted string             `json:"total_streams_formatted"`
	Platforms             []*PlatformRevenue `json:"platforms"`
}
