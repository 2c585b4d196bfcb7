// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

// SaleRecord representa uma linha do extrato de royalties: uma venda (ou
// bloco de streams) de um lançamento em uma plataforma e país no mês.
// Os campos são somente leitura após a ingestão.
type SaleRecord struct {
	ReleaseTitle string          `json:"release_title"`
	Platform     string          `json:"platform"`
	Country      string          `json:"country"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	NetRevenue   decimal.Decimal `json:"net_revenue"`
	Currency     string          `json:"currency"`
	SalesMonth   string          `json:"sales_month"` // Texto bruto da planilha; formatado só na exibição
}
