package domain

import "github.com/shopspring/decimal"

// NoQualifyingTracksMessage é exibida quando nenhum lançamento passa do
// limiar de receita.
const NoQualifyingTracksMessage = "No tracks have earned more than 100 EUR."

// TrackEarning é uma linha da tabela de top tracks: o lançamento e a soma
// da receita líquida na moeda filtrada.
type TrackEarning struct {
	ReleaseTitle string          `json:"release_title"`
	NetRevenue   decimal.Decimal `json:"net_revenue"`
}

// TopTracksReport é a tabela de top tracks ou, quando vazia, a mensagem
// explicando a ausência de resultados.
type TopTracksReport struct {
	Tracks  []*TrackEarning `json:"tracks"`
	Message string          `json:"message,omitempty"`
}

// SelectionTotal é a receita somada dos lançamentos selecionados na tabela.
type SelectionTotal struct {
	ReleaseTitles []string        `json:"release_titles"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}
