package reporting

import (
	"github.com/muramets/Believe/internal/domain"
)

// Reporter define as agregações derivadas de um extrato de royalties.
// Tudo é recalculado a cada chamada sobre o subconjunto filtrado; nenhuma
// linha agregada é reaproveitada entre requisições.
type Reporter interface {
	// TopTracks agrega a receita por lançamento na moeda configurada,
	// descarta lançamentos abaixo do limiar e ordena por receita
	TopTracks(records []*domain.SaleRecord) *domain.TopTracksReport

	// SelectionTotal soma a receita dos lançamentos selecionados na
	// tabela de top tracks
	SelectionTotal(records []*domain.SaleRecord, releaseTitles []string) *domain.SelectionTotal

	// PlatformBreakdown agrega receita e streams por plataforma para um
	// lançamento específico
	PlatformBreakdown(records []*domain.SaleRecord, releaseTitle string) *domain.PlatformBreakdown

	// CountryBreakdown agrega receita e streams por país/região para um
	// lançamento específico, com participação percentual e bloco de hover
	CountryBreakdown(records []*domain.SaleRecord, releaseTitle string) *domain.CountryBreakdown
}
