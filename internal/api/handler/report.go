package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/muramets/Believe/infrastructure/statement"
	"github.com/muramets/Believe/internal/domain"
	"github.com/muramets/Believe/internal/usecases/charting"
	"github.com/muramets/Believe/internal/usecases/reporting"
	"github.com/muramets/Believe/pkg/apiErrors"
	"github.com/muramets/Believe/pkg/log"
)

// SelectionRequest é o corpo da soma de lançamentos selecionados
type SelectionRequest struct {
	ReleaseTitles []string `json:"release_titles"`
}

// ReleaseReport reúne tudo que a interface mostra para um lançamento:
// receita total, detalhamentos e as especificações dos dois gráficos.
type ReleaseReport struct {
	ReleaseTitle  string                    `json:"release_title"`
	TotalRevenue  decimal.Decimal           `json:"total_revenue"`
	Platforms     *domain.PlatformBreakdown `json:"platforms"`
	Countries     *domain.CountryBreakdown  `json:"countries"`
	PlatformChart *domain.ChartSpec         `json:"platform_chart"`
	CountryChart  *domain.ChartSpec         `json:"country_chart"`
}

// GetTopTracks devolve a tabela de top tracks do extrato
func GetTopTracks(reporter reporting.Reporter, statementRepo statement.Repository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stmt := findStatement(w, r, statementRepo)
		if stmt == nil {
			return
		}

		respondJSON(w, http.StatusOK, reporter.TopTracks(stmt.Records))
	})
}

// GetSelectionTotal soma a receita dos lançamentos selecionados
func GetSelectionTotal(reporter reporting.Reporter, statementRepo statement.Repository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stmt := findStatement(w, r, statementRepo)
		if stmt == nil {
			return
		}

		var request SelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("reports: invalid selection body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if len(request.ReleaseTitles) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum lançamento selecionado", nil)
			return
		}

		respondJSON(w, http.StatusOK, reporter.SelectionTotal(stmt.Records, request.ReleaseTitles))
	})
}

// GetReleaseReport devolve o relatório completo de um lançamento.
// Um título sem nenhuma linha no extrato produz tabelas vazias, não erro.
func GetReleaseReport(
	reporter reporting.Reporter,
	charter charting.Charter,
	statementRepo statement.Repository,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stmt := findStatement(w, r, statementRepo)
		if stmt == nil {
			return
		}

		releaseTitle := r.URL.Query().Get("release_title")
		if releaseTitle == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o parâmetro release_title", nil)
			return
		}

		logger.WithFields(log.Fields{
			"statement_id":  stmt.ID,
			"release_title": releaseTitle,
		}).Debug("reports: building release report")

		platforms := reporter.PlatformBreakdown(stmt.Records, releaseTitle)
		countries := reporter.CountryBreakdown(stmt.Records, releaseTitle)

		report := &ReleaseReport{
			ReleaseTitle:  releaseTitle,
			TotalRevenue:  platforms.TotalRevenue,
			Platforms:     platforms,
			Countries:     countries,
			PlatformChart: charter.PlatformChart(platforms),
			CountryChart:  charter.CountryChart(countries),
		}

		respondJSON(w, http.StatusOK, report)
	})
}
