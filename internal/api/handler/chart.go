package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/muramets/Believe/infrastructure/statement"
	"github.com/muramets/Believe/internal/domain"
	"github.com/muramets/Believe/internal/usecases/charting"
	"github.com/muramets/Believe/internal/usecases/reporting"
	"github.com/muramets/Believe/pkg/apiErrors"
	"github.com/muramets/Believe/pkg/log"
)

// GetPlatformChartPNG renderiza a prévia PNG da receita por plataforma
func GetPlatformChartPNG(
	reporter reporting.Reporter,
	charter charting.Charter,
	statementRepo statement.Repository,
) http.Handler {
	return chartPNG(statementRepo, func(records []*domain.SaleRecord, releaseTitle string) *domain.ChartSpec {
		return charter.PlatformChart(reporter.PlatformBreakdown(records, releaseTitle))
	}, charter)
}

// GetCountryChartPNG renderiza a prévia PNG da receita por país
func GetCountryChartPNG(
	reporter reporting.Reporter,
	charter charting.Charter,
	statementRepo statement.Repository,
) http.Handler {
	return chartPNG(statementRepo, func(records []*domain.SaleRecord, releaseTitle string) *domain.ChartSpec {
		return charter.CountryChart(reporter.CountryBreakdown(records, releaseTitle))
	}, charter)
}

func chartPNG(
	statementRepo statement.Repository,
	buildSpec func(records []*domain.SaleRecord, releaseTitle string) *domain.ChartSpec,
	charter charting.Charter,
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

		spec := buildSpec(stmt.Records, releaseTitle)

		// Renderiza em memória para não misturar bytes de imagem com uma
		// resposta de erro
		var buffer bytes.Buffer
		if err := charter.RenderChart(spec, &buffer); err != nil {
			// Sem dados não é erro: o gráfico simplesmente não existe
			if errors.Is(err, charting.ErrNoBars) {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			logger.WithError(err).WithFields(log.Fields{
				"statement_id":  stmt.ID,
				"release_title": releaseTitle,
			}).Error("charts: failed to render chart")

			apiErrors.WriteError(w, apiErrors.ErrChartRendering, "Erro ao renderizar o gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if _, err := buffer.WriteTo(w); err != nil {
			logger.WithError(err).Error("charts: failed to write chart response")
		}
	})
}
