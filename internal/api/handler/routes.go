package handler

import (
	"net/http"

	"github.com/muramets/Believe/internal/api/handler/router"
	"github.com/muramets/Believe/internal/config"
	"github.com/muramets/Believe/internal/usecases/charting"
	"github.com/muramets/Believe/internal/usecases/ingesting"
	"github.com/muramets/Believe/internal/usecases/reporting"

	"github.com/muramets/Believe/infrastructure/statement"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Statements retorna as rotas de ciclo de vida dos extratos
func Statements(
	cfg *config.Config,
	ingester ingesting.Ingester,
	reporter reporting.Reporter,
	statementRepo statement.Repository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/statements",
			Method:  http.MethodPost,
			Handler: UploadStatement(cfg, ingester, reporter, statementRepo),
		},
		{
			Path:    "/v1/statements/:id",
			Method:  http.MethodGet,
			Handler: GetStatement(statementRepo),
		},
		{
			Path:    "/v1/statements/:id",
			Method:  http.MethodDelete,
			Handler: DeleteStatement(statementRepo),
		},
	}
}

// Reports retorna as rotas de relatórios derivados de um extrato
func Reports(
	reporter reporting.Reporter,
	charter charting.Charter,
	statementRepo statement.Repository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/statements/:id/top-tracks",
			Method:  http.MethodGet,
			Handler: GetTopTracks(reporter, statementRepo),
		},
		{
			Path:    "/v1/statements/:id/top-tracks/selection",
			Method:  http.MethodPost,
			Handler: GetSelectionTotal(reporter, statementRepo),
		},
		{
			Path:    "/v1/statements/:id/report",
			Method:  http.MethodGet,
			Handler: GetReleaseReport(reporter, charter, statementRepo),
		},
		{
			Path:    "/v1/statements/:id/charts/platforms.png",
			Method:  http.MethodGet,
			Handler: GetPlatformChartPNG(reporter, charter, statementRepo),
		},
		{
			Path:    "/v1/statements/:id/charts/countries.png",
			Method:  http.MethodGet,
			Handler: GetCountryChartPNG(reporter, charter, statementRepo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
