// Package charting monta as especificações dos gráficos de barras para o
// colaborador de apresentação e renderiza prévias PNG no servidor.
package charting

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/muramets/Believe/internal/domain"
)

// CountryHoverTemplate exibe o bloco de detalhes por país no hover do
// gráfico (país na primeira linha, bloco multi-linha em seguida).
const CountryHoverTemplate = "%{x}<br>%{customdata[0]}"

// ErrNoBars indica que não há dados para desenhar a prévia PNG.
var ErrNoBars = errors.New("nenhuma barra para renderizar")

// Charter transforma os agregados do relatório em gráficos
type Charter interface {
	// PlatformChart monta a especificação do gráfico horizontal de
	// receita por plataforma
	PlatformChart(breakdown *domain.PlatformBreakdown) *domain.ChartSpec

	// CountryChart monta a especificação do gráfico vertical de receita
	// por país, com o bloco de hover como custom data
	CountryChart(breakdown *domain.CountryBreakdown) *domain.ChartSpec

	// RenderChart desenha a prévia PNG de uma especificação
	RenderChart(spec *domain.ChartSpec, w io.Writer) error
}

type Service struct{}

// NewService cria uma nova instância do serviço de gráficos
func NewService() Charter {
	return &Service{}
}

func (s *Service) PlatformChart(breakdown *domain.PlatformBreakdown) *domain.ChartSpec {
	bars := make([]*domain.ChartBar, 0, len(breakdown.Platforms))
	for _, platform := range breakdown.Platforms {
		bars = append(bars, &domain.ChartBar{
			Label: platform.Platform,
			Value: platform.NetRevenue.InexactFloat64(),
			Color: PlatformColorName(platform.Platform),
			HoverData: []string{
				fmt.Sprintf("Streams: %s", platform.Streams),
				fmt.Sprintf("Total Streams: %s", breakdown.TotalStreamsFormatted),
			},
		})
	}

	return &domain.ChartSpec{
		Title:       fmt.Sprintf("Net Revenue by Platform (Total Streams: %s)", breakdown.TotalStreamsFormatted),
		Orientation: domain.OrientationHorizontal,
		XField:      "net_revenue",
		YField:      "platform",
		Bars:        bars,
	}
}

func (s *Service) CountryChart(breakdown *domain.CountryBreakdown) *domain.ChartSpec {
	bars := make([]*domain.ChartBar, 0, len(breakdown.Countries))
	for _, country := range breakdown.Countries {
		bars = append(bars, &domain.ChartBar{
			Label: country.Country,
			Value: country.NetRevenue.InexactFloat64(),
			HoverData: []string{
				fmt.Sprintf("Streams: %s", country.Streams),
				fmt.Sprintf("Percentage Revenue: %s%%", country.PercentageRevenue.String()),
			},
			CustomData: country.PlatformDetails,
		})
	}

	return &domain.ChartSpec{
		Title:         "Net Revenue by Country",
		Orientation:   domain.OrientationVertical,
		XField:        "country",
		YField:        "net_revenue",
		HoverTemplate: CountryHoverTemplate,
		Bars:          bars,
	}
}

// RenderChart desenha a prévia PNG. O go-chart só desenha barras
// verticais; a orientação autoritativa para o front-end continua sendo a
// da especificação.
func (s *Service) RenderChart(spec *domain.ChartSpec, w io.Writer) error {
	if len(spec.Bars) == 0 {
		return ErrNoBars
	}

	bars := make([]chart.Value, 0, len(spec.Bars))
	for i, bar := range spec.Bars {
		fill := platformFillColor(bar.Label, i)

		bars = append(bars, chart.Value{
			Label: bar.Label,
			Value: bar.Value,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		})
	}

	graph := chart.BarChart{
		Title:    spec.Title,
		Height:   512,
		Width:    64 + 96*len(bars),
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return errors.Wrap(err, "erro ao renderizar o gráfico de barras")
	}

	return nil
}
