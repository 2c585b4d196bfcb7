package reporting

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muramets/Believe/internal/config"
	"github.com/muramets/Believe/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.Analysis{
			Currency:               "EUR",
			RevenueThreshold:       100,
			TopCountries:           30,
			TopPlatformsPerCountry: 20,
		},
	}
}

func saleRecord(title, platform, country string, quantity int64, unitPrice, netRevenue, currency, salesMonth string) *domain.SaleRecord {
	return &domain.SaleRecord{
		ReleaseTitle: title,
		Platform:     platform,
		Country:      country,
		Quantity:     quantity,
		UnitPrice:    decimal.RequireFromString(unitPrice),
		NetRevenue:   decimal.RequireFromString(netRevenue),
		Currency:     currency,
		SalesMonth:   salesMonth,
	}
}

func TestTopTracks(t *testing.T) {
	tests := []struct {
		name     string
		records  []*domain.SaleRecord
		validate func(t *testing.T, report *domain.TopTracksReport)
	}{
		{
			name: "Agrupa por lançamento e ordena por receita decrescente",
			records: []*domain.SaleRecord{
				saleRecord("A", "Spotify", "DE", 500, "0.004", "2.0", "EUR", "2024/01/01"),
				saleRecord("A", "Spotify", "DE", 600000, "0.003", "1800.0", "EUR", "2024-02-01"),
				saleRecord("B", "TikTok", "US", 90000, "0.002", "180.0", "EUR", "2024-02-01"),
			},
			validate: func(t *testing.T, report *domain.TopTracksReport) {
				require.Len(t, report.Tracks, 2)
				assert.Empty(t, report.Message)

				assert.Equal(t, "A", report.Tracks[0].ReleaseTitle)
				assert.True(t, report.Tracks[0].NetRevenue.Equal(decimal.RequireFromString("1802.0")))
				assert.Equal(t, "B", report.Tracks[1].ReleaseTitle)
			},
		},
		{
			name: "Descarta vendas fora da moeda configurada",
			records: []*domain.SaleRecord{
				saleRecord("A", "Spotify", "DE", 500, "0.004", "150.0", "EUR", "2024/01/01"),
				saleRecord("A", "Spotify", "BR", 900, "0.004", "900.0", "USD", "2024/01/01"),
			},
			validate: func(t *testing.T, report *domain.TopTracksReport) {
				require.Len(t, report.Tracks, 1)
				assert.True(t, report.Tracks[0].NetRevenue.Equal(decimal.RequireFromString("150.0")))
			},
		},
		{
			name: "Descarta lançamentos abaixo do limiar de receita",
			records: []*domain.SaleRecord{
				saleRecord("A", "Spotify", "DE", 500, "0.004", "99.99", "EUR", "2024/01/01"),
				saleRecord("B", "Spotify", "DE", 500, "0.004", "100.0", "EUR", "2024/01/01"),
			},
			validate: func(t *testing.T, report *domain.TopTracksReport) {
				require.Len(t, report.Tracks, 1)
				assert.Equal(t, "B", report.Tracks[0].ReleaseTitle)
			},
		},
		{
			name:    "Sem lançamentos qualificados devolve mensagem",
			records: []*domain.SaleRecord{},
			validate: func(t *testing.T, report *domain.TopTracksReport) {
				assert.Empty(t, report.Tracks)
				assert.Equal(t, domain.NoQualifyingTracksMessage, report.Message)
			},
		},
	}

	service := NewService(testConfig())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, service.TopTracks(tt.records))
		})
	}
}

func TestSelectionTotal(t *testing.T) {
	records := []*domain.SaleRecord{
		saleRecord("A", "Spotify", "DE", 500, "0.004", "200.0", "EUR", "2024/01/01"),
		saleRecord("B", "TikTok", "US", 90000, "0.002", "180.0", "EUR", "2024-02-01"),
		saleRecord("C", "Deezer", "FR", 100, "0.004", "50.0", "EUR", "2024-02-01"),
	}

	service := NewService(testConfig())

	tests := []struct {
		name          string
		releaseTitles []string
		expected      string
	}{
		{
			name:          "Soma apenas os lançamentos selecionados",
			releaseTitles: []string{"A", "B"},
			expected:      "380",
		},
		{
			name:          "Lançamentos abaixo do limiar não contribuem",
			releaseTitles: []string{"A", "C"},
			expected:      "200",
		},
		{
			name:          "Seleção vazia soma zero",
			releaseTitles: []string{},
			expected:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := service.SelectionTotal(records, tt.releaseTitles)
			assert.Equal(t, tt.releaseTitles, total.ReleaseTitles)
			assert.True(t, total.TotalEarnings.Equal(decimal.RequireFromString(tt.expected)),
				"esperado %s, obtido %s", tt.expected, total.TotalEarnings)
		})
	}
}

func TestPlatformBreakdown(t *testing.T) {
	records := []*domain.SaleRecord{
		saleRecord("A", "Spotify", "DE", 500, "0.004", "2.0", "EUR", "2024/01/01"),
		saleRecord("A", "Spotify", "DE", 600000, "0.003", "1800.0", "EUR", "2024-02-01"),
		saleRecord("A", "TikTok", "US", 90000, "0.002", "180.0", "EUR", "2024-02-01"),
		saleRecord("B", "Deezer", "FR", 100, "0.004", "50.0", "EUR", "2024-02-01"),
	}

	service := NewService(testConfig())

	breakdown := service.PlatformBreakdown(records, "A")

	assert.Equal(t, "A", breakdown.ReleaseTitle)
	assert.True(t, breakdown.TotalRevenue.Equal(decimal.RequireFromString("1982.0")))
	assert.Equal(t, int64(690500), breakdown.TotalStreams)
	assert.Equal(t, "690.5K (690,500)", breakdown.TotalStreamsFormatted)

	require.Len(t, breakdown.Platforms, 2)
	assert.Equal(t, "Spotify", breakdown.Platforms[0].Platform)
	assert.Equal(t, int64(600500), breakdown.Platforms[0].Quantity)
	assert.True(t, breakdown.Platforms[0].NetRevenue.Equal(decimal.RequireFromString("1802.0")))
	assert.Equal(t, "600.5K (600,500)", breakdown.Platforms[0].Streams)
	assert.Equal(t, "TikTok", breakdown.Platforms[1].Platform)
}

func TestPlatformBreakdown_LancamentoDesconhecido(t *testing.T) {
	service := NewService(testConfig())

	breakdown := service.PlatformBreakdown(nil, "Inexistente")

	assert.Empty(t, breakdown.Platforms)
	assert.True(t, breakdown.TotalRevenue.IsZero())
	assert.Equal(t, int64(0), breakdown.TotalStreams)
}

func TestCountryBreakdown(t *testing.T) {
	records := []*domain.SaleRecord{
		saleRecord("A", "Spotify", "DE", 500, "0.004", "2.0", "EUR", "2024/01/01"),
		saleRecord("A", "Spotify", "DE", 600000, "0.003", "1800.0", "EUR", "2024-02-01"),
		saleRecord("A", "TikTok", "US", 90000, "0.002", "180.0", "EUR", "2024-02-01"),
		saleRecord("B", "Deezer", "FR", 100, "0.004", "50.0", "EUR", "2024-02-01"),
	}

	service := NewService(testConfig())

	breakdown := service.CountryBreakdown(records, "A")

	assert.Equal(t, "A", breakdown.ReleaseTitle)
	assert.True(t, breakdown.TotalRevenue.Equal(decimal.RequireFromString("1982.0")))

	require.Len(t, breakdown.Countries, 2)
	assert.Equal(t, "DE", breakdown.Countries[0].Country)
	assert.Equal(t, "US", breakdown.Countries[1].Country)

	// Participações calculadas sobre os países mantidos somam 100%
	assert.Equal(t, "90.92", breakdown.Countries[0].PercentageRevenue.String())
	assert.Equal(t, "9.08", breakdown.Countries[1].PercentageRevenue.String())

	hover := breakdown.Countries[0].PlatformDetails
	assert.True(t, strings.HasPrefix(hover, "€1802.00<br>90.92%<br>600.5K (600,500) streams<br><br>"), hover)
	assert.Contains(t, hover, "Spotify: 600,000 (€0.003000 per stream, €1800.00 total). Sales Month: February 2024")
	assert.Contains(t, hover, "Spotify: 500 (€0.004000 per stream, €2.00 total). Sales Month: January 2024")

	// As linhas de venda aparecem em ordem decrescente de receita
	assert.Less(t, strings.Index(hover, "€1800.00 total"), strings.Index(hover, "€2.00 total"))
}

func TestCountryBreakdown_LimiteDePaises(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.TopCountries = 2

	records := []*domain.SaleRecord{
		saleRecord("A", "Spotify", "DE", 100, "0.004", "300.0", "EUR", "2024/01/01"),
		saleRecord("A", "Spotify", "US", 100, "0.004", "200.0", "EUR", "2024/01/01"),
		saleRecord("A", "Spotify", "FR", 100, "0.004", "100.0", "EUR", "2024/01/01"),
	}

	service := NewService(cfg)

	breakdown := service.CountryBreakdown(records, "A")

	require.Len(t, breakdown.Countries, 2)
	assert.Equal(t, "DE", breakdown.Countries[0].Country)
	assert.Equal(t, "US", breakdown.Countries[1].Country)

	// A receita total e as participações consideram apenas os países mantidos
	assert.True(t, breakdown.TotalRevenue.Equal(decimal.RequireFromString("500.0")))
	assert.Equal(t, "60", breakdown.Countries[0].PercentageRevenue.String())
	assert.Equal(t, "40", breakdown.Countries[1].PercentageRevenue.String())
}

func TestCountryBreakdown_LimiteDeLinhasNoHover(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.TopPlatformsPerCountry = 3

	records := make([]*domain.SaleRecord, 0, 5)
	for i := 1; i <= 5; i++ {
		records = append(records, saleRecord(
			"A", fmt.Sprintf("Platform%d", i), "DE",
			int64(i*100), "0.004", fmt.Sprintf("%d.0", i*10), "EUR", "2024/01/01",
		))
	}

	service := NewService(cfg)

	breakdown := service.CountryBreakdown(records, "A")
	require.Len(t, breakdown.Countries, 1)

	hover := breakdown.Countries[0].PlatformDetails
	_, body, found := strings.Cut(hover, "<br><br>")
	require.True(t, found)

	// Somente as N maiores linhas de venda entram no hover
	lines := strings.Split(body, "<br>")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Platform5")
	assert.Contains(t, lines[2], "Platform3")
}

func TestCountryBreakdown_MesDesconhecido(t *testing.T) {
	records := []*domain.SaleRecord{
		saleRecord("A", "Spotify", "DE", 500, "0.004", "150.0", "EUR", "15-01-2024"),
	}

	service := NewService(testConfig())

	breakdown := service.CountryBreakdown(records, "A")
	require.Len(t, breakdown.Countries, 1)
	assert.Contains(t, breakdown.Countries[0].PlatformDetails, "Sales Month: Unknown Date")
}
