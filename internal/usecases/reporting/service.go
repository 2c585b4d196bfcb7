// Package reporting implementa o pipeline de agregação do extrato:
// top tracks por receita, detalhamento por plataforma e por país/região.
package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/muramets/Believe/internal/config"
	"github.com/muramets/Believe/internal/domain"
	"github.com/muramets/Believe/pkg/utils"
)

type Service struct {
	cfg *config.Config
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(cfg *config.Config) Reporter {
	return &Service{cfg: cfg}
}

func (s *Service) TopTracks(records []*domain.SaleRecord) *domain.TopTracksReport {
	threshold := decimal.NewFromFloat(s.cfg.Analysis.RevenueThreshold)

	// Somente vendas na moeda configurada entram no ranking
	revenueByRelease := make(map[string]decimal.Decimal)
	for _, record := range records {
		if record.Currency != s.cfg.Analysis.Currency {
			continue
		}
		revenueByRelease[record.ReleaseTitle] = revenueByRelease[record.ReleaseTitle].Add(record.NetRevenue)
	}

	tracks := make([]*domain.TrackEarning, 0, len(revenueByRelease))
	for title, revenue := range revenueByRelease {
		if revenue.LessThan(threshold) {
			continue
		}
		tracks = append(tracks, &domain.TrackEarning{
			ReleaseTitle: title,
			NetRevenue:   revenue,
		})
	}

	sort.Slice(tracks, func(i, j int) bool {
		if cmp := tracks[i].NetRevenue.Cmp(tracks[j].NetRevenue); cmp != 0 {
			return cmp > 0
		}
		return tracks[i].ReleaseTitle < tracks[j].ReleaseTitle
	})

	report := &domain.TopTracksReport{Tracks: tracks}
	if len(tracks) == 0 {
		report.Message = domain.NoQualifyingTracksMessage
	}

	return report
}

func (s *Service) SelectionTotal(records []*domain.SaleRecord, releaseTitles []string) *domain.SelectionTotal {
	// A seleção opera sobre a tabela de top tracks: lançamentos fora dela
	// (abaixo do limiar ou em outra moeda) não contribuem para o total
	topTracks := s.TopTracks(records)

	selected := make(map[string]bool, len(releaseTitles))
	for _, title := range releaseTitles {
		selected[title] = true
	}

	total := decimal.Zero
	for _, track := range topTracks.Tracks {
		if selected[track.ReleaseTitle] {
			total = total.Add(track.NetRevenue)
		}
	}

	return &domain.SelectionTotal{
		ReleaseTitles: releaseTitles,
		TotalEarnings: total,
	}
}

func (s *Service) PlatformBreakdown(records []*domain.SaleRecord, releaseTitle string) *domain.PlatformBreakdown {
	releaseRecords := filterByRelease(records, releaseTitle)

	type aggregate struct {
		quantity int64
		revenue  decimal.Decimal
	}

	byPlatform := make(map[string]*aggregate)
	totalRevenue := decimal.Zero
	var totalStreams int64

	for _, record := range releaseRecords {
		agg, ok := byPlatform[record.Platform]
		if !ok {
			agg = &aggregate{}
			byPlatform[record.Platform] = agg
		}
		agg.quantity += record.Quantity
		agg.revenue = agg.revenue.Add(record.NetRevenue)

		totalStreams += record.Quantity
		totalRevenue = totalRevenue.Add(record.NetRevenue)
	}

	platforms := make([]*domain.PlatformRevenue, 0, len(byPlatform))
	for platform, agg := range byPlatform {
		platforms = append(platforms, &domain.PlatformRevenue{
			Platform:   platform,
			Quantity:   agg.quantity,
			NetRevenue: agg.revenue,
			Streams:    utils.FormatQuantity(agg.quantity),
		})
	}

	sort.Slice(platforms, func(i, j int) bool {
		if cmp := platforms[i].NetRevenue.Cmp(platforms[j].NetRevenue); cmp != 0 {
			return cmp > 0
		}
		return platforms[i].Platform < platforms[j].Platform
	})

	return &domain.PlatformBreakdown{
		ReleaseTitle:          releaseTitle,
		TotalRevenue:          totalRevenue,
		TotalStreams:          totalStreams,
		TotalStreamsFormatted: utils.FormatQuantity(totalStreams),
		Platforms:             platforms,
	}
}

func (s *Service) CountryBreakdown(records []*domain.SaleRecord, releaseTitle string) *domain.CountryBreakdown {
	releaseRecords := filterByRelease(records, releaseTitle)

	type aggregate struct {
		quantity int64
		revenue  decimal.Decimal
	}

	byCountry := make(map[string]*aggregate)
	for _, record := range releaseRecords {
		agg, ok := byCountry[record.Country]
		if !ok {
			agg = &aggregate{}
			byCountry[record.Country] = agg
		}
		agg.quantity += record.Quantity
		agg.revenue = agg.revenue.Add(record.NetRevenue)
	}

	countries := make([]*domain.CountryRevenue, 0, len(byCountry))
	for country, agg := range byCountry {
		countries = append(countries, &domain.CountryRevenue{
			Country:    country,
			Quantity:   agg.quantity,
			NetRevenue: agg.revenue,
			Streams:    utils.FormatQuantity(agg.quantity),
		})
	}

	sort.Slice(countries, func(i, j int) bool {
		if cmp := countries[i].NetRevenue.Cmp(countries[j].NetRevenue); cmp != 0 {
			return cmp > 0
		}
		return countries[i].Country < countries[j].Country
	})

	if len(countries) > s.cfg.Analysis.TopCountries {
		countries = countries[:s.cfg.Analysis.TopCountries]
	}

	// A participação percentual é calculada sobre os países mantidos,
	// não sobre a receita total do lançamento
	totalKept := decimal.Zero
	for _, country := range countries {
		totalKept = totalKept.Add(country.NetRevenue)
	}

	hundred := decimal.NewFromInt(100)
	for _, country := range countries {
		if !totalKept.IsZero() {
			country.PercentageRevenue = country.NetRevenue.Mul(hundred).Div(totalKept).Round(2)
		}
		country.PlatformDetails = s.buildPlatformDetails(releaseRecords, country)
	}

	return &domain.CountryBreakdown{
		ReleaseTitle: releaseTitle,
		TotalRevenue: totalKept,
		Countries:    countries,
	}
}

// buildPlatformDetails monta o bloco de hover de um país: cabeçalho com os
// agregados do país e até N linhas de venda ordenadas por receita. As
// linhas são os registros brutos do extrato, então uma mesma plataforma
// pode aparecer mais de uma vez (um registro por mês de venda).
func (s *Service) buildPlatformDetails(releaseRecords []*domain.SaleRecord, country *domain.CountryRevenue) string {
	countryRecords := make([]*domain.SaleRecord, 0)
	for _, record := range releaseRecords {
		if record.Country == country.Country {
			countryRecords = append(countryRecords, record)
		}
	}

	sort.Slice(countryRecords, func(i, j int) bool {
		return countryRecords[i].NetRevenue.Cmp(countryRecords[j].NetRevenue) > 0
	})

	if len(countryRecords) > s.cfg.Analysis.TopPlatformsPerCountry {
		countryRecords = countryRecords[:s.cfg.Analysis.TopPlatformsPerCountry]
	}

	details := make([]string, 0, len(countryRecords))
	for _, record := range countryRecords {
		details = append(details, fmt.Sprintf(
			"%s: %s (€%s per stream, €%s total). Sales Month: %s",
			record.Platform,
			humanize.Comma(record.Quantity),
			record.UnitPrice.StringFixed(6),
			record.NetRevenue.StringFixed(2),
			utils.FormatSalesMonth(record.SalesMonth),
		))
	}

	header := fmt.Sprintf(
		"€%s<br>%s%%<br>%s streams<br><br>",
		country.NetRevenue.StringFixed(2),
		country.PercentageRevenue.String(),
		country.Streams,
	)

	return header + strings.Join(details, "<br>")
}

func filterByRelease(records []*domain.SaleRecord, releaseTitle string) []*domain.SaleRecord {
	filtered := make([]*domain.SaleRecord, 0)
	for _, record := range records {
		if record.ReleaseTitle == releaseTitle {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
