package charting

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muramets/Believe/internal/domain"
)

func TestPlatformColorName(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		expected string
	}{
		{
			name:     "Spotify é verde",
			platform: "Spotify",
			expected: "green",
		},
		{
			name:     "TikTok é rosa",
			platform: "TikTok",
			expected: "pink",
		},
		{
			name:     "Variantes do YouTube são vermelhas",
			platform: "YouTube Official Content",
			expected: "red",
		},
		{
			name:     "Plataforma desconhecida recebe cor automática",
			platform: "Plataforma Nova",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlatformColorName(tt.platform))
		})
	}
}

func TestPlatformChart(t *testing.T) {
	breakdown := &domain.PlatformBreakdown{
		ReleaseTitle:          "A",
		TotalRevenue:          decimal.RequireFromString("1982.0"),
		TotalStreams:          690500,
		TotalStreamsFormatted: "690.5K (690,500)",
		Platforms: []*domain.PlatformRevenue{
			{Platform: "Spotify", Quantity: 600500, NetRevenue: decimal.RequireFromString("1802.0"), Streams: "600.5K (600,500)"},
			{Platform: "TikTok", Quantity: 90000, NetRevenue: decimal.RequireFromString("180.0"), Streams: "90.0K (90,000)"},
		},
	}

	service := NewService()

	spec := service.PlatformChart(breakdown)

	assert.Equal(t, "Net Revenue by Platform (Total Streams: 690.5K (690,500))", spec.Title)
	assert.Equal(t, domain.OrientationHorizontal, spec.Orientation)
	assert.Equal(t, "net_revenue", spec.XField)
	assert.Equal(t, "platform", spec.YField)

	require.Len(t, spec.Bars, 2)
	assert.Equal(t, "Spotify", spec.Bars[0].Label)
	assert.Equal(t, 1802.0, spec.Bars[0].Value)
	assert.Equal(t, "green", spec.Bars[0].Color)
	assert.Contains(t, spec.Bars[0].HoverData, "Streams: 600.5K (600,500)")
	assert.Contains(t, spec.Bars[0].HoverData, "Total Streams: 690.5K (690,500)")
	assert.Equal(t, "pink", spec.Bars[1].Color)
}

func TestCountryChart(t *testing.T) {
	breakdown := &domain.CountryBreakdown{
		ReleaseTitle: "A",
		TotalRevenue: decimal.RequireFromString("1982.0"),
		Countries: []*domain.CountryRevenue{
			{
				Country:           "DE",
				Quantity:          600500,
				NetRevenue:        decimal.RequireFromString("1802.0"),
				PercentageRevenue: decimal.RequireFromString("90.92"),
				Streams:           "600.5K (600,500)",
				PlatformDetails:   "€1802.00<br>90.92%<br>600.5K (600,500) streams<br><br>Spotify: 600,000 (€0.003000 per stream, €1800.00 total). Sales Month: February 2024",
			},
		},
	}

	service := NewService()

	spec := service.CountryChart(breakdown)

	assert.Equal(t, "Net Revenue by Country", spec.Title)
	assert.Equal(t, domain.OrientationVertical, spec.Orientation)
	assert.Equal(t, CountryHoverTemplate, spec.HoverTemplate)

	require.Len(t, spec.Bars, 1)
	assert.Equal(t, "DE", spec.Bars[0].Label)
	assert.Equal(t, breakdown.Countries[0].PlatformDetails, spec.Bars[0].CustomData)
	assert.Contains(t, spec.Bars[0].HoverData, "Percentage Revenue: 90.92%")
}

func TestRenderChart(t *testing.T) {
	spec := &domain.ChartSpec{
		Title:       "Net Revenue by Country",
		Orientation: domain.OrientationVertical,
		Bars: []*domain.ChartBar{
			{Label: "DE", Value: 1802.0},
			{Label: "US", Value: 180.0},
		},
	}

	service := NewService()

	var buffer bytes.Buffer
	require.NoError(t, service.RenderChart(spec, &buffer))

	// Assinatura PNG
	assert.True(t, bytes.HasPrefix(buffer.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderChart_SemBarras(t *testing.T) {
	service := NewService()

	var buffer bytes.Buffer
	err := service.RenderChart(&domain.ChartSpec{}, &buffer)

	assert.ErrorIs(t, err, ErrNoBars)
	assert.Zero(t, buffer.Len())
}
