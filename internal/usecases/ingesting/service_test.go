package ingesting

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name      string
		firstLine string
		expected  rune
	}{
		{
			name:      "Ponto e vírgula sem vírgula seleciona ponto e vírgula",
			firstLine: "Release title;Platform;Quantity",
			expected:  ';',
		},
		{
			name:      "Vírgula seleciona vírgula",
			firstLine: "Release title,Platform,Quantity",
			expected:  ',',
		},
		{
			name:      "Vírgula vence mesmo com ponto e vírgula presente",
			firstLine: "Release title,Platform;extra",
			expected:  ',',
		},
		{
			name:      "Sem separador conhecido cai na vírgula",
			firstLine: "ReleaseTitle",
			expected:  ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectDelimiter(tt.firstLine))
		})
	}
}

const commaHeader = "Release title,Platform,Country / Region,Quantity,Unit Price,Net Revenue,Client Payment Currency,Sales Month"

func TestIngest_CommaDelimited(t *testing.T) {
	csvData := commaHeader + "\n" +
		"Track A,Spotify,DE,500,0.004,2.0,EUR,2024/01/01\n" +
		"Track A,Spotify,DE,600000,0.003,1800.0,EUR,2024-02-01\n"

	service := NewService()

	stmt, err := service.Ingest("statement.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, "statement.csv", stmt.Filename)
	assert.Equal(t, ",", stmt.Delimiter)
	require.Len(t, stmt.Records, 2)

	first := stmt.Records[0]
	assert.Equal(t, "Track A", first.ReleaseTitle)
	assert.Equal(t, "Spotify", first.Platform)
	assert.Equal(t, "DE", first.Country)
	assert.Equal(t, int64(500), first.Quantity)
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("0.004")))
	assert.True(t, first.NetRevenue.Equal(decimal.RequireFromString("2.0")))
	assert.Equal(t, "EUR", first.Currency)
	assert.Equal(t, "2024/01/01", first.SalesMonth)
}

func TestIngest_SemicolonDelimited(t *testing.T) {
	csvData := strings.ReplaceAll(commaHeader, ",", ";") + "\n" +
		"Track B;TikTok;US;1200;0.002;2.4;EUR;2024-03-01\n"

	service := NewService()

	stmt, err := service.Ingest("statement.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, ";", stmt.Delimiter)
	require.Len(t, stmt.Records, 1)
	assert.Equal(t, "Track B", stmt.Records[0].ReleaseTitle)
	assert.Equal(t, int64(1200), stmt.Records[0].Quantity)
}

func TestIngest_QuantidadeFlutuante(t *testing.T) {
	csvData := commaHeader + "\n" +
		"Track A,Spotify,DE,600000.0,0.003,1800.0,EUR,2024-02-01\n"

	service := NewService()

	stmt, err := service.Ingest("statement.csv", strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, int64(600000), stmt.Records[0].Quantity)
}

func TestIngest_Erros(t *testing.T) {
	tests := []struct {
		name     string
		csvData  string
		expected string
	}{
		{
			name:     "Arquivo vazio",
			csvData:  "",
			expected: "vazio",
		},
		{
			name:     "Coluna obrigatória ausente",
			csvData:  "Release title,Platform\nTrack A,Spotify\n",
			expected: "coluna obrigatória ausente",
		},
		{
			name:     "Quantidade inválida",
			csvData:  commaHeader + "\nTrack A,Spotify,DE,muitos,0.004,2.0,EUR,2024/01/01\n",
			expected: "quantidade inválida",
		},
		{
			name:     "Receita inválida",
			csvData:  commaHeader + "\nTrack A,Spotify,DE,500,0.004,n/a,EUR,2024/01/01\n",
			expected: "receita líquida inválida",
		},
		{
			name:     "Número de colunas inconsistente",
			csvData:  commaHeader + "\nTrack A,Spotify,DE\n",
			expected: "linha 2",
		},
	}

	service := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Ingest("statement.csv", strings.NewReader(tt.csvData))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}
