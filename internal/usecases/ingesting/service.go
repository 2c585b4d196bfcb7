// Package ingesting carrega extratos de royalties (CSV separado por
// vírgula ou ponto e vírgula) para a estrutura tabular do domínio.
package ingesting

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/muramets/Believe/internal/domain"
)

// Colunas esperadas no cabeçalho do extrato da Believe.
const (
	ColumnReleaseTitle = "Release title"
	ColumnPlatform     = "Platform"
	ColumnCountry      = "Country / Region"
	ColumnQuantity     = "Quantity"
	ColumnUnitPrice    = "Unit Price"
	ColumnNetRevenue   = "Net Revenue"
	ColumnCurrency     = "Client Payment Currency"
	ColumnSalesMonth   = "Sales Month"
)

var requiredColumns = []string{
	ColumnReleaseTitle,
	ColumnPlatform,
	ColumnCountry,
	ColumnQuantity,
	ColumnUnitPrice,
	ColumnNetRevenue,
	ColumnCurrency,
	ColumnSalesMonth,
}

// Ingester carrega um extrato bruto para a estrutura do domínio
type Ingester interface {
	// Ingest detecta o separador, interpreta a planilha e devolve o
	// extrato ainda sem ID (o repositório atribui um ao salvar)
	Ingest(filename string, r io.Reader) (*domain.Statement, error)
}

type Service struct{}

// NewService cria uma nova instância do serviço de ingestão
func NewService() Ingester {
	return &Service{}
}

// DetectDelimiter inspeciona apenas a primeira linha do arquivo: ponto e
// vírgula sem nenhuma vírgula seleciona ';', qualquer outro caso ','.
func DetectDelimiter(firstLine string) rune {
	if strings.Contains(firstLine, ";") && !strings.Contains(firstLine, ",") {
		return ';'
	}
	return ','
}

func (s *Service) Ingest(filename string, r io.Reader) (*domain.Statement, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo enviado")
	}

	firstLine, _, _ := strings.Cut(string(data), "\n")
	if strings.TrimSpace(firstLine) == "" {
		return nil, ErrEmptyFile
	}

	delimiter := DetectDelimiter(firstLine)

	// Reposiciona no início do arquivo antes da leitura completa
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho da planilha")
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.SaleRecord, 0)
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a linha %d da planilha", line)
		}

		record, err := parseRecord(row, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao interpretar a linha %d da planilha", line)
		}

		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"filename":  filename,
		"delimiter": string(delimiter),
		"rows":      len(records),
	}).Info("Extrato de royalties carregado")

	return &domain.Statement{
		Filename:  filename,
		Delimiter: string(delimiter),
		Records:   records,
	}, nil
}

// mapColumns resolve a posição de cada coluna obrigatória pelo nome
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", required)
		}
	}

	return columns, nil
}

func parseRecord(row []string, columns map[string]int) (*domain.SaleRecord, error) {
	quantity, err := parseQuantity(row[columns[ColumnQuantity]])
	if err != nil {
		return nil, errors.Wrapf(err, "quantidade inválida %q", row[columns[ColumnQuantity]])
	}

	unitPrice, err := decimal.NewFromString(strings.TrimSpace(row[columns[ColumnUnitPrice]]))
	if err != nil {
		return nil, errors.Wrapf(err, "preço unitário inválido %q", row[columns[ColumnUnitPrice]])
	}

	netRevenue, err := decimal.NewFromString(strings.TrimSpace(row[columns[ColumnNetRevenue]]))
	if err != nil {
		return nil, errors.Wrapf(err, "receita líquida inválida %q", row[columns[ColumnNetRevenue]])
	}

	return &domain.SaleRecord{
		ReleaseTitle: strings.TrimSpace(row[columns[ColumnReleaseTitle]]),
		Platform:     strings.TrimSpace(row[columns[ColumnPlatform]]),
		Country:      strings.TrimSpace(row[columns[ColumnCountry]]),
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		NetRevenue:   netRevenue,
		Currency:     strings.TrimSpace(row[columns[ColumnCurrency]]),
		SalesMonth:   strings.TrimSpace(row[columns[ColumnSalesMonth]]),
	}, nil
}

// parseQuantity aceita inteiros e inteiros "flutuantes" ("600000.0"),
// truncando a parte fracionária em direção a zero.
func parseQuantity(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)

	if quantity, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return quantity, nil
	}

	quantity, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}

	return int64(quantity), nil
}
