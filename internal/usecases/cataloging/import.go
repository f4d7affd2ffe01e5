package cataloging

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/repository"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type salesColumns struct {
	model, month, units, revenue, promotions, competitor int
}

// ImportSales lê uma planilha (.xlsx ou .csv) de vendas mensais.
// Linhas inválidas são ignoradas e reportadas; as válidas são gravadas em uma única transação.
func (s *Service) ImportSales(ctx context.Context, filename string, file io.Reader) (*domain.ImportResult, error) {
	rows, err := readRows(filename, file)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, NewCatalogError(ErrEmptyFile, apiErrors.ErrInvalidFormat, filename)
	}

	cols, err := detectColumns(rows[0])
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao listar produtos")
	}
	known := make(map[string]struct{}, len(products))
	for _, p := range products {
		known[p.Model] = struct{}{}
	}

	result := &domain.ImportResult{}
	seen := make(map[string]struct{})
	records := make([]*domain.SalesRecord, 0, len(rows)-1)

	for i, row := range rows[1:] {
		line := i + 2 // linha da planilha, contando o cabeçalho
		if isBlank(row) {
			continue
		}

		record, err := parseSalesRow(row, cols)
		if err == nil {
			err = validateSales(record)
		}
		if err == nil {
			if _, ok := known[record.Model]; !ok {
				err = fmt.Errorf("%w: %s", ErrProductNotFound, record.Model)
			}
		}
		if err == nil {
			key := record.Model + "|" + record.Month
			if _, dup := seen[key]; dup {
				err = fmt.Errorf("%w: %s %s", ErrDuplicateSales, record.Model, record.Month)
			}
			seen[key] = struct{}{}
		}

		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, domain.ImportRowError{Row: line, Reason: err.Error()})
			continue
		}
		records = append(records, record)
	}

	if len(records) > 0 {
		imported, err := s.salesRepo.CreateMany(ctx, records)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, NewCatalogError(ErrDuplicateSales, apiErrors.ErrDuplicateSales, err.Error())
			}
			return nil, NewCatalogError(fmt.Errorf("%w: %w", ErrDatabaseOperation, err), apiErrors.ErrDatabaseOperation, "erro ao gravar vendas importadas")
		}
		result.Imported = imported
	}

	logrus.WithFields(logrus.Fields{
		"file":     filename,
		"imported": result.Imported,
		"skipped":  result.Skipped,
	}).Info("Importação de vendas concluída")

	return result, nil
}

func readRows(filename string, file io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		f, err := excelize.OpenReader(file)
		if err != nil {
			return nil, NewCatalogError(err, apiErrors.ErrInvalidFormat, "erro ao ler a planilha")
		}
		defer f.Close()

		rows, err := f.GetRows(f.GetSheetName(0))
		if err != nil {
			return nil, NewCatalogError(err, apiErrors.ErrInvalidFormat, "erro ao ler as linhas da planilha")
		}
		return rows, nil
	case ".csv":
		reader := csv.NewReader(file)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true

		rows, err := reader.ReadAll()
		if err != nil {
			return nil, NewCatalogError(err, apiErrors.ErrInvalidFormat, "erro ao analisar o CSV")
		}
		return rows, nil
	}

	return nil, NewCatalogError(ErrUnsupportedFile, apiErrors.ErrInvalidFormat, filename)
}

func detectColumns(header []string) (salesColumns, error) {
	cols := salesColumns{
		model:      findIndex(header, "model", "model_name", "modelo"),
		month:      findIndex(header, "month", "mes", "mês"),
		units:      findIndex(header, "units_sold", "units", "unidades"),
		revenue:    findIndex(header, "revenue", "receita"),
		promotions: findIndex(header, "promotions", "promotion", "promocao"),
		competitor: findIndex(header, "competitor_launch", "competitor"),
	}

	var missing []string
	if cols.model == -1 {
		missing = append(missing, "model")
	}
	if cols.month == -1 {
		missing = append(missing, "month")
	}
	if cols.units == -1 {
		missing = append(missing, "units_sold")
	}
	if len(missing) > 0 {
		return cols, NewCatalogError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "colunas ausentes: "+strings.Join(missing, ", "))
	}

	return cols, nil
}

func findIndex(header []string, names ...string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, name := range names {
			if h == name {
				return i
			}
		}
	}
	return -1
}

func parseSalesRow(row []string, cols salesColumns) (*domain.SalesRecord, error) {
	units, err := strconv.Atoi(cell(row, cols.units))
	if err != nil {
		return nil, fmt.Errorf("%w: units_sold %q", ErrInvalidSales, cell(row, cols.units))
	}

	record := &domain.SalesRecord{
		Model:     cell(row, cols.model),
		Month:     cell(row, cols.month),
		UnitsSold: units,
	}

	if raw := cell(row, cols.revenue); raw != "" {
		record.Revenue, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: revenue %q", ErrInvalidSales, raw)
		}
	}

	if record.Promotions, err = parseFlag(cell(row, cols.promotions)); err != nil {
		return nil, fmt.Errorf("%w: promotions: %w", ErrInvalidSales, err)
	}
	if record.CompetitorLaunch, err = parseFlag(cell(row, cols.competitor)); err != nil {
		return nil, fmt.Errorf("%w: competitor_launch: %w", ErrInvalidSales, err)
	}

	return record, nil
}

func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "0", "false", "no", "nao", "não":
		return false, nil
	case "1", "true", "yes", "sim":
		return true, nil
	}
	return strconv.ParseBool(raw)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
