package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nusabiz/nusabiz_gateway/internal/apperrors"
	"github.com/nusabiz/nusabiz_gateway/internal/core/domain"
	portssvc "github.com/nusabiz/nusabiz_gateway/internal/core/ports/services"
	"github.com/nusabiz/nusabiz_gateway/internal/utils/format"
)

const exportSheet = "Transaksi"

type exportService struct {
	BaseService
	now func() time.Time
}

// NewExportService creates the spreadsheet export service.
func NewExportService() portssvc.ExportSvcFacade {
	return &exportService{now: time.Now}
}

// ExportTransactions renders the transactions into an xlsx workbook with one
// header row and one row per transaction. Dates and amounts are written in
// their Indonesian display format next to the raw amount.
func (s *exportService) ExportTransactions(ctx context.Context, transactions []domain.Transaction) ([]byte, string, error) {
	if len(transactions) == 0 {
		return nil, "", fmt.Errorf("no transactions to export: %w", apperrors.ErrValidation)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("naming sheet: %w", err)
	}

	header := []any{"Tanggal", "Tipe Transaksi", "Kategori", "Jumlah", "Jumlah (Format)", "Deskripsi"}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, "", fmt.Errorf("writing header: %w", err)
	}

	for i, t := range transactions {
		category := t.Category
		if category == "" {
			category = "-"
		}
		description := t.Description
		if description == "" {
			description = "-"
		}
		row := []any{
			format.DateLong(t.TransactionDate),
			format.TypeLabel(t.Type),
			category,
			t.Amount.InexactFloat64(),
			format.Amount(t.Amount, t.Type),
			description,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	for col, width := range map[string]float64{"A": 18, "B": 15, "C": 20, "D": 15, "E": 20, "F": 40} {
		if err := f.SetColWidth(exportSheet, col, col, width); err != nil {
			return nil, "", fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("rendering workbook: %w", err)
	}

	filename := fmt.Sprintf("Transaksi_%s.xlsx", s.now().Format("2006-01-02"))
	s.LogInfo(ctx, "transactions exported", "rows", len(transactions), "filename", filename)
	return buf.Bytes(), filename, nil
}
